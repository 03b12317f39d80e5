package store

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/murkotick/storefront-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
)

func testProduct(t *testing.T, id string, price int64) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(catalog.ProductInput{
		ID: id, Name: "Product " + id, Category: "apparel", Price: price,
	})
	require.NoError(t, err)
	return p
}

func newStore() *Store {
	return New("cart-1", clock.NewFake(time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)))
}

func TestStore_ObserversSeeEveryMutation(t *testing.T) {
	s := newStore()
	p := testProduct(t, "a", 1000)

	var got []Change
	unsubscribe := s.Subscribe(func(c Change) { got = append(got, c) })

	s.Add(p, 2, nil, nil)
	s.Remove("a")
	s.Clear()

	require.Len(t, got, 4)
	assert.Equal(t, "cart.item_added", got[0].Event.EventType())
	assert.Equal(t, "cart.visibility_changed", got[1].Event.EventType())
	assert.Equal(t, int64(2000), got[1].Snapshot.Total.Amount())
	assert.True(t, got[1].Snapshot.Open)
	assert.Equal(t, "cart.items_removed", got[2].Event.EventType())
	assert.True(t, got[2].Snapshot.IsEmpty())
	assert.Equal(t, "cart.cleared", got[3].Event.EventType())

	unsubscribe()
	unsubscribe()
	s.Add(p, 1, nil, nil)
	assert.Len(t, got, 4)
}

func TestStore_ObserversRunInSubscriptionOrder(t *testing.T) {
	s := newStore()
	p := testProduct(t, "a", 1000)

	var order []int
	unsubs := make([]func(), 0, 8)
	for i := range 8 {
		unsubs = append(unsubs, s.Subscribe(func(c Change) {
			if c.Event.EventType() == "cart.item_added" {
				order = append(order, i)
			}
		}))
	}
	s.Add(p, 1, nil, nil)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, order)

	order = nil
	unsubs[3]()
	s.Add(p, 1, nil, nil)
	assert.Equal(t, []int{0, 1, 2, 4, 5, 6, 7}, order)
}

func TestStore_RemoveUnknownNotifiesNobody(t *testing.T) {
	s := newStore()
	calls := 0
	s.Subscribe(func(Change) { calls++ })

	snap := s.Remove("missing")
	assert.True(t, snap.IsEmpty())
	assert.Zero(t, calls)
}

func TestStore_ReadersShareOneSource(t *testing.T) {
	s := newStore()
	s.Add(testProduct(t, "a", 12500), 1, nil, nil)
	s.Add(testProduct(t, "b", 3900), 3, nil, nil)

	snap := s.Snapshot()
	assert.Equal(t, 2, snap.Count)
	assert.Equal(t, 4, snap.Units)
	assert.Equal(t, snap.Total, s.Total())
	assert.Equal(t, int64(12500+3*3900), s.Total().Amount())
}

func TestStore_SetOpen(t *testing.T) {
	s := newStore()
	assert.False(t, s.Snapshot().Open)
	assert.True(t, s.SetOpen(true).Open)
	assert.False(t, s.SetOpen(false).Open)
}

func TestStore_DrainReturnsPreviousContents(t *testing.T) {
	s := newStore()
	s.Add(testProduct(t, "a", 500), 2, nil, nil)

	before := s.Drain()
	assert.Equal(t, 1, before.Count)
	assert.Equal(t, int64(1000), before.Total.Amount())
	assert.True(t, s.Snapshot().IsEmpty())
}

func TestStore_ObserverMayReadStore(t *testing.T) {
	s := newStore()
	var total int64
	s.Subscribe(func(Change) { total = s.Total().Amount() })

	s.Add(testProduct(t, "a", 700), 1, nil, nil)
	assert.Equal(t, int64(700), total)
}

func TestStore_ConcurrentAdds(t *testing.T) {
	s := newStore()
	p := testProduct(t, "a", 10)
	size := "M"

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Add(p, 1, &size, nil)
		}()
	}
	wg.Wait()

	snap := s.Snapshot()
	require.Equal(t, 1, snap.Count)
	assert.Equal(t, 50, snap.Lines[0].Quantity())
	assert.Equal(t, int64(500), snap.Total.Amount())
}
