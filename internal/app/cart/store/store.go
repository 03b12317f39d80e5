// Package store holds the single owned cart of a session and lets readers
// (badge, drawer, checkout summary) observe it. Every reader derives from the
// same snapshot, so there is no second copy of the cart to drift out of sync.
package store

import (
	"slices"
	"sync"

	catalog "github.com/murkotick/storefront-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-service/internal/app/cart/domain"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
)

// Snapshot is a point-in-time view of the cart.
type Snapshot struct {
	Lines []domain.Line
	Total catalog.Money
	Count int
	Units int
	Open  bool
}

func (s Snapshot) IsEmpty() bool {
	return len(s.Lines) == 0
}

// Change is delivered to observers after a mutation.
type Change struct {
	Event    domain.DomainEvent
	Snapshot Snapshot
}

// Observer receives cart changes. Observers run synchronously on the mutating
// goroutine and must not mutate the store they observe.
type Observer func(Change)

// Store wraps a cart with a mutex and an observer list.
type Store struct {
	// publish serializes mutate+notify so observers see changes in order.
	publish sync.Mutex
	mu      sync.Mutex

	cart  *domain.Cart
	clock clock.Clock

	// observers stay in subscription order
	observers []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Observer
}

func New(cartID string, clk clock.Clock) *Store {
	if clk == nil {
		clk = clock.RealClock{}
	}
	return &Store{
		cart:  domain.NewCart(cartID),
		clock: clk,
	}
}

// Subscribe registers fn and returns a function that removes it. Observers are
// notified in the order they subscribed.
func (s *Store) Subscribe(fn Observer) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, subscription{id: id, fn: fn})
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.observers = slices.DeleteFunc(s.observers, func(sub subscription) bool {
				return sub.id == id
			})
			s.mu.Unlock()
		})
	}
}

// Snapshot returns the current cart state.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Total is the current cart total.
func (s *Store) Total() catalog.Money {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *Store) Add(product *catalog.Product, quantity int, size, color *string) Snapshot {
	return s.mutate(func(c *domain.Cart) {
		c.Add(product, quantity, size, color, s.clock.Now())
	})
}

func (s *Store) Remove(productID string) Snapshot {
	return s.mutate(func(c *domain.Cart) {
		c.Remove(productID, s.clock.Now())
	})
}

func (s *Store) Clear() Snapshot {
	return s.mutate(func(c *domain.Cart) {
		c.Clear(s.clock.Now())
	})
}

func (s *Store) SetOpen(open bool) Snapshot {
	return s.mutate(func(c *domain.Cart) {
		c.SetOpen(open, s.clock.Now())
	})
}

// Drain returns the cart as it was and empties it in one step.
// Checkout uses it so no add can slip in between reading and clearing.
func (s *Store) Drain() Snapshot {
	var before Snapshot
	s.mutate(func(c *domain.Cart) {
		before = s.snapshotLocked()
		c.Clear(s.clock.Now())
	})
	return before
}

func (s *Store) mutate(fn func(c *domain.Cart)) Snapshot {
	s.publish.Lock()
	defer s.publish.Unlock()

	s.mu.Lock()
	fn(s.cart)
	events := s.cart.DomainEvents()
	s.cart.ClearEvents()
	snap := s.snapshotLocked()
	observers := make([]Observer, 0, len(s.observers))
	for _, sub := range s.observers {
		observers = append(observers, sub.fn)
	}
	s.mu.Unlock()

	for _, e := range events {
		for _, o := range observers {
			o(Change{Event: e, Snapshot: snap})
		}
	}
	return snap
}

func (s *Store) snapshotLocked() Snapshot {
	return Snapshot{
		Lines: s.cart.Lines(),
		Total: s.cart.Total(),
		Count: s.cart.Len(),
		Units: s.cart.Units(),
		Open:  s.cart.IsOpen(),
	}
}
