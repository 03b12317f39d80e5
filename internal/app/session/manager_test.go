package session

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	catalog "github.com/murkotick/storefront-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-service/internal/app/catalog/filter"
	chat "github.com/murkotick/storefront-service/internal/app/chat/domain"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var start = time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)

func TestManager_StartGivesFreshState(t *testing.T) {
	m := NewManager(time.Minute, clock.NewFake(start), nil)

	s := m.Start()
	_, err := uuid.Parse(s.ID())
	require.NoError(t, err)
	assert.True(t, s.Cart().Snapshot().IsEmpty())
	assert.Equal(t, chat.Greeting, s.Chat().Messages()[0].Text)
	assert.Equal(t, start, s.CreatedAt())

	got, err := m.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestManager_SessionsAreIsolated(t *testing.T) {
	m := NewManager(time.Minute, clock.NewFake(start), nil)
	a, b := m.Start(), m.Start()
	require.NotEqual(t, a.ID(), b.ID())

	p, err := catalog.NewProduct(catalog.ProductInput{ID: "x", Name: "X", Category: "apparel", Price: 10})
	require.NoError(t, err)
	a.Cart().Add(p, 1, nil, nil)

	assert.Equal(t, 1, a.Cart().Snapshot().Count)
	assert.True(t, b.Cart().Snapshot().IsEmpty())
}

func TestManager_End(t *testing.T) {
	m := NewManager(time.Minute, clock.NewFake(start), nil)
	s := m.Start()

	require.NoError(t, m.End(s.ID()))
	_, err := m.Get(s.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, m.End(s.ID()), ErrSessionNotFound)
}

func TestManager_UnknownID(t *testing.T) {
	m := NewManager(time.Minute, clock.NewFake(start), nil)
	_, err := m.Get("nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_Expiry(t *testing.T) {
	clk := clock.NewFake(start)
	m := NewManager(10*time.Minute, clk, nil)
	idle := m.Start()
	active := m.Start()

	clk.Advance(6 * time.Minute)
	_, err := m.Get(active.ID())
	require.NoError(t, err)

	clk.Advance(6 * time.Minute)
	assert.Equal(t, 1, m.Sweep())
	assert.Equal(t, 1, m.Len())

	_, err = m.Get(idle.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = m.Get(active.ID())
	assert.NoError(t, err)
}

func TestManager_GetRejectsExpiredBeforeSweep(t *testing.T) {
	clk := clock.NewFake(start)
	m := NewManager(time.Minute, clk, nil)
	s := m.Start()

	clk.Advance(2 * time.Minute)
	_, err := m.Get(s.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Zero(t, m.Len())
}

func TestManager_RunStopsOnCancel(t *testing.T) {
	clk := clock.NewFake(start)
	m := NewManager(time.Minute, clk, nil)
	m.Start()
	clk.Advance(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- m.Run(ctx, 5*time.Millisecond) }()

	require.Eventually(t, func() bool { return m.Len() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	assert.NoError(t, <-done)
}

func TestManager_CartChangesAreLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := NewManager(time.Minute, clock.NewFake(start), zap.New(core))
	s := m.Start()

	p, err := catalog.NewProduct(catalog.ProductInput{ID: "x", Name: "X", Category: "apparel", Price: 250})
	require.NoError(t, err)
	s.Cart().Add(p, 2, nil, nil)

	changes := logs.FilterMessage("cart changed").All()
	require.Len(t, changes, 2)
	first := changes[0].ContextMap()
	assert.Equal(t, "cart.item_added", first["event"])
	assert.Equal(t, s.ID(), first["session_id"])
	assert.Equal(t, int64(500), first["total"])
	assert.Equal(t, "cart.visibility_changed", changes[1].ContextMap()["event"])
}

func TestSession_FilterMemoIsPerSession(t *testing.T) {
	m := NewManager(time.Minute, clock.NewFake(start), nil)
	a, b := m.Start(), m.Start()

	c, err := catalog.NewCatalog([]catalog.Category{{ID: "apparel", Name: "Apparel"}}, nil)
	require.NoError(t, err)
	created := 0
	newMemo := func() *filter.Memo {
		created++
		return filter.NewMemo(c)
	}

	ma := a.FilterMemo(newMemo)
	assert.Same(t, ma, a.FilterMemo(newMemo))
	assert.NotSame(t, ma, b.FilterMemo(newMemo))
	assert.Equal(t, 2, created)
}
