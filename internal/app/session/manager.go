// Package session keeps the in-memory registry of shopper sessions.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/murkotick/storefront-service/internal/app/cart/store"
	chat "github.com/murkotick/storefront-service/internal/app/chat/domain"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
)

const (
	DefaultTTL           = 30 * time.Minute
	DefaultSweepInterval = time.Minute
)

// Manager creates, finds and expires sessions. It is safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	ttl    time.Duration
	clock  clock.Clock
	logger *zap.Logger
}

func NewManager(ttl time.Duration, clk clock.Clock, logger *zap.Logger) *Manager {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if clk == nil {
		clk = clock.RealClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		clock:    clk,
		logger:   logger,
	}
}

// Start opens a session with an empty cart and a greeted transcript.
func (m *Manager) Start() *Session {
	now := m.clock.Now()
	id := uuid.NewString()
	s := &Session{
		id:        id,
		cart:      store.New(id, m.clock),
		chat:      chat.NewConversation(now),
		createdAt: now,
		lastSeen:  now,
	}

	s.cart.Subscribe(logCartChanges(m.logger))

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()

	m.logger.Debug("session started", zap.String("session_id", id))
	return s
}

// Get returns a live session and refreshes its idle timer.
// Sessions idle past the TTL are reported as not found even before the sweep.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}

	now := m.clock.Now()
	if m.expired(s, now) {
		m.remove(id, "expired")
		return nil, ErrSessionNotFound
	}
	s.touch(now)
	return s, nil
}

// End discards the session and everything it owns.
func (m *Manager) End(id string) error {
	if !m.remove(id, "ended") {
		return ErrSessionNotFound
	}
	return nil
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep drops every expired session and returns how many were dropped.
func (m *Manager) Sweep() int {
	now := m.clock.Now()

	m.mu.Lock()
	dropped := 0
	for id, s := range m.sessions {
		if m.expired(s, now) {
			delete(m.sessions, id)
			dropped++
		}
	}
	m.mu.Unlock()

	if dropped > 0 {
		m.logger.Info("expired sessions swept", zap.Int("count", dropped))
	}
	return dropped
}

// Run sweeps every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			m.Sweep()
		}
	}
}

func (m *Manager) expired(s *Session, now time.Time) bool {
	return now.Sub(s.LastSeen()) > m.ttl
}

func (m *Manager) remove(id, reason string) bool {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		m.logger.Debug("session closed", zap.String("session_id", id), zap.String("reason", reason))
	}
	return ok
}

func logCartChanges(logger *zap.Logger) store.Observer {
	return func(c store.Change) {
		logger.Debug("cart changed",
			zap.String("event", c.Event.EventType()),
			zap.String("session_id", c.Event.AggregateID()),
			zap.Int("lines", c.Snapshot.Count),
			zap.Int64("total", c.Snapshot.Total.Amount()),
		)
	}
}
