package session

import (
	"sync"
	"time"

	"github.com/murkotick/storefront-service/internal/app/cart/store"
	"github.com/murkotick/storefront-service/internal/app/catalog/filter"
	chat "github.com/murkotick/storefront-service/internal/app/chat/domain"
)

// Session owns the state of one shopper: the cart and the advisor transcript.
// Nothing is shared between sessions.
type Session struct {
	id        string
	cart      *store.Store
	chat      *chat.Conversation
	createdAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
	view     *filter.Memo
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Cart() *store.Store {
	return s.cart
}

func (s *Session) Chat() *chat.Conversation {
	return s.chat
}

func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Session) LastSeen() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// FilterMemo returns the session's catalog view cache, creating it with
// newMemo on first use. Each shopper gets their own so browsing in one
// session never evicts another's result.
func (s *Session) FilterMemo(newMemo func() *filter.Memo) *filter.Memo {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.view == nil {
		s.view = newMemo()
	}
	return s.view
}
