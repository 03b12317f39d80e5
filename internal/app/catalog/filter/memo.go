package filter

import (
	"slices"
	"sync"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
)

// Memo caches the last filter result for one catalog and recomputes only when
// the state changes. Because Apply is pure this never changes what callers see.
type Memo struct {
	catalog *domain.Catalog

	mu       sync.Mutex
	last     *State
	result   []*domain.Product
	computed int
}

// NewMemo creates a Memo over the given catalog.
func NewMemo(c *domain.Catalog) *Memo {
	return &Memo{catalog: c}
}

// Products returns the filtered products for s.
func (m *Memo) Products(s State) []*domain.Product {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.last == nil || !m.last.Equal(s) {
		snapshot := s
		snapshot.Tags = slices.Clone(s.Tags)
		if s.Category != nil {
			c := *s.Category
			snapshot.Category = &c
		}
		m.last = &snapshot
		m.result = Apply(m.catalog.Products(), snapshot)
		m.computed++
	}
	return slices.Clone(m.result)
}

// Computations returns how many times the filter actually ran.
func (m *Memo) Computations() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.computed
}
