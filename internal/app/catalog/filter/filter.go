// Package filter derives the visible product subset from the static catalog.
//
// Apply is a pure function of (products, State): it never mutates either input
// and returns the matches in their original catalog order.
package filter

import (
	"slices"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
)

// Price slider bounds used by the catalog view.
const (
	MinPrice        int64 = 0
	DefaultMaxPrice int64 = 50000
	PriceStep       int64 = 1000
)

// State is the transient category/price/tag selection narrowing the catalog view.
// The price floor is fixed at MinPrice; only the ceiling is adjustable.
type State struct {
	// Category comes from navigation context. Nil means no category constraint.
	Category *string
	MaxPrice int64
	// Tags is the selection in the order the shopper picked them.
	Tags []string
}

// Default returns the state a freshly entered catalog view starts with.
func Default(category *string) State {
	return State{Category: category, MaxPrice: DefaultMaxPrice}
}

// WithMaxPrice returns a copy of s with a new price ceiling.
func (s State) WithMaxPrice(ceiling int64) State {
	s.Tags = slices.Clone(s.Tags)
	s.MaxPrice = ceiling
	return s
}

// ToggleTag returns a copy of s with tag removed when selected, appended otherwise.
func (s State) ToggleTag(tag string) State {
	tags := slices.Clone(s.Tags)
	if i := slices.Index(tags, tag); i >= 0 {
		s.Tags = slices.Delete(tags, i, i+1)
		return s
	}
	s.Tags = append(tags, tag)
	return s
}

// Reset clears the price and tag selection. The category is navigation
// context and survives a reset.
func (s State) Reset() State {
	return Default(s.Category)
}

// Equal reports whether two states select the same products.
func (s State) Equal(o State) bool {
	if (s.Category == nil) != (o.Category == nil) {
		return false
	}
	if s.Category != nil && *s.Category != *o.Category {
		return false
	}
	return s.MaxPrice == o.MaxPrice && slices.Equal(s.Tags, o.Tags)
}

// Matches reports whether a single product passes every active constraint.
func (s State) Matches(p *domain.Product) bool {
	return s.matches(p, tagSet(s.Tags))
}

func (s State) matches(p *domain.Product, tags map[string]struct{}) bool {
	if s.Category != nil && p.Category() != *s.Category {
		return false
	}

	price := p.Price().Amount()
	if price < MinPrice || price > s.MaxPrice {
		return false
	}

	// OR across selected tags: one shared tag is enough.
	if len(tags) > 0 && !p.HasAnyTag(tags) {
		return false
	}
	return true
}

// Apply returns the products passing s, preserving their relative order.
func Apply(products []*domain.Product, s State) []*domain.Product {
	tags := tagSet(s.Tags)
	out := make([]*domain.Product, 0, len(products))
	for _, p := range products {
		if s.matches(p, tags) {
			out = append(out, p)
		}
	}
	return out
}

func tagSet(tags []string) map[string]struct{} {
	if len(tags) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}
