package domain

import (
	catalog "github.com/murkotick/storefront-service/internal/app/catalog/domain"
)

// Line is one cart entry: a product chosen with a quantity and optional variants.
// Lines are values; the cart hands out copies.
type Line struct {
	product  *catalog.Product
	quantity int
	size     *string
	color    *string
}

func (l Line) Product() *catalog.Product {
	return l.product
}

func (l Line) ProductID() string {
	return l.product.ID()
}

func (l Line) Quantity() int {
	return l.quantity
}

// Size returns the chosen size or nil when none was chosen.
func (l Line) Size() *string {
	return clonePtr(l.size)
}

// Color returns the chosen color or nil when none was chosen.
func (l Line) Color() *string {
	return clonePtr(l.color)
}

// Subtotal is price × quantity for this line.
func (l Line) Subtotal() catalog.Money {
	return l.product.Price().Times(l.quantity)
}

// matches reports whether the line has the merge identity (productID, size).
// Two absent sizes match each other; an absent size never matches a present one.
func (l Line) matches(productID string, size *string) bool {
	if l.product.ID() != productID {
		return false
	}
	if l.size == nil || size == nil {
		return l.size == nil && size == nil
	}
	return *l.size == *size
}

func clonePtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
