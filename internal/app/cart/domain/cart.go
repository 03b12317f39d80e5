package domain

import (
	"time"

	catalog "github.com/murkotick/storefront-service/internal/app/catalog/domain"
)

// Cart is the ordered collection of lines a shopper intends to buy.
// No two lines share the same (product id, size) pair. Cart is not safe for
// concurrent use; the store serializes access to it.
type Cart struct {
	id     string
	lines  []Line
	open   bool
	events []DomainEvent
}

// NewCart creates an empty, closed cart.
func NewCart(id string) *Cart {
	return &Cart{
		id:     id,
		lines:  make([]Line, 0),
		events: make([]DomainEvent, 0),
	}
}

func (c *Cart) ID() string {
	return c.id
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of distinct lines. This is what the badge shows.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Units returns the sum of quantities over all lines.
func (c *Cart) Units() int {
	n := 0
	for _, l := range c.lines {
		n += l.quantity
	}
	return n
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) IsOpen() bool {
	return c.open
}

// Total is Σ price × quantity over the current lines. It is computed on every
// call and is zero for an empty cart.
func (c *Cart) Total() catalog.Money {
	total := catalog.Zero()
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (c *Cart) DomainEvents() []DomainEvent {
	return c.events
}

// ClearEvents drops the accumulated events once they have been published.
func (c *Cart) ClearEvents() {
	c.events = make([]DomainEvent, 0)
}

// Add puts quantity units of product into the cart. When a line with the same
// product id and size exists its quantity grows and its color stays as it was;
// otherwise a new line is appended. Either way the cart becomes open.
// Quantity is not validated here.
func (c *Cart) Add(product *catalog.Product, quantity int, size, color *string, now time.Time) {
	merged := false
	for i := range c.lines {
		if c.lines[i].matches(product.ID(), size) {
			c.lines[i].quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		c.lines = append(c.lines, Line{
			product:  product,
			quantity: quantity,
			size:     clonePtr(size),
			color:    clonePtr(color),
		})
	}

	c.events = append(c.events, &ItemAddedEvent{
		CartID:    c.id,
		ProductID: product.ID(),
		Size:      clonePtr(size),
		Quantity:  quantity,
		Merged:    merged,
		AddedAt:   now,
	})
	c.SetOpen(true, now)
}

// Remove drops every line of productID whatever its size or color.
// It returns how many lines were dropped; an unknown id is a no-op.
func (c *Cart) Remove(productID string, now time.Time) int {
	kept := c.lines[:0]
	removed := 0
	for _, l := range c.lines {
		if l.product.ID() == productID {
			removed++
			continue
		}
		kept = append(kept, l)
	}
	// zero the tail so dropped products are not retained
	clear(c.lines[len(kept):])
	c.lines = kept

	if removed == 0 {
		return 0
	}
	c.events = append(c.events, &ItemsRemovedEvent{
		CartID:       c.id,
		ProductID:    productID,
		LinesRemoved: removed,
		RemovedAt:    now,
	})
	return removed
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear(now time.Time) {
	c.lines = make([]Line, 0)
	c.events = append(c.events, &CartClearedEvent{
		CartID:    c.id,
		ClearedAt: now,
	})
}

// SetOpen sets the visibility flag. Setting it to its current value records nothing.
func (c *Cart) SetOpen(open bool, now time.Time) {
	if c.open == open {
		return
	}
	c.open = open
	c.events = append(c.events, &VisibilityChangedEvent{
		CartID:    c.id,
		Open:      open,
		ChangedAt: now,
	})
}
