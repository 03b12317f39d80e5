package domain

import "time"

// DomainEvent is a marker interface for all cart events.
// Observers of the cart store receive one of these after every mutation.
type DomainEvent interface {
	EventType() string
	AggregateID() string
	OccurredAt() time.Time
}

// ItemAddedEvent is raised when a product is added to the cart.
// Merged is true when an existing (product, size) line absorbed the quantity.
type ItemAddedEvent struct {
	CartID    string
	ProductID string
	Size      *string
	Quantity  int
	Merged    bool
	AddedAt   time.Time
}

func (e *ItemAddedEvent) EventType() string {
	return "cart.item_added"
}

func (e *ItemAddedEvent) AggregateID() string {
	return e.CartID
}

func (e *ItemAddedEvent) OccurredAt() time.Time {
	return e.AddedAt
}

// ItemsRemovedEvent is raised when every line of a product is dropped.
type ItemsRemovedEvent struct {
	CartID       string
	ProductID    string
	LinesRemoved int
	RemovedAt    time.Time
}

func (e *ItemsRemovedEvent) EventType() string {
	return "cart.items_removed"
}

func (e *ItemsRemovedEvent) AggregateID() string {
	return e.CartID
}

func (e *ItemsRemovedEvent) OccurredAt() time.Time {
	return e.RemovedAt
}

// CartClearedEvent is raised when the cart is emptied.
type CartClearedEvent struct {
	CartID    string
	ClearedAt time.Time
}

func (e *CartClearedEvent) EventType() string {
	return "cart.cleared"
}

func (e *CartClearedEvent) AggregateID() string {
	return e.CartID
}

func (e *CartClearedEvent) OccurredAt() time.Time {
	return e.ClearedAt
}

// VisibilityChangedEvent is raised when the cart view is opened or closed.
type VisibilityChangedEvent struct {
	CartID    string
	Open      bool
	ChangedAt time.Time
}

func (e *VisibilityChangedEvent) EventType() string {
	return "cart.visibility_changed"
}

func (e *VisibilityChangedEvent) AggregateID() string {
	return e.CartID
}

func (e *VisibilityChangedEvent) OccurredAt() time.Time {
	return e.ChangedAt
}
