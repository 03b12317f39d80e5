package domain

import (
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// CurrencySymbol is appended to formatted prices.
const CurrencySymbol = "₽"

// Money is a whole-rouble amount. Catalog prices carry no minor units,
// so an int64 is exact for every value the store deals with.
// Money is a value type; all operations return new instances.
type Money struct {
	amount int64
}

// NewMoney creates Money from a whole-rouble amount.
func NewMoney(amount int64) Money {
	return Money{amount: amount}
}

// Zero returns a Money instance representing zero.
func Zero() Money {
	return Money{}
}

// Add returns the sum of m and other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Times returns m multiplied by a quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount * int64(quantity)}
}

// IsZero returns true if the money amount is zero.
func (m Money) IsZero() bool {
	return m.amount == 0
}

// IsNegative returns true if the money amount is negative.
func (m Money) IsNegative() bool {
	return m.amount < 0
}

// GreaterThan returns true if m is greater than other.
func (m Money) GreaterThan(other Money) bool {
	return m.amount > other.amount
}

// LessThan returns true if m is less than other.
func (m Money) LessThan(other Money) bool {
	return m.amount < other.amount
}

// Equals returns true if m equals other.
func (m Money) Equals(other Money) bool {
	return m.amount == other.amount
}

// Amount returns the raw rouble amount. Used for persistence and wire mapping.
func (m Money) Amount() int64 {
	return m.amount
}

// String returns the plain decimal amount, e.g. "12500".
func (m Money) String() string {
	return strconv.FormatInt(m.amount, 10)
}

// Format renders the amount with locale-specific digit grouping followed by
// the currency symbol, e.g. "12,500 ₽" for English.
func (m Money) Format(tag language.Tag) string {
	return message.NewPrinter(tag).Sprintf("%d %s", m.amount, CurrencySymbol)
}
