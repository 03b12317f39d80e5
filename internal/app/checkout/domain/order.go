package domain

import (
	"fmt"
	"net/mail"
	"strings"
	"time"

	catalog "github.com/murkotick/storefront-service/internal/app/catalog/domain"
)

// OrderNumber is the confirmation number every order receives. No real order
// is created, so it never changes.
const OrderNumber = "TR-8821"

type PaymentMethod string

const (
	PaymentCard   PaymentMethod = "card"
	PaymentCrypto PaymentMethod = "crypto"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(s))) {
	case PaymentCard, "":
		return PaymentCard, nil
	case PaymentCrypto:
		return PaymentCrypto, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, s)
	}
}

type Contact struct {
	Email string
	Phone string
}

type ShippingAddress struct {
	FirstName  string
	LastName   string
	Address    string
	City       string
	PostalCode string
}

// OrderForm is what the shopper submits at checkout.
type OrderForm struct {
	Contact  Contact
	Shipping ShippingAddress
	Payment  PaymentMethod
}

// Validate checks that every required field is filled and the email parses.
func (f OrderForm) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"email", f.Contact.Email},
		{"phone", f.Contact.Phone},
		{"first_name", f.Shipping.FirstName},
		{"last_name", f.Shipping.LastName},
		{"address", f.Shipping.Address},
		{"city", f.Shipping.City},
		{"postal_code", f.Shipping.PostalCode},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, r.name)
		}
	}
	if _, err := mail.ParseAddress(f.Contact.Email); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEmail, f.Contact.Email)
	}
	switch f.Payment {
	case PaymentCard, PaymentCrypto:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, f.Payment)
	}
	return nil
}

// OrderLine summarizes one purchased cart line.
type OrderLine struct {
	ProductID string
	Name      string
	Quantity  int
	Size      *string
	Color     *string
	Subtotal  catalog.Money
}

// Confirmation is returned when an order is placed.
type Confirmation struct {
	OrderNumber string
	Lines       []OrderLine
	Subtotal    catalog.Money
	Shipping    catalog.Money
	Total       catalog.Money
	Payment     PaymentMethod
	Email       string
	PlacedAt    time.Time
}
