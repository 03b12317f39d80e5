package domain

import "errors"

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrMissingField         = errors.New("required field is missing")
	ErrInvalidEmail         = errors.New("email address is invalid")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
)
