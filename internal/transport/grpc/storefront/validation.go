package storefront

import (
	"fmt"
	"strings"

	storefrontv1 "github.com/murkotick/storefront-service/api/storefront/v1"
)

// maxFeatured caps ListFeatured so a client cannot ask for an unbounded slice.
const maxFeatured = 64

func validateSessionID(id string) error {
	if id == "" {
		return fmt.Errorf("session_id is required")
	}
	return nil
}

func validateListProducts(req *storefrontv1.ListProductsRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if req.MaxPrice != nil && *req.MaxPrice < 0 {
		return fmt.Errorf("max_price must be >= 0")
	}
	if req.Category != nil && *req.Category == "" {
		return fmt.Errorf("category must be omitted or non-empty")
	}
	return nil
}

func validateListFeatured(req *storefrontv1.ListFeaturedRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if req.Limit < 0 || req.Limit > maxFeatured {
		return fmt.Errorf("limit must be between 0 and %d", maxFeatured)
	}
	return nil
}

func validateAddToCart(req *storefrontv1.AddToCartRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if err := validateSessionID(req.SessionId); err != nil {
		return err
	}
	if req.ProductId == "" {
		return fmt.Errorf("product_id is required")
	}
	if req.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	return nil
}

func validateRemoveFromCart(req *storefrontv1.RemoveFromCartRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if err := validateSessionID(req.SessionId); err != nil {
		return err
	}
	if req.ProductId == "" {
		return fmt.Errorf("product_id is required")
	}
	return nil
}

func validatePlaceOrder(req *storefrontv1.PlaceOrderRequest) error {
	if req == nil {
		return fmt.Errorf("request is required")
	}
	if err := validateSessionID(req.SessionId); err != nil {
		return err
	}
	// The checkout domain rechecks these and also parses the email and payment method.
	required := []struct {
		name  string
		value string
	}{
		{"email", req.Email},
		{"phone", req.Phone},
		{"first_name", req.FirstName},
		{"last_name", req.LastName},
		{"address", req.Address},
		{"city", req.City},
		{"postal_code", req.PostalCode},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%s is required", f.name)
		}
	}
	return nil
}
