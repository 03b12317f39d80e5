package domain

import "errors"

// Domain errors for the catalog
var (
	// ErrProductNotFound indicates that a product with the given ID does not exist in the catalog.
	ErrProductNotFound = errors.New("product not found")

	// ErrDuplicateProductID indicates two catalog records share the same product ID.
	ErrDuplicateProductID = errors.New("duplicate product id")

	// ErrUnknownCategory indicates a product refers to a category that is not in the catalog's category list.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrDuplicateCategoryID indicates two category descriptors share the same ID.
	ErrDuplicateCategoryID = errors.New("duplicate category id")
)

// Domain errors for Product validation
var (
	// ErrEmptyProductID indicates a product record without an identifier.
	ErrEmptyProductID = errors.New("product id cannot be empty")

	// ErrEmptyProductName indicates a product record with an empty name.
	ErrEmptyProductName = errors.New("product name cannot be empty")

	// ErrEmptyProductCategory indicates a product record with an empty category.
	ErrEmptyProductCategory = errors.New("product category cannot be empty")

	// ErrNegativePrice indicates a product record with a negative price.
	ErrNegativePrice = errors.New("price cannot be negative")

	// ErrRatingOutOfRange indicates a rating outside of [0, 5].
	ErrRatingOutOfRange = errors.New("rating must be between 0 and 5")

	// ErrEmptyCategoryID indicates a category descriptor without an identifier.
	ErrEmptyCategoryID = errors.New("category id cannot be empty")
)
