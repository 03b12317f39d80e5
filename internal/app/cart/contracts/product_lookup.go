package contracts

import (
	catalog "github.com/murkotick/storefront-service/internal/app/catalog/domain"
)

// ProductLookup resolves a product id to a catalog product.
// *catalog.Catalog satisfies it.
type ProductLookup interface {
	Product(id string) (*catalog.Product, error)
}
