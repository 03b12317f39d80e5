package add_item

import (
	"context"

	contracts "github.com/murkotick/storefront-service/internal/app/cart/contracts"
	"github.com/murkotick/storefront-service/internal/app/cart/store"
)

// Request to put a product into a cart. Quantity must already be validated as positive.
type Request struct {
	ProductID string
	Quantity  int
	Size      *string
	Color     *string
}

type Interactor struct {
	Products contracts.ProductLookup
}

func NewInteractor(products contracts.ProductLookup) *Interactor {
	return &Interactor{Products: products}
}

// Execute adds the product to cart and returns the resulting snapshot.
// An unknown product id leaves the cart untouched and returns the catalog's not-found error.
func (it *Interactor) Execute(ctx context.Context, cart *store.Store, req Request) (store.Snapshot, error) {
	// 1. Resolve product
	product, err := it.Products.Product(req.ProductID)
	if err != nil {
		return store.Snapshot{}, err
	}

	// 2. Mutate the owned cart
	return cart.Add(product, req.Quantity, req.Size, req.Color), nil
}
