package contracts

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
)

// ProductRepo is the write-side repository used to seed catalog tables.
// Methods return Spanner mutations; they do not apply them.
type ProductRepo interface {
	// UpsertMut returns a mutation that writes the product at the given catalog position.
	UpsertMut(p *domain.Product, position int) (*spanner.Mutation, error)
}

// CategoryRepo is the write-side repository for the category list.
type CategoryRepo interface {
	UpsertMut(c domain.Category, position int) *spanner.Mutation
}
