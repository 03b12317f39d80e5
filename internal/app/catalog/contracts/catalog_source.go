package contracts

import (
	"context"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
)

// CatalogSource supplies the immutable catalog at startup.
// The service only reads from it; sources never see writes from the storefront.
type CatalogSource interface {
	Load(ctx context.Context) (*domain.Catalog, error)
}
