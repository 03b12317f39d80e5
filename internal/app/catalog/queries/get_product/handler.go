package get_product

import (
	"context"

	"golang.org/x/text/language"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-service/internal/app/catalog/dto"
)

type Handler struct {
	catalog *domain.Catalog
	locale  language.Tag
}

func NewHandler(c *domain.Catalog, locale language.Tag) *Handler {
	return &Handler{catalog: c, locale: locale}
}

// Execute returns the product page view or domain.ErrProductNotFound.
func (h *Handler) Execute(_ context.Context, productID string) (*dto.ProductDTO, error) {
	p, err := h.catalog.Product(productID)
	if err != nil {
		return nil, err
	}
	return dto.NewProductDTO(p, h.catalog, h.locale), nil
}
