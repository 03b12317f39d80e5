package filter_metadata

import (
	"context"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-service/internal/app/catalog/dto"
	"github.com/murkotick/storefront-service/internal/app/catalog/filter"
)

// Metadata describes the vocabularies and bounds the catalog view offers.
type Metadata struct {
	Categories      []dto.CategoryDTO
	Tags            []string
	MinPrice        int64
	MaxPrice        int64
	PriceStep       int64
	DefaultMaxPrice int64
}

type Handler struct {
	catalog *domain.Catalog
}

func NewHandler(c *domain.Catalog) *Handler {
	return &Handler{catalog: c}
}

func (h *Handler) Execute(ctx context.Context) Metadata {
	return Metadata{
		Categories:      h.Categories(ctx),
		Tags:            h.catalog.Tags(),
		MinPrice:        filter.MinPrice,
		MaxPrice:        filter.DefaultMaxPrice,
		PriceStep:       filter.PriceStep,
		DefaultMaxPrice: filter.DefaultMaxPrice,
	}
}

// Categories returns the navigation category list.
func (h *Handler) Categories(_ context.Context) []dto.CategoryDTO {
	cats := h.catalog.Categories()
	out := make([]dto.CategoryDTO, 0, len(cats))
	for _, c := range cats {
		out = append(out, dto.CategoryDTO{ID: c.ID, Name: c.Name})
	}
	return out
}
