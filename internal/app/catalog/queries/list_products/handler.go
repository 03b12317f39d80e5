package list_products

import (
	"context"

	"golang.org/x/text/language"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-service/internal/app/catalog/dto"
	"github.com/murkotick/storefront-service/internal/app/catalog/filter"
)

// FeaturedCount is how many products the home page highlights.
const FeaturedCount = 4

type Handler struct {
	catalog *domain.Catalog
	memo    *filter.Memo
	locale  language.Tag
}

func NewHandler(c *domain.Catalog, locale language.Tag) *Handler {
	return &Handler{catalog: c, memo: filter.NewMemo(c), locale: locale}
}

// Execute returns the products matching the filter state, in catalog order.
// It uses the handler's shared cache, which suits anonymous browsing.
func (h *Handler) Execute(ctx context.Context, state filter.State) []*dto.ProductSummaryDTO {
	return h.ExecuteIn(ctx, h.memo, state)
}

// ExecuteIn is Execute with a caller-owned cache, typically one per session.
// A nil memo falls back to the shared one.
func (h *Handler) ExecuteIn(_ context.Context, memo *filter.Memo, state filter.State) []*dto.ProductSummaryDTO {
	if memo == nil {
		memo = h.memo
	}
	return dto.NewProductSummaries(memo.Products(state), h.locale)
}

// NewMemo returns an empty cache over the handler's catalog.
func (h *Handler) NewMemo() *filter.Memo {
	return filter.NewMemo(h.catalog)
}

// Featured returns the first n catalog products. n <= 0 selects FeaturedCount.
func (h *Handler) Featured(_ context.Context, n int) []*dto.ProductSummaryDTO {
	if n <= 0 {
		n = FeaturedCount
	}
	return dto.NewProductSummaries(h.catalog.Featured(n), h.locale)
}
