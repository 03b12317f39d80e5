package dto

import (
	"golang.org/x/text/language"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
)

// GalleryImages is how many images the product page shows.
const GalleryImages = 4

// ProductDTO contains full product fields returned by the product page query.
type ProductDTO struct {
	ProductID    string
	SKU          string
	Name         string
	Category     string
	CategoryName string
	Price        int64
	// PriceDisplay is the locale-formatted price, e.g. "24 900 ₽".
	PriceDisplay string
	Rating       float64
	Image        string
	Gallery      []string
	Description  string
	Story        string
	Specs        map[string]string
	Tags         []string
}

// ProductSummaryDTO is a compact DTO for catalog grids.
type ProductSummaryDTO struct {
	ProductID    string
	Name         string
	Category     string
	Price        int64
	PriceDisplay string
	Image        string
	Rating       float64
	// IsNew drives the "New" badge on product cards.
	IsNew bool
}

// CategoryDTO is one entry of the category navigation list.
type CategoryDTO struct {
	ID   string
	Name string
}

// NewProductDTO flattens a product for the read side.
func NewProductDTO(p *domain.Product, c *domain.Catalog, tag language.Tag) *ProductDTO {
	categoryName := p.Category()
	if cat, ok := c.Category(p.Category()); ok && cat.Name != "" {
		categoryName = cat.Name
	}
	return &ProductDTO{
		ProductID:    p.ID(),
		SKU:          p.SKU(),
		Name:         p.Name(),
		Category:     p.Category(),
		CategoryName: categoryName,
		Price:        p.Price().Amount(),
		PriceDisplay: p.Price().Format(tag),
		Rating:       p.Rating(),
		Image:        p.Image(),
		Gallery:      p.Gallery(GalleryImages),
		Description:  p.Description(),
		Story:        p.Story(),
		Specs:        p.Specs(),
		Tags:         p.Tags(),
	}
}

// NewProductSummaryDTO builds the card view of a product.
func NewProductSummaryDTO(p *domain.Product, tag language.Tag) *ProductSummaryDTO {
	return &ProductSummaryDTO{
		ProductID:    p.ID(),
		Name:         p.Name(),
		Category:     p.Category(),
		Price:        p.Price().Amount(),
		PriceDisplay: p.Price().Format(tag),
		Image:        p.Image(),
		Rating:       p.Rating(),
		IsNew:        p.HasTag("New"),
	}
}

// NewProductSummaries maps a product list preserving order.
func NewProductSummaries(products []*domain.Product, tag language.Tag) []*ProductSummaryDTO {
	out := make([]*ProductSummaryDTO, 0, len(products))
	for _, p := range products {
		out = append(out, NewProductSummaryDTO(p, tag))
	}
	return out
}
