package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Category describes one entry of the fixed category list supplied with the catalog.
type Category struct {
	ID   string
	Name string
}

// Catalog is the static, read-only collection of purchasable products.
// It is loaded wholesale before first use and never mutated afterwards,
// so it is safe to share between goroutines.
type Catalog struct {
	categories []Category
	products   []*Product
	byID       map[string]*Product
	tags       []string
}

// NewCatalog validates the records and builds a Catalog. Product order is
// preserved; every product must reference a known category.
func NewCatalog(categories []Category, products []*Product) (*Catalog, error) {
	known := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if strings.TrimSpace(c.ID) == "" {
			return nil, ErrEmptyCategoryID
		}
		if _, dup := known[c.ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCategoryID, c.ID)
		}
		known[c.ID] = struct{}{}
	}

	byID := make(map[string]*Product, len(products))
	tags := make([]string, 0)
	seenTags := make(map[string]struct{})
	for _, p := range products {
		if _, dup := byID[p.ID()]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProductID, p.ID())
		}
		if _, ok := known[p.Category()]; !ok {
			return nil, fmt.Errorf("%w: product %s has category %q", ErrUnknownCategory, p.ID(), p.Category())
		}
		byID[p.ID()] = p

		for _, t := range p.tags {
			if _, ok := seenTags[t]; ok {
				continue
			}
			seenTags[t] = struct{}{}
			tags = append(tags, t)
		}
	}

	return &Catalog{
		categories: slices.Clone(categories),
		products:   slices.Clone(products),
		byID:       byID,
		tags:       tags,
	}, nil
}

// Products returns all products in catalog order.
func (c *Catalog) Products() []*Product {
	return slices.Clone(c.products)
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Categories returns the fixed category list in the order it was supplied.
func (c *Catalog) Categories() []Category {
	return slices.Clone(c.categories)
}

// Category looks up a category descriptor by id.
func (c *Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// Tags returns every tag seen across the catalog, in first-seen order.
func (c *Catalog) Tags() []string {
	return slices.Clone(c.tags)
}

// Product returns the product with the given id or ErrProductNotFound.
func (c *Catalog) Product(id string) (*Product, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

// Featured returns the first n products of the catalog.
func (c *Catalog) Featured(n int) []*Product {
	if n <= 0 {
		return nil
	}
	if n > len(c.products) {
		n = len(c.products)
	}
	return slices.Clone(c.products[:n])
}
