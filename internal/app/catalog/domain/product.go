package domain

import (
	"maps"
	"slices"
	"strings"
)

// MaxRating is the upper bound of a product rating.
const MaxRating = 5.0

// ProductInput carries the raw fields of a catalog record.
// It is what catalog sources decode into before NewProduct validates it.
type ProductInput struct {
	ID          string
	Name        string
	Category    string
	Price       int64
	Rating      float64
	Image       string
	Images      []string
	Description string
	Story       string
	Specs       map[string]string
	Tags        []string
}

// Product is an immutable catalog entry. Products are built once when the
// catalog is loaded and are never modified afterwards.
type Product struct {
	id          string
	name        string
	category    string
	price       Money
	rating      float64
	image       string
	images      []string
	description string
	story       string
	specs       map[string]string
	tags        []string
}

// NewProduct validates the input and builds a Product.
// Tags are de-duplicated keeping their first occurrence.
func NewProduct(in ProductInput) (*Product, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return nil, ErrEmptyProductID
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, ErrEmptyProductName
	}
	category := strings.TrimSpace(in.Category)
	if category == "" {
		return nil, ErrEmptyProductCategory
	}
	if in.Price < 0 {
		return nil, ErrNegativePrice
	}
	if in.Rating < 0 || in.Rating > MaxRating {
		return nil, ErrRatingOutOfRange
	}

	tags := make([]string, 0, len(in.Tags))
	for _, t := range in.Tags {
		if t == "" || slices.Contains(tags, t) {
			continue
		}
		tags = append(tags, t)
	}

	specs := make(map[string]string, len(in.Specs))
	maps.Copy(specs, in.Specs)

	return &Product{
		id:          id,
		name:        name,
		category:    category,
		price:       NewMoney(in.Price),
		rating:      in.Rating,
		image:       in.Image,
		images:      slices.Clone(in.Images),
		description: strings.TrimSpace(in.Description),
		story:       strings.TrimSpace(in.Story),
		specs:       specs,
		tags:        tags,
	}, nil
}

// Getters

func (p *Product) ID() string {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Category() string {
	return p.category
}

func (p *Product) Price() Money {
	return p.price
}

func (p *Product) Rating() float64 {
	return p.rating
}

func (p *Product) Image() string {
	return p.image
}

// Images returns a copy of the additional image references, in order.
func (p *Product) Images() []string {
	return slices.Clone(p.images)
}

func (p *Product) Description() string {
	return p.description
}

func (p *Product) Story() string {
	return p.story
}

// Specs returns a copy of the spec-label to spec-value mapping.
func (p *Product) Specs() map[string]string {
	return maps.Clone(p.specs)
}

// Tags returns a copy of the product's tags in catalog order.
func (p *Product) Tags() []string {
	return slices.Clone(p.tags)
}

// HasTag reports whether the product carries the given tag.
func (p *Product) HasTag(tag string) bool {
	return slices.Contains(p.tags, tag)
}

// HasAnyTag reports whether at least one of the product's tags is in the set.
func (p *Product) HasAnyTag(set map[string]struct{}) bool {
	for _, t := range p.tags {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}

// SKU returns the display article number: the id followed by the first three
// letters of the category in upper case, e.g. "tg-001-APP".
func (p *Product) SKU() string {
	prefix := []rune(strings.ToUpper(p.category))
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	return p.id + "-" + string(prefix)
}

// Gallery returns up to n image references for the product page, repeating
// the additional images when there are fewer than n of them.
func (p *Product) Gallery(n int) []string {
	if n <= 0 || len(p.images) == 0 {
		return nil
	}
	out := make([]string, 0, n)
	for len(out) < n && len(out) < 2*len(p.images) {
		out = append(out, p.images[len(out)%len(p.images)])
	}
	return out
}
