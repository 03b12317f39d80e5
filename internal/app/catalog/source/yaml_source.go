// Package source holds the catalog collaborators the service can start from:
// an embedded (or on-disk) YAML document and a read-only Spanner database.
package source

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
)

//go:embed catalog.yaml
var embeddedCatalog []byte

type yamlCategory struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

type yamlProduct struct {
	ID          string            `yaml:"id"`
	Name        string            `yaml:"name"`
	Category    string            `yaml:"category"`
	Price       int64             `yaml:"price"`
	Rating      float64           `yaml:"rating"`
	Image       string            `yaml:"image"`
	Images      []string          `yaml:"images"`
	Description string            `yaml:"description"`
	Story       string            `yaml:"story"`
	Specs       map[string]string `yaml:"specs"`
	Tags        []string          `yaml:"tags"`
}

type yamlCatalog struct {
	Categories []yamlCategory `yaml:"categories"`
	Products   []yamlProduct  `yaml:"products"`
}

// YAMLSource loads the catalog from a YAML document. With an empty Path the
// document compiled into the binary is used.
type YAMLSource struct {
	Path string
}

func NewYAMLSource(path string) *YAMLSource {
	return &YAMLSource{Path: path}
}

// Load reads and validates the catalog document.
func (s *YAMLSource) Load(_ context.Context) (*domain.Catalog, error) {
	data := embeddedCatalog
	if s.Path != "" {
		b, err := os.ReadFile(s.Path)
		if err != nil {
			return nil, fmt.Errorf("read catalog %s: %w", s.Path, err)
		}
		data = b
	}
	return DecodeYAML(data)
}

// DecodeYAML parses a catalog document into a validated Catalog.
func DecodeYAML(data []byte) (*domain.Catalog, error) {
	var doc yamlCatalog
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	categories := make([]domain.Category, 0, len(doc.Categories))
	for _, c := range doc.Categories {
		categories = append(categories, domain.Category{ID: c.ID, Name: c.Name})
	}

	products := make([]*domain.Product, 0, len(doc.Products))
	for i, yp := range doc.Products {
		p, err := domain.NewProduct(domain.ProductInput{
			ID:          yp.ID,
			Name:        yp.Name,
			Category:    yp.Category,
			Price:       yp.Price,
			Rating:      yp.Rating,
			Image:       yp.Image,
			Images:      yp.Images,
			Description: yp.Description,
			Story:       yp.Story,
			Specs:       yp.Specs,
			Tags:        yp.Tags,
		})
		if err != nil {
			return nil, fmt.Errorf("catalog product #%d (%s): %w", i, yp.ID, err)
		}
		products = append(products, p)
	}

	return domain.NewCatalog(categories, products)
}
