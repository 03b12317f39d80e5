package source

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
)

// SpannerSource reads the catalog tables once at startup. It never writes;
// seeding is done by cmd/migrate.
type SpannerSource struct {
	Client *spanner.Client
}

func NewSpannerSource(client *spanner.Client) *SpannerSource {
	return &SpannerSource{Client: client}
}

// Load reads categories and products from a single read-only snapshot so
// both lists are consistent with each other.
func (s *SpannerSource) Load(ctx context.Context) (*domain.Catalog, error) {
	if s.Client == nil {
		return nil, fmt.Errorf("catalog source: spanner client is nil")
	}

	tx := s.Client.ReadOnlyTransaction()
	defer tx.Close()

	categories, err := s.loadCategories(ctx, tx)
	if err != nil {
		return nil, err
	}
	products, err := s.loadProducts(ctx, tx)
	if err != nil {
		return nil, err
	}
	return domain.NewCatalog(categories, products)
}

func (s *SpannerSource) loadCategories(ctx context.Context, tx *spanner.ReadOnlyTransaction) ([]domain.Category, error) {
	stmt := spanner.Statement{
		SQL: `SELECT category_id, name
		      FROM categories
		      ORDER BY position ASC, category_id ASC`,
	}
	iter := tx.Query(ctx, stmt)
	defer iter.Stop()

	var out []domain.Category
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("query categories: %w", err)
		}
		var c domain.Category
		if err := row.Columns(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
}

func (s *SpannerSource) loadProducts(ctx context.Context, tx *spanner.ReadOnlyTransaction) ([]*domain.Product, error) {
	stmt := spanner.Statement{
		SQL: `SELECT product_id, name, category, price, rating,
		             image, images, description, story, specs_json, tags
		      FROM products
		      ORDER BY position ASC, product_id ASC`,
	}
	iter := tx.Query(ctx, stmt)
	defer iter.Stop()

	var out []*domain.Product
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			return out, nil
		}
		if err != nil {
			return nil, fmt.Errorf("query products: %w", err)
		}

		var (
			id, name, category string
			price              int64
			rating             float64
			image              spanner.NullString
			images             []string
			description, story spanner.NullString
			specsJSON          spanner.NullString
			tags               []string
		)
		if err := row.Columns(&id, &name, &category, &price, &rating,
			&image, &images, &description, &story, &specsJSON, &tags); err != nil {
			return nil, err
		}

		var specs map[string]string
		if specsJSON.Valid && specsJSON.StringVal != "" {
			if err := json.Unmarshal([]byte(specsJSON.StringVal), &specs); err != nil {
				return nil, fmt.Errorf("product %s: invalid specs_json: %w", id, err)
			}
		}

		p, err := domain.NewProduct(domain.ProductInput{
			ID:          id,
			Name:        name,
			Category:    category,
			Price:       price,
			Rating:      rating,
			Image:       image.StringVal,
			Images:      images,
			Description: description.StringVal,
			Story:       story.StringVal,
			Specs:       specs,
			Tags:        tags,
		})
		if err != nil {
			return nil, fmt.Errorf("product %s: %w", id, err)
		}
		out = append(out, p)
	}
}
