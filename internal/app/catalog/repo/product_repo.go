package repo

import (
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-service/internal/models/m_product"
)

// ProductRepo is the Spanner implementation of the catalog write side.
// It returns *spanner.Mutation but never applies it.
type ProductRepo struct{}

func NewProductRepo() *ProductRepo {
	return &ProductRepo{}
}

// buildUpsertValues constructs the values map used for the upsert.
// It's unexported so tests in the same package can inspect the map without
// relying on spanner.Mutation internals.
func buildUpsertValues(p *domain.Product, position int) (map[string]interface{}, error) {
	specsJSON := ""
	if specs := p.Specs(); len(specs) > 0 {
		b, err := json.Marshal(specs)
		if err != nil {
			return nil, fmt.Errorf("marshal specs for %s: %w", p.ID(), err)
		}
		specsJSON = string(b)
	}

	return m_product.BuildUpsertMap(
		p.ID(),
		p.Name(),
		p.Category(),
		p.Price().Amount(),
		p.Rating(),
		p.Image(),
		p.Images(),
		p.Description(),
		p.Story(),
		specsJSON,
		p.Tags(),
		position,
	), nil
}

// UpsertMut builds an InsertOrUpdate mutation so seeding can be re-run.
func (r *ProductRepo) UpsertMut(p *domain.Product, position int) (*spanner.Mutation, error) {
	if p == nil {
		return nil, nil
	}
	values, err := buildUpsertValues(p, position)
	if err != nil {
		return nil, err
	}
	return m_product.UpsertMutation(values), nil
}
