package repo

import (
	"cloud.google.com/go/spanner"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-service/internal/models/m_category"
)

// CategoryRepo writes the fixed category list.
type CategoryRepo struct{}

func NewCategoryRepo() *CategoryRepo {
	return &CategoryRepo{}
}

func (r *CategoryRepo) UpsertMut(c domain.Category, position int) *spanner.Mutation {
	return m_category.UpsertMutation(m_category.BuildUpsertMap(c.ID, c.Name, position))
}
