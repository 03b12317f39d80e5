package repo

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-service/internal/models/m_product"
)

// TestUpsertMut_FullRecord verifies every column of a fully populated product.
func TestUpsertMut_FullRecord(t *testing.T) {
	r := NewProductRepo()

	p, err := domain.NewProduct(domain.ProductInput{
		ID:          "tg-001",
		Name:        "Shell Jacket",
		Category:    "apparel",
		Price:       18500,
		Rating:      4.8,
		Image:       "main.jpg",
		Images:      []string{"a.jpg", "b.jpg"},
		Description: "Three-layer membrane shell.",
		Story:       "Built for the ridge line.",
		Specs:       map[string]string{"Weight": "450 g", "Membrane": "3L"},
		Tags:        []string{"New", "Waterproof"},
	})
	require.NoError(t, err)

	values, err := buildUpsertValues(p, 3)
	require.NoError(t, err)

	assert.Equal(t, "tg-001", values[m_product.ColProductID])
	assert.Equal(t, int64(18500), values[m_product.ColPrice])
	assert.Equal(t, 4.8, values[m_product.ColRating])
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, values[m_product.ColImages])
	assert.Equal(t, []string{"New", "Waterproof"}, values[m_product.ColTags])
	assert.Equal(t, int64(3), values[m_product.ColPosition])

	raw, ok := values[m_product.ColSpecsJSON].(string)
	require.True(t, ok, "specs_json should be a string")
	var specs map[string]string
	require.NoError(t, json.Unmarshal([]byte(raw), &specs))
	assert.Equal(t, "3L", specs["Membrane"])

	mut, err := r.UpsertMut(p, 3)
	require.NoError(t, err)
	require.NotNil(t, mut)
}

// TestUpsertMut_EmptyOptionalColumns verifies empty text columns become NULL.
func TestUpsertMut_EmptyOptionalColumns(t *testing.T) {
	p, err := domain.NewProduct(domain.ProductInput{ID: "tg-002", Name: "Patch", Category: "gear"})
	require.NoError(t, err)

	values, err := buildUpsertValues(p, 0)
	require.NoError(t, err)

	for _, col := range []string{m_product.ColImage, m_product.ColDescription, m_product.ColStory, m_product.ColSpecsJSON} {
		v, ok := values[col]
		require.True(t, ok, "expected key %s in upsert map", col)
		assert.Nil(t, v, col)
	}
}

func TestUpsertMut_NilProduct(t *testing.T) {
	mut, err := NewProductRepo().UpsertMut(nil, 0)
	assert.NoError(t, err)
	assert.Nil(t, mut)
}
