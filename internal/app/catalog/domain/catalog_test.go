package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCategories() []Category {
	return []Category{{ID: "apparel", Name: "Apparel"}, {ID: "gear", Name: "Gear"}}
}

func TestNewCatalog_RejectsBadRecords(t *testing.T) {
	a := mustProduct(t, ProductInput{ID: "a", Name: "A", Category: "apparel"})
	dupA := mustProduct(t, ProductInput{ID: "a", Name: "A2", Category: "gear"})
	orphan := mustProduct(t, ProductInput{ID: "o", Name: "O", Category: "weapons"})

	_, err := NewCatalog(testCategories(), []*Product{a, dupA})
	assert.ErrorIs(t, err, ErrDuplicateProductID)

	_, err = NewCatalog(testCategories(), []*Product{orphan})
	assert.ErrorIs(t, err, ErrUnknownCategory)

	_, err = NewCatalog([]Category{{ID: "x"}, {ID: "x"}}, nil)
	assert.ErrorIs(t, err, ErrDuplicateCategoryID)

	_, err = NewCatalog([]Category{{ID: ""}}, nil)
	assert.ErrorIs(t, err, ErrEmptyCategoryID)
}

func TestCatalog_LookupsAndVocabulary(t *testing.T) {
	a := mustProduct(t, ProductInput{ID: "a", Name: "A", Category: "apparel", Tags: []string{"New", "Waterproof"}})
	b := mustProduct(t, ProductInput{ID: "b", Name: "B", Category: "gear", Tags: []string{"Tactical", "New"}})
	c := mustProduct(t, ProductInput{ID: "c", Name: "C", Category: "gear"})

	cat, err := NewCatalog(testCategories(), []*Product{a, b, c})
	require.NoError(t, err)

	assert.Equal(t, 3, cat.Len())
	assert.Equal(t, []string{"New", "Waterproof", "Tactical"}, cat.Tags())

	got, err := cat.Product("b")
	require.NoError(t, err)
	assert.Same(t, b, got)

	_, err = cat.Product("missing")
	assert.ErrorIs(t, err, ErrProductNotFound)

	gear, ok := cat.Category("gear")
	assert.True(t, ok)
	assert.Equal(t, "Gear", gear.Name)
	_, ok = cat.Category("nope")
	assert.False(t, ok)

	assert.Equal(t, []*Product{a, b}, cat.Featured(2))
	assert.Len(t, cat.Featured(10), 3)
	assert.Nil(t, cat.Featured(0))
}
