package filter

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/murkotick/storefront-service/internal/app/catalog/domain"
)

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	inputs := []domain.ProductInput{
		{ID: "jacket", Name: "Shell Jacket", Category: "apparel", Price: 18000, Tags: []string{"New", "Waterproof"}},
		{ID: "boots", Name: "Assault Boots", Category: "footwear", Price: 14500, Tags: []string{"Waterproof"}},
		{ID: "patch", Name: "Morale Patch", Category: "gear", Price: 0, Tags: []string{"Gift"}},
		{ID: "pack", Name: "Assault Pack", Category: "gear", Price: 22000, Tags: []string{"New", "Modular"}},
		{ID: "gloves", Name: "Gloves", Category: "apparel", Price: 3500, Tags: []string{"Tactical"}},
		{ID: "optic", Name: "Red Dot", Category: "gear", Price: 52000, Tags: []string{"Pro"}},
	}
	products := make([]*domain.Product, 0, len(inputs))
	for _, in := range inputs {
		p, err := domain.NewProduct(in)
		require.NoError(t, err)
		products = append(products, p)
	}
	c, err := domain.NewCatalog([]domain.Category{
		{ID: "apparel", Name: "Apparel"},
		{ID: "footwear", Name: "Footwear"},
		{ID: "gear", Name: "Gear"},
	}, products)
	require.NoError(t, err)
	return c
}

func ids(products []*domain.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID())
	}
	return out
}

func strptr(s string) *string { return &s }

func TestApply_DefaultStateHidesOnlyOverCeiling(t *testing.T) {
	got := Apply(testCatalog(t).Products(), Default(nil))
	if diff := cmp.Diff([]string{"jacket", "boots", "patch", "pack", "gloves"}, ids(got)); diff != "" {
		t.Fatalf("unexpected products (-want +got):\n%s", diff)
	}
}

func TestApply_ZeroCeilingReturnsOnlyFreeProducts(t *testing.T) {
	got := Apply(testCatalog(t).Products(), Default(nil).WithMaxPrice(0))
	assert.Equal(t, []string{"patch"}, ids(got))
}

func TestApply_ZeroCeilingWithNoFreeProductsIsEmpty(t *testing.T) {
	got := Apply(testCatalog(t).Products(), State{Category: strptr("footwear"), MaxPrice: 0})
	assert.Empty(t, got)
}

func TestApply_TagsAreUnionInCatalogOrder(t *testing.T) {
	s := Default(nil).ToggleTag("Waterproof").ToggleTag("New")
	got := Apply(testCatalog(t).Products(), s)
	if diff := cmp.Diff([]string{"jacket", "boots", "pack"}, ids(got)); diff != "" {
		t.Fatalf("unexpected products (-want +got):\n%s", diff)
	}
}

func TestApply_CategoryIsExactMatch(t *testing.T) {
	got := Apply(testCatalog(t).Products(), Default(strptr("apparel")))
	assert.Equal(t, []string{"jacket", "gloves"}, ids(got))

	got = Apply(testCatalog(t).Products(), Default(strptr("app")))
	assert.Empty(t, got)
}

func TestApply_AllConstraintsCombine(t *testing.T) {
	s := State{Category: strptr("gear"), MaxPrice: 30000, Tags: []string{"New", "Pro"}}
	got := Apply(testCatalog(t).Products(), s)
	assert.Equal(t, []string{"pack"}, ids(got))
}

func TestApply_IsIdempotentAndPure(t *testing.T) {
	c := testCatalog(t)
	products := c.Products()
	s := Default(nil).ToggleTag("New")

	first := Apply(products, s)
	second := Apply(products, s)

	assert.Equal(t, first, second)
	assert.Equal(t, c.Products(), products, "input slice must not be reordered")
	assert.Equal(t, []string{"New"}, s.Tags)
}

func TestState_ToggleAndReset(t *testing.T) {
	cat := strptr("gear")
	s := Default(cat).ToggleTag("New").ToggleTag("Pro").WithMaxPrice(10000)
	assert.Equal(t, []string{"New", "Pro"}, s.Tags)

	s2 := s.ToggleTag("New")
	assert.Equal(t, []string{"Pro"}, s2.Tags)
	assert.Equal(t, []string{"New", "Pro"}, s.Tags, "toggle must not alias the previous state")

	r := s.Reset()
	assert.Equal(t, DefaultMaxPrice, r.MaxPrice)
	assert.Empty(t, r.Tags)
	require.NotNil(t, r.Category)
	assert.Equal(t, "gear", *r.Category)
}

func TestState_Equal(t *testing.T) {
	assert.True(t, Default(nil).Equal(Default(nil)))
	assert.True(t, Default(strptr("a")).Equal(Default(strptr("a"))))
	assert.False(t, Default(strptr("a")).Equal(Default(nil)))
	assert.False(t, Default(nil).ToggleTag("x").Equal(Default(nil)))
	assert.False(t, Default(nil).WithMaxPrice(1).Equal(Default(nil)))
}

func TestMemo_RecomputesOnlyOnChange(t *testing.T) {
	m := NewMemo(testCatalog(t))

	s := Default(nil).ToggleTag("Waterproof")
	first := m.Products(s)
	second := m.Products(Default(nil).ToggleTag("Waterproof"))
	assert.Equal(t, 1, m.Computations())
	assert.Equal(t, first, second)

	third := m.Products(s.WithMaxPrice(15000))
	assert.Equal(t, 2, m.Computations())
	assert.Equal(t, []string{"boots"}, ids(third))
}
