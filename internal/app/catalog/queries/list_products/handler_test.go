package list_products

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/murkotick/storefront-service/internal/app/catalog/dto"
	"github.com/murkotick/storefront-service/internal/app/catalog/filter"
	"github.com/murkotick/storefront-service/internal/app/catalog/source"
)

func productIDs(items []*dto.ProductSummaryDTO) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ProductID)
	}
	return out
}

func TestHandler_ExecuteAndFeatured(t *testing.T) {
	ctx := context.Background()
	c, err := source.NewYAMLSource("").Load(ctx)
	require.NoError(t, err)
	h := NewHandler(c, language.English)

	// lt-006 is priced above the default ceiling.
	all := h.Execute(ctx, filter.Default(nil))
	assert.Equal(t, []string{"lt-001", "lt-002", "lt-003", "lt-004", "lt-005", "lt-007", "lt-008"}, productIDs(all))

	waterproofOrNew := h.Execute(ctx, filter.Default(nil).ToggleTag("New").ToggleTag("Waterproof"))
	assert.Equal(t, []string{"lt-001", "lt-002", "lt-003", "lt-005"}, productIDs(waterproofOrNew))
	assert.True(t, waterproofOrNew[0].IsNew)
	assert.False(t, waterproofOrNew[1].IsNew)

	assert.Equal(t, []string{"lt-001", "lt-002", "lt-003", "lt-004"}, productIDs(h.Featured(ctx, 0)))
	assert.Equal(t, []string{"lt-001"}, productIDs(h.Featured(ctx, 1)))
}

func TestHandler_ExecuteInKeepsCachesApart(t *testing.T) {
	ctx := context.Background()
	c, err := source.NewYAMLSource("").Load(ctx)
	require.NoError(t, err)
	h := NewHandler(c, language.English)

	mine, theirs := h.NewMemo(), h.NewMemo()
	waterproof := filter.Default(nil).ToggleTag("Waterproof")
	cheap := filter.Default(nil).WithMaxPrice(5000)

	for range 3 {
		assert.Equal(t, productIDs(h.Execute(ctx, waterproof)), productIDs(h.ExecuteIn(ctx, mine, waterproof)))
		h.ExecuteIn(ctx, theirs, cheap)
	}
	assert.Equal(t, 1, mine.Computations())
	assert.Equal(t, 1, theirs.Computations())

	assert.Equal(t, productIDs(h.Execute(ctx, cheap)), productIDs(h.ExecuteIn(ctx, nil, cheap)))
}
