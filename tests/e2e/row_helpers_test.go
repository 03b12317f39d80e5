package e2e

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/iterator"
)

func mustCountRows(ctx context.Context, t *testing.T, client *spanner.Client, table string) int64 {
	t.Helper()
	iter := client.Single().Query(ctx, spanner.Statement{SQL: "SELECT COUNT(*) FROM " + table})
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err)
	var n int64
	require.NoError(t, row.Columns(&n))

	_, err = iter.Next()
	require.Equal(t, iterator.Done, err)
	return n
}

func mustReadSpecsJSON(ctx context.Context, t *testing.T, client *spanner.Client, productID string) spanner.NullString {
	t.Helper()
	row, err := client.Single().ReadRow(ctx, "products", spanner.Key{productID}, []string{"specs_json"})
	require.NoError(t, err)
	var specs spanner.NullString
	require.NoError(t, row.Columns(&specs))
	return specs
}
