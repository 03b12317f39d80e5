package m_category

import "cloud.google.com/go/spanner"

// BuildUpsertMap constructs a map with fields for a category row.
func BuildUpsertMap(categoryID, name string, position int) map[string]interface{} {
	return map[string]interface{}{
		ColCategoryID: categoryID,
		ColName:       name,
		ColPosition:   int64(position),
	}
}

// UpsertMutation constructs an InsertOrUpdate mutation for the categories table.
func UpsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for c, v := range values {
		cols = append(cols, c)
		vals = append(vals, v)
	}
	return spanner.InsertOrUpdate(TableName, cols, vals)
}
