package m_product

import (
	"cloud.google.com/go/spanner"
)

// UpsertMutation builds a spanner.InsertOrUpdate mutation for a product using a map of values.
// Expected keys are the column names declared in fields.go.
func UpsertMutation(values map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(values))
	vals := make([]interface{}, 0, len(values))
	for col, v := range values {
		cols = append(cols, col)
		vals = append(vals, v)
	}
	return spanner.InsertOrUpdate(TableName, cols, vals)
}

// BuildUpsertMap prepares the canonical fields for a product row.
// Empty optional text columns are stored as NULL.
func BuildUpsertMap(productID, name, category string, price int64, rating float64,
	image string, images []string, description, story, specsJSON string, tags []string, position int) map[string]interface{} {

	return map[string]interface{}{
		ColProductID:   productID,
		ColName:        name,
		ColCategory:    category,
		ColPrice:       price,
		ColRating:      rating,
		ColImage:       nullable(image),
		ColImages:      images,
		ColDescription: nullable(description),
		ColStory:       nullable(story),
		ColSpecsJSON:   nullable(specsJSON),
		ColTags:        tags,
		ColPosition:    int64(position),
	}
}

func nullable(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
