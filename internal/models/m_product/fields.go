package m_product

// Field constants for the products table.
const (
	TableName = "products"

	ColProductID   = "product_id"
	ColName        = "name"
	ColCategory    = "category"
	ColPrice       = "price"
	ColRating      = "rating"
	ColImage       = "image"
	ColImages      = "images"
	ColDescription = "description"
	ColStory       = "story"
	ColSpecsJSON   = "specs_json"
	ColTags        = "tags"
	ColPosition    = "position"
)

// Columns lists the product columns in the order read queries select them.
var Columns = []string{
	ColProductID, ColName, ColCategory, ColPrice, ColRating, ColImage, ColImages,
	ColDescription, ColStory, ColSpecsJSON, ColTags, ColPosition,
}
