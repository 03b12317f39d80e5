package storefrontv1

import "time"

// Catalog

type Category struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type ListCategoriesRequest struct{}

type ListCategoriesReply struct {
	Categories []*Category `json:"categories"`
}

type GetFilterMetadataRequest struct{}

type FilterMetadata struct {
	Categories      []*Category `json:"categories"`
	Tags            []string    `json:"tags"`
	MinPrice        int64       `json:"min_price"`
	MaxPrice        int64       `json:"max_price"`
	PriceStep       int64       `json:"price_step"`
	DefaultMaxPrice int64       `json:"default_max_price"`
}

// ListProductsRequest carries the catalog view's filter state.
// A nil MaxPrice means the default ceiling.
type ListProductsRequest struct {
	// SessionId is optional; when set the session's own result cache is used.
	SessionId string   `json:"session_id,omitempty"`
	Category  *string  `json:"category,omitempty"`
	MaxPrice  *int64   `json:"max_price,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

type ListFeaturedRequest struct {
	// Limit defaults to 4 when zero.
	Limit int32 `json:"limit,omitempty"`
}

type ProductSummary struct {
	ProductId    string  `json:"product_id"`
	Name         string  `json:"name"`
	Category     string  `json:"category"`
	Price        int64   `json:"price"`
	PriceDisplay string  `json:"price_display"`
	Image        string  `json:"image"`
	Rating       float64 `json:"rating"`
	IsNew        bool    `json:"is_new"`
}

type ListProductsReply struct {
	Products []*ProductSummary `json:"products"`
}

type GetProductRequest struct {
	ProductId string `json:"product_id"`
}

type Product struct {
	ProductId    string            `json:"product_id"`
	Sku          string            `json:"sku"`
	Name         string            `json:"name"`
	Category     string            `json:"category"`
	CategoryName string            `json:"category_name"`
	Price        int64             `json:"price"`
	PriceDisplay string            `json:"price_display"`
	Rating       float64           `json:"rating"`
	Image        string            `json:"image"`
	Gallery      []string          `json:"gallery"`
	Description  string            `json:"description"`
	Story        string            `json:"story"`
	Specs        map[string]string `json:"specs"`
	Tags         []string          `json:"tags"`
}

type GetProductReply struct {
	Product *Product `json:"product"`
}

// Sessions

type StartSessionRequest struct{}

type StartSessionReply struct {
	SessionId  string         `json:"session_id"`
	Transcript []*ChatMessage `json:"transcript"`
}

type EndSessionRequest struct {
	SessionId string `json:"session_id"`
}

type EndSessionReply struct{}

// Cart

type GetCartRequest struct {
	SessionId string `json:"session_id"`
}

type AddToCartRequest struct {
	SessionId string  `json:"session_id"`
	ProductId string  `json:"product_id"`
	Quantity  int32   `json:"quantity"`
	Size      *string `json:"size,omitempty"`
	Color     *string `json:"color,omitempty"`
}

type RemoveFromCartRequest struct {
	SessionId string `json:"session_id"`
	ProductId string `json:"product_id"`
}

type ClearCartRequest struct {
	SessionId string `json:"session_id"`
}

type SetCartOpenRequest struct {
	SessionId string `json:"session_id"`
	Open      bool   `json:"open"`
}

type CartLine struct {
	Product         *ProductSummary `json:"product"`
	Quantity        int32           `json:"quantity"`
	Size            *string         `json:"size,omitempty"`
	Color           *string         `json:"color,omitempty"`
	Subtotal        int64           `json:"subtotal"`
	SubtotalDisplay string          `json:"subtotal_display"`
}

type CartReply struct {
	Lines        []*CartLine `json:"lines"`
	Total        int64       `json:"total"`
	TotalDisplay string      `json:"total_display"`
	Count        int32       `json:"count"`
	Units        int32       `json:"units"`
	Open         bool        `json:"open"`
}

// Checkout

type PlaceOrderRequest struct {
	SessionId     string `json:"session_id"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	Address       string `json:"address"`
	City          string `json:"city"`
	PostalCode    string `json:"postal_code"`
	PaymentMethod string `json:"payment_method"`
}

type OrderLine struct {
	ProductId string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int32   `json:"quantity"`
	Size      *string `json:"size,omitempty"`
	Color     *string `json:"color,omitempty"`
	Subtotal  int64   `json:"subtotal"`
}

type PlaceOrderReply struct {
	OrderNumber   string       `json:"order_number"`
	Lines         []*OrderLine `json:"lines"`
	Subtotal      int64        `json:"subtotal"`
	Shipping      int64        `json:"shipping"`
	Total         int64        `json:"total"`
	TotalDisplay  string       `json:"total_display"`
	PaymentMethod string       `json:"payment_method"`
	PlacedAt      time.Time    `json:"placed_at"`
}

// Advisor

type ChatMessage struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type AskAdvisorRequest struct {
	SessionId string `json:"session_id"`
	Query     string `json:"query"`
}

type AskAdvisorReply struct {
	// Ignored is set when the query was blank and nothing was sent.
	Ignored  bool         `json:"ignored"`
	Fallback bool         `json:"fallback"`
	Answer   *ChatMessage `json:"answer,omitempty"`
}

type GetTranscriptRequest struct {
	SessionId string `json:"session_id"`
}

type TranscriptReply struct {
	Messages []*ChatMessage `json:"messages"`
	Pending  bool           `json:"pending"`
}
