package storefront

import (
	"slices"

	"golang.org/x/text/language"

	storefrontv1 "github.com/murkotick/storefront-service/api/storefront/v1"

	"github.com/murkotick/storefront-service/internal/app/cart/store"
	"github.com/murkotick/storefront-service/internal/app/catalog/dto"
	"github.com/murkotick/storefront-service/internal/app/catalog/filter"
	"github.com/murkotick/storefront-service/internal/app/catalog/queries/filter_metadata"
	chat "github.com/murkotick/storefront-service/internal/app/chat/domain"
	checkout "github.com/murkotick/storefront-service/internal/app/checkout/domain"
)

func mapFilterState(req *storefrontv1.ListProductsRequest) filter.State {
	s := filter.Default(req.Category)
	if req.MaxPrice != nil {
		s = s.WithMaxPrice(*req.MaxPrice)
	}
	for _, t := range req.Tags {
		if t == "" {
			continue
		}
		// toggling twice would deselect, so only add unseen tags
		if !slices.Contains(s.Tags, t) {
			s = s.ToggleTag(t)
		}
	}
	return s
}

func mapCategories(in []dto.CategoryDTO) []*storefrontv1.Category {
	out := make([]*storefrontv1.Category, 0, len(in))
	for _, c := range in {
		out = append(out, &storefrontv1.Category{Id: c.ID, Name: c.Name})
	}
	return out
}

func mapMetadata(m filter_metadata.Metadata) *storefrontv1.FilterMetadata {
	return &storefrontv1.FilterMetadata{
		Categories:      mapCategories(m.Categories),
		Tags:            m.Tags,
		MinPrice:        m.MinPrice,
		MaxPrice:        m.MaxPrice,
		PriceStep:       m.PriceStep,
		DefaultMaxPrice: m.DefaultMaxPrice,
	}
}

func mapSummary(d *dto.ProductSummaryDTO) *storefrontv1.ProductSummary {
	return &storefrontv1.ProductSummary{
		ProductId:    d.ProductID,
		Name:         d.Name,
		Category:     d.Category,
		Price:        d.Price,
		PriceDisplay: d.PriceDisplay,
		Image:        d.Image,
		Rating:       d.Rating,
		IsNew:        d.IsNew,
	}
}

func mapSummaries(in []*dto.ProductSummaryDTO) *storefrontv1.ListProductsReply {
	out := make([]*storefrontv1.ProductSummary, 0, len(in))
	for _, d := range in {
		out = append(out, mapSummary(d))
	}
	return &storefrontv1.ListProductsReply{Products: out}
}

func mapProduct(d *dto.ProductDTO) *storefrontv1.Product {
	return &storefrontv1.Product{
		ProductId:    d.ProductID,
		Sku:          d.SKU,
		Name:         d.Name,
		Category:     d.Category,
		CategoryName: d.CategoryName,
		Price:        d.Price,
		PriceDisplay: d.PriceDisplay,
		Rating:       d.Rating,
		Image:        d.Image,
		Gallery:      d.Gallery,
		Description:  d.Description,
		Story:        d.Story,
		Specs:        d.Specs,
		Tags:         d.Tags,
	}
}

func mapCart(s store.Snapshot, tag language.Tag) *storefrontv1.CartReply {
	lines := make([]*storefrontv1.CartLine, 0, len(s.Lines))
	for _, l := range s.Lines {
		sub := l.Subtotal()
		lines = append(lines, &storefrontv1.CartLine{
			Product:         mapSummary(dto.NewProductSummaryDTO(l.Product(), tag)),
			Quantity:        int32(l.Quantity()),
			Size:            l.Size(),
			Color:           l.Color(),
			Subtotal:        sub.Amount(),
			SubtotalDisplay: sub.Format(tag),
		})
	}
	return &storefrontv1.CartReply{
		Lines:        lines,
		Total:        s.Total.Amount(),
		TotalDisplay: s.Total.Format(tag),
		Count:        int32(s.Count),
		Units:        int32(s.Units),
		Open:         s.Open,
	}
}

func mapOrderForm(req *storefrontv1.PlaceOrderRequest) (checkout.OrderForm, error) {
	payment, err := checkout.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return checkout.OrderForm{}, err
	}
	return checkout.OrderForm{
		Contact: checkout.Contact{Email: req.Email, Phone: req.Phone},
		Shipping: checkout.ShippingAddress{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Address:    req.Address,
			City:       req.City,
			PostalCode: req.PostalCode,
		},
		Payment: payment,
	}, nil
}

func mapConfirmation(c *checkout.Confirmation, tag language.Tag) *storefrontv1.PlaceOrderReply {
	lines := make([]*storefrontv1.OrderLine, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, &storefrontv1.OrderLine{
			ProductId: l.ProductID,
			Name:      l.Name,
			Quantity:  int32(l.Quantity),
			Size:      l.Size,
			Color:     l.Color,
			Subtotal:  l.Subtotal.Amount(),
		})
	}
	return &storefrontv1.PlaceOrderReply{
		OrderNumber:   c.OrderNumber,
		Lines:         lines,
		Subtotal:      c.Subtotal.Amount(),
		Shipping:      c.Shipping.Amount(),
		Total:         c.Total.Amount(),
		TotalDisplay:  c.Total.Format(tag),
		PaymentMethod: string(c.Payment),
		PlacedAt:      c.PlacedAt,
	}
}

func mapMessage(m chat.Message) *storefrontv1.ChatMessage {
	return &storefrontv1.ChatMessage{
		Role:      string(m.Role),
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
}

func mapTranscript(msgs []chat.Message) []*storefrontv1.ChatMessage {
	out := make([]*storefrontv1.ChatMessage, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, mapMessage(m))
	}
	return out
}
