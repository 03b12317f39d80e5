package storefront

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/text/language"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	storefrontv1 "github.com/murkotick/storefront-service/api/storefront/v1"

	"github.com/murkotick/storefront-service/internal/app/cart/usecases/add_item"
	"github.com/murkotick/storefront-service/internal/app/catalog/queries/filter_metadata"
	"github.com/murkotick/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/murkotick/storefront-service/internal/app/catalog/queries/list_products"
	"github.com/murkotick/storefront-service/internal/app/chat/usecases/ask_advisor"
	"github.com/murkotick/storefront-service/internal/app/checkout/usecases/place_order"
	"github.com/murkotick/storefront-service/internal/app/session"
)

// Commands groups write interactors.
// Keep transport layer depending on application layer only.
type Commands struct {
	AddItem    *add_item.Interactor
	PlaceOrder *place_order.Interactor
	Ask        *ask_advisor.Interactor
}

// Queries groups read handlers.
type Queries struct {
	Get      *get_product.Handler
	List     *list_products.Handler
	Metadata *filter_metadata.Handler
}

// Handler is a thin gRPC transport adapter.
// It validates input, resolves the session and delegates to the application layer.
type Handler struct {
	storefrontv1.UnimplementedStorefrontServiceServer

	commands Commands
	queries  Queries
	sessions *session.Manager
	locale   language.Tag
	logger   *zap.Logger
}

func NewHandler(cmd Commands, qry Queries, sessions *session.Manager, locale language.Tag, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{commands: cmd, queries: qry, sessions: sessions, locale: locale, logger: logger}
}

func invalid(err error) error {
	return status.Error(codes.InvalidArgument, err.Error())
}

func (h *Handler) session(id string) (*session.Session, error) {
	if err := validateSessionID(id); err != nil {
		return nil, invalid(err)
	}
	s, err := h.sessions.Get(id)
	if err != nil {
		return nil, mapError(err)
	}
	return s, nil
}

// Catalog

func (h *Handler) ListCategories(ctx context.Context, _ *storefrontv1.ListCategoriesRequest) (*storefrontv1.ListCategoriesReply, error) {
	return &storefrontv1.ListCategoriesReply{Categories: mapCategories(h.queries.Metadata.Categories(ctx))}, nil
}

func (h *Handler) GetFilterMetadata(ctx context.Context, _ *storefrontv1.GetFilterMetadataRequest) (*storefrontv1.FilterMetadata, error) {
	return mapMetadata(h.queries.Metadata.Execute(ctx)), nil
}

func (h *Handler) ListProducts(ctx context.Context, req *storefrontv1.ListProductsRequest) (*storefrontv1.ListProductsReply, error) {
	if err := validateListProducts(req); err != nil {
		return nil, invalid(err)
	}
	state := mapFilterState(req)
	if req.SessionId == "" {
		return mapSummaries(h.queries.List.Execute(ctx, state)), nil
	}
	s, err := h.session(req.SessionId)
	if err != nil {
		return nil, err
	}
	memo := s.FilterMemo(h.queries.List.NewMemo)
	return mapSummaries(h.queries.List.ExecuteIn(ctx, memo, state)), nil
}

func (h *Handler) GetProduct(ctx context.Context, req *storefrontv1.GetProductRequest) (*storefrontv1.GetProductReply, error) {
	if req == nil || req.ProductId == "" {
		return nil, status.Error(codes.InvalidArgument, "product_id is required")
	}
	p, err := h.queries.Get.Execute(ctx, req.ProductId)
	if err != nil {
		return nil, mapError(err)
	}
	return &storefrontv1.GetProductReply{Product: mapProduct(p)}, nil
}

func (h *Handler) ListFeatured(ctx context.Context, req *storefrontv1.ListFeaturedRequest) (*storefrontv1.ListProductsReply, error) {
	if err := validateListFeatured(req); err != nil {
		return nil, invalid(err)
	}
	n := int(req.Limit)
	if n == 0 {
		n = list_products.FeaturedCount
	}
	return mapSummaries(h.queries.List.Featured(ctx, n)), nil
}

// Sessions

func (h *Handler) StartSession(_ context.Context, _ *storefrontv1.StartSessionRequest) (*storefrontv1.StartSessionReply, error) {
	s := h.sessions.Start()
	return &storefrontv1.StartSessionReply{
		SessionId:  s.ID(),
		Transcript: mapTranscript(s.Chat().Messages()),
	}, nil
}

func (h *Handler) EndSession(_ context.Context, req *storefrontv1.EndSessionRequest) (*storefrontv1.EndSessionReply, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if err := validateSessionID(req.SessionId); err != nil {
		return nil, invalid(err)
	}
	if err := h.sessions.End(req.SessionId); err != nil {
		return nil, mapError(err)
	}
	return &storefrontv1.EndSessionReply{}, nil
}

// Cart

func (h *Handler) GetCart(_ context.Context, req *storefrontv1.GetCartRequest) (*storefrontv1.CartReply, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	s, err := h.session(req.SessionId)
	if err != nil {
		return nil, err
	}
	return mapCart(s.Cart().Snapshot(), h.locale), nil
}

func (h *Handler) AddToCart(ctx context.Context, req *storefrontv1.AddToCartRequest) (*storefrontv1.CartReply, error) {
	if err := validateAddToCart(req); err != nil {
		return nil, invalid(err)
	}
	s, err := h.session(req.SessionId)
	if err != nil {
		return nil, err
	}

	snap, err := h.commands.AddItem.Execute(ctx, s.Cart(), add_item.Request{
		ProductID: req.ProductId,
		Quantity:  int(req.Quantity),
		Size:      req.Size,
		Color:     req.Color,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return mapCart(snap, h.locale), nil
}

func (h *Handler) RemoveFromCart(_ context.Context, req *storefrontv1.RemoveFromCartRequest) (*storefrontv1.CartReply, error) {
	if err := validateRemoveFromCart(req); err != nil {
		return nil, invalid(err)
	}
	s, err := h.session(req.SessionId)
	if err != nil {
		return nil, err
	}
	return mapCart(s.Cart().Remove(req.ProductId), h.locale), nil
}

func (h *Handler) ClearCart(_ context.Context, req *storefrontv1.ClearCartRequest) (*storefrontv1.CartReply, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	s, err := h.session(req.SessionId)
	if err != nil {
		return nil, err
	}
	return mapCart(s.Cart().Clear(), h.locale), nil
}

func (h *Handler) SetCartOpen(_ context.Context, req *storefrontv1.SetCartOpenRequest) (*storefrontv1.CartReply, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	s, err := h.session(req.SessionId)
	if err != nil {
		return nil, err
	}
	return mapCart(s.Cart().SetOpen(req.Open), h.locale), nil
}

// Checkout

func (h *Handler) PlaceOrder(ctx context.Context, req *storefrontv1.PlaceOrderRequest) (*storefrontv1.PlaceOrderReply, error) {
	if err := validatePlaceOrder(req); err != nil {
		return nil, invalid(err)
	}
	s, err := h.session(req.SessionId)
	if err != nil {
		return nil, err
	}

	form, err := mapOrderForm(req)
	if err != nil {
		return nil, mapError(err)
	}
	conf, err := h.commands.PlaceOrder.Execute(ctx, s.Cart(), form)
	if err != nil {
		return nil, mapError(err)
	}
	return mapConfirmation(conf, h.locale), nil
}

// Advisor

func (h *Handler) AskAdvisor(ctx context.Context, req *storefrontv1.AskAdvisorRequest) (*storefrontv1.AskAdvisorReply, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	s, err := h.session(req.SessionId)
	if err != nil {
		return nil, err
	}

	reply, err := h.commands.Ask.Execute(ctx, s.Chat(), req.Query)
	if err != nil {
		return nil, mapError(err)
	}
	if reply.Ignored {
		return &storefrontv1.AskAdvisorReply{Ignored: true}, nil
	}
	if reply.Fallback {
		h.logger.Debug("advisor fallback served", zap.String("session_id", s.ID()))
	}
	return &storefrontv1.AskAdvisorReply{
		Fallback: reply.Fallback,
		Answer:   mapMessage(reply.Answer),
	}, nil
}

func (h *Handler) GetTranscript(_ context.Context, req *storefrontv1.GetTranscriptRequest) (*storefrontv1.TranscriptReply, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	s, err := h.session(req.SessionId)
	if err != nil {
		return nil, err
	}
	return &storefrontv1.TranscriptReply{
		Messages: mapTranscript(s.Chat().Messages()),
		Pending:  s.Chat().Pending(),
	}, nil
}
