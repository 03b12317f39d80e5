package storefrontv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const ServiceName = "storefront.v1.StorefrontService"

// StorefrontServiceServer is the server API for StorefrontService.
type StorefrontServiceServer interface {
	ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesReply, error)
	GetFilterMetadata(context.Context, *GetFilterMetadataRequest) (*FilterMetadata, error)
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsReply, error)
	GetProduct(context.Context, *GetProductRequest) (*GetProductReply, error)
	ListFeatured(context.Context, *ListFeaturedRequest) (*ListProductsReply, error)

	StartSession(context.Context, *StartSessionRequest) (*StartSessionReply, error)
	EndSession(context.Context, *EndSessionRequest) (*EndSessionReply, error)

	GetCart(context.Context, *GetCartRequest) (*CartReply, error)
	AddToCart(context.Context, *AddToCartRequest) (*CartReply, error)
	RemoveFromCart(context.Context, *RemoveFromCartRequest) (*CartReply, error)
	ClearCart(context.Context, *ClearCartRequest) (*CartReply, error)
	SetCartOpen(context.Context, *SetCartOpenRequest) (*CartReply, error)

	PlaceOrder(context.Context, *PlaceOrderRequest) (*PlaceOrderReply, error)

	AskAdvisor(context.Context, *AskAdvisorRequest) (*AskAdvisorReply, error)
	GetTranscript(context.Context, *GetTranscriptRequest) (*TranscriptReply, error)
}

// UnimplementedStorefrontServiceServer can be embedded for forward compatibility.
type UnimplementedStorefrontServiceServer struct{}

func unimplemented(method string) error {
	return status.Errorf(codes.Unimplemented, "method %s not implemented", method)
}

func (UnimplementedStorefrontServiceServer) ListCategories(context.Context, *ListCategoriesRequest) (*ListCategoriesReply, error) {
	return nil, unimplemented("ListCategories")
}
func (UnimplementedStorefrontServiceServer) GetFilterMetadata(context.Context, *GetFilterMetadataRequest) (*FilterMetadata, error) {
	return nil, unimplemented("GetFilterMetadata")
}
func (UnimplementedStorefrontServiceServer) ListProducts(context.Context, *ListProductsRequest) (*ListProductsReply, error) {
	return nil, unimplemented("ListProducts")
}
func (UnimplementedStorefrontServiceServer) GetProduct(context.Context, *GetProductRequest) (*GetProductReply, error) {
	return nil, unimplemented("GetProduct")
}
func (UnimplementedStorefrontServiceServer) ListFeatured(context.Context, *ListFeaturedRequest) (*ListProductsReply, error) {
	return nil, unimplemented("ListFeatured")
}
func (UnimplementedStorefrontServiceServer) StartSession(context.Context, *StartSessionRequest) (*StartSessionReply, error) {
	return nil, unimplemented("StartSession")
}
func (UnimplementedStorefrontServiceServer) EndSession(context.Context, *EndSessionRequest) (*EndSessionReply, error) {
	return nil, unimplemented("EndSession")
}
func (UnimplementedStorefrontServiceServer) GetCart(context.Context, *GetCartRequest) (*CartReply, error) {
	return nil, unimplemented("GetCart")
}
func (UnimplementedStorefrontServiceServer) AddToCart(context.Context, *AddToCartRequest) (*CartReply, error) {
	return nil, unimplemented("AddToCart")
}
func (UnimplementedStorefrontServiceServer) RemoveFromCart(context.Context, *RemoveFromCartRequest) (*CartReply, error) {
	return nil, unimplemented("RemoveFromCart")
}
func (UnimplementedStorefrontServiceServer) ClearCart(context.Context, *ClearCartRequest) (*CartReply, error) {
	return nil, unimplemented("ClearCart")
}
func (UnimplementedStorefrontServiceServer) SetCartOpen(context.Context, *SetCartOpenRequest) (*CartReply, error) {
	return nil, unimplemented("SetCartOpen")
}
func (UnimplementedStorefrontServiceServer) PlaceOrder(context.Context, *PlaceOrderRequest) (*PlaceOrderReply, error) {
	return nil, unimplemented("PlaceOrder")
}
func (UnimplementedStorefrontServiceServer) AskAdvisor(context.Context, *AskAdvisorRequest) (*AskAdvisorReply, error) {
	return nil, unimplemented("AskAdvisor")
}
func (UnimplementedStorefrontServiceServer) GetTranscript(context.Context, *GetTranscriptRequest) (*TranscriptReply, error) {
	return nil, unimplemented("GetTranscript")
}

func fullMethod(method string) string {
	return "/" + ServiceName + "/" + method
}

// unary adapts one typed server method to a grpc.MethodDesc.
func unary[Req, Resp any](method string, call func(StorefrontServiceServer, context.Context, *Req) (*Resp, error)) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: method,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(Req)
			if err := dec(in); err != nil {
				return nil, err
			}
			s := srv.(StorefrontServiceServer)
			if interceptor == nil {
				return call(s, ctx, in)
			}
			info := &grpc.UnaryServerInfo{Server: srv, FullMethod: fullMethod(method)}
			return interceptor(ctx, in, info, func(ctx context.Context, req any) (any, error) {
				return call(s, ctx, req.(*Req))
			})
		},
	}
}

// StorefrontService_ServiceDesc describes the service for grpc.ServiceRegistrar.
var StorefrontService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*StorefrontServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary("ListCategories", StorefrontServiceServer.ListCategories),
		unary("GetFilterMetadata", StorefrontServiceServer.GetFilterMetadata),
		unary("ListProducts", StorefrontServiceServer.ListProducts),
		unary("GetProduct", StorefrontServiceServer.GetProduct),
		unary("ListFeatured", StorefrontServiceServer.ListFeatured),
		unary("StartSession", StorefrontServiceServer.StartSession),
		unary("EndSession", StorefrontServiceServer.EndSession),
		unary("GetCart", StorefrontServiceServer.GetCart),
		unary("AddToCart", StorefrontServiceServer.AddToCart),
		unary("RemoveFromCart", StorefrontServiceServer.RemoveFromCart),
		unary("ClearCart", StorefrontServiceServer.ClearCart),
		unary("SetCartOpen", StorefrontServiceServer.SetCartOpen),
		unary("PlaceOrder", StorefrontServiceServer.PlaceOrder),
		unary("AskAdvisor", StorefrontServiceServer.AskAdvisor),
		unary("GetTranscript", StorefrontServiceServer.GetTranscript),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "storefront/v1/storefront.proto",
}

func RegisterStorefrontServiceServer(s grpc.ServiceRegistrar, srv StorefrontServiceServer) {
	s.RegisterService(&StorefrontService_ServiceDesc, srv)
}

// StorefrontServiceClient calls the service with the JSON codec.
type StorefrontServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewStorefrontServiceClient(cc grpc.ClientConnInterface) *StorefrontServiceClient {
	return &StorefrontServiceClient{cc: cc}
}

func invoke[Resp any](ctx context.Context, cc grpc.ClientConnInterface, method string, in any, opts []grpc.CallOption) (*Resp, error) {
	out := new(Resp)
	opts = append([]grpc.CallOption{grpc.CallContentSubtype(CodecName)}, opts...)
	if err := cc.Invoke(ctx, fullMethod(method), in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *StorefrontServiceClient) ListCategories(ctx context.Context, in *ListCategoriesRequest, opts ...grpc.CallOption) (*ListCategoriesReply, error) {
	return invoke[ListCategoriesReply](ctx, c.cc, "ListCategories", in, opts)
}
func (c *StorefrontServiceClient) GetFilterMetadata(ctx context.Context, in *GetFilterMetadataRequest, opts ...grpc.CallOption) (*FilterMetadata, error) {
	return invoke[FilterMetadata](ctx, c.cc, "GetFilterMetadata", in, opts)
}
func (c *StorefrontServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsReply, error) {
	return invoke[ListProductsReply](ctx, c.cc, "ListProducts", in, opts)
}
func (c *StorefrontServiceClient) GetProduct(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*GetProductReply, error) {
	return invoke[GetProductReply](ctx, c.cc, "GetProduct", in, opts)
}
func (c *StorefrontServiceClient) ListFeatured(ctx context.Context, in *ListFeaturedRequest, opts ...grpc.CallOption) (*ListProductsReply, error) {
	return invoke[ListProductsReply](ctx, c.cc, "ListFeatured", in, opts)
}
func (c *StorefrontServiceClient) StartSession(ctx context.Context, in *StartSessionRequest, opts ...grpc.CallOption) (*StartSessionReply, error) {
	return invoke[StartSessionReply](ctx, c.cc, "StartSession", in, opts)
}
func (c *StorefrontServiceClient) EndSession(ctx context.Context, in *EndSessionRequest, opts ...grpc.CallOption) (*EndSessionReply, error) {
	return invoke[EndSessionReply](ctx, c.cc, "EndSession", in, opts)
}
func (c *StorefrontServiceClient) GetCart(ctx context.Context, in *GetCartRequest, opts ...grpc.CallOption) (*CartReply, error) {
	return invoke[CartReply](ctx, c.cc, "GetCart", in, opts)
}
func (c *StorefrontServiceClient) AddToCart(ctx context.Context, in *AddToCartRequest, opts ...grpc.CallOption) (*CartReply, error) {
	return invoke[CartReply](ctx, c.cc, "AddToCart", in, opts)
}
func (c *StorefrontServiceClient) RemoveFromCart(ctx context.Context, in *RemoveFromCartRequest, opts ...grpc.CallOption) (*CartReply, error) {
	return invoke[CartReply](ctx, c.cc, "RemoveFromCart", in, opts)
}
func (c *StorefrontServiceClient) ClearCart(ctx context.Context, in *ClearCartRequest, opts ...grpc.CallOption) (*CartReply, error) {
	return invoke[CartReply](ctx, c.cc, "ClearCart", in, opts)
}
func (c *StorefrontServiceClient) SetCartOpen(ctx context.Context, in *SetCartOpenRequest, opts ...grpc.CallOption) (*CartReply, error) {
	return invoke[CartReply](ctx, c.cc, "SetCartOpen", in, opts)
}
func (c *StorefrontServiceClient) PlaceOrder(ctx context.Context, in *PlaceOrderRequest, opts ...grpc.CallOption) (*PlaceOrderReply, error) {
	return invoke[PlaceOrderReply](ctx, c.cc, "PlaceOrder", in, opts)
}
func (c *StorefrontServiceClient) AskAdvisor(ctx context.Context, in *AskAdvisorRequest, opts ...grpc.CallOption) (*AskAdvisorReply, error) {
	return invoke[AskAdvisorReply](ctx, c.cc, "AskAdvisor", in, opts)
}
func (c *StorefrontServiceClient) GetTranscript(ctx context.Context, in *GetTranscriptRequest, opts ...grpc.CallOption) (*TranscriptReply, error) {
	return invoke[TranscriptReply](ctx, c.cc, "GetTranscript", in, opts)
}
