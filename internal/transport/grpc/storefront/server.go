package storefront

import (
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	storefrontv1 "github.com/murkotick/storefront-service/api/storefront/v1"
	"github.com/murkotick/storefront-service/internal/transport/grpc/middleware"
)

// NewServer builds a gRPC server exposing the storefront service and the
// standard health service. The returned health server starts SERVING.
func NewServer(h *Handler, logger *zap.Logger, opts ...grpc.ServerOption) (*grpc.Server, *health.Server) {
	if logger == nil {
		logger = zap.NewNop()
	}
	opts = append(opts, grpc.ChainUnaryInterceptor(
		middleware.UnaryRecovery(logger),
		middleware.UnaryLogging(logger),
	))
	srv := grpc.NewServer(opts...)
	storefrontv1.RegisterStorefrontServiceServer(srv, h)

	hs := health.NewServer()
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	hs.SetServingStatus(storefrontv1.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(srv, hs)
	return srv, hs
}
