package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	"github.com/murkotick/storefront-service/internal/app/cart/usecases/add_item"
	"github.com/murkotick/storefront-service/internal/app/catalog/contracts"
	catalog "github.com/murkotick/storefront-service/internal/app/catalog/domain"
	"github.com/murkotick/storefront-service/internal/app/catalog/queries/filter_metadata"
	"github.com/murkotick/storefront-service/internal/app/catalog/queries/get_product"
	"github.com/murkotick/storefront-service/internal/app/catalog/queries/list_products"
	"github.com/murkotick/storefront-service/internal/app/catalog/source"
	chatcontracts "github.com/murkotick/storefront-service/internal/app/chat/contracts"
	"github.com/murkotick/storefront-service/internal/app/chat/prompt"
	"github.com/murkotick/storefront-service/internal/app/chat/usecases/ask_advisor"
	"github.com/murkotick/storefront-service/internal/app/checkout/usecases/place_order"
	"github.com/murkotick/storefront-service/internal/app/session"
	"github.com/murkotick/storefront-service/internal/infra/gemini"
	"github.com/murkotick/storefront-service/internal/pkg/clock"
	"github.com/murkotick/storefront-service/internal/pkg/config"
	"github.com/murkotick/storefront-service/internal/pkg/logger"
	grpcstorefront "github.com/murkotick/storefront-service/internal/transport/grpc/storefront"
)

const shutdownGrace = 5 * time.Second

var (
	configPath string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:           "storefront-server",
	Short:         "gRPC storefront: catalog, per-session cart, checkout and advisory chat",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "optional YAML config file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
		Verbose: verbose,
	})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	// Catalog: loaded once, read-only afterwards.
	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	log.Info("catalog loaded",
		zap.String("source", cfg.Catalog.Source),
		zap.Int("products", cat.Len()),
		zap.Int("categories", len(cat.Categories())))

	// Advisor: without a key the chat answers with the offline text.
	var advisor chatcontracts.Advisor
	if cfg.Advisor.APIKey != "" {
		a, err := gemini.NewAdvisor(ctx, gemini.Config{APIKey: cfg.Advisor.APIKey, Model: cfg.Advisor.Model})
		if err != nil {
			return err
		}
		advisor = a
		log.Info("advisor enabled", zap.String("model", a.Model()))
	} else {
		log.Warn("advisor offline: no API key configured")
	}

	clk := clock.RealClock{}
	locale := cfg.LanguageTag()
	sessions := session.NewManager(cfg.Sessions.TTL, clk, log.Named("sessions"))

	// CQRS wiring
	cmds := grpcstorefront.Commands{
		AddItem:    add_item.NewInteractor(cat),
		PlaceOrder: place_order.NewInteractor(clk, log.Named("checkout")),
		Ask:        ask_advisor.NewInteractor(advisor, prompt.SystemInstruction(cat), clk, log.Named("advisor")),
	}
	qrys := grpcstorefront.Queries{
		Get:      get_product.NewHandler(cat, locale),
		List:     list_products.NewHandler(cat, locale),
		Metadata: filter_metadata.NewHandler(cat),
	}
	h := grpcstorefront.NewHandler(cmds, qrys, sessions, locale, log.Named("grpc"))

	srv, hs := grpcstorefront.NewServer(h, log.Named("grpc"))

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.GRPCAddr, err)
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info("gRPC server listening", zap.String("addr", cfg.GRPCAddr))
		if err := srv.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("grpc serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return sessions.Run(gctx, cfg.Sessions.SweepInterval)
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutdown signal received")
		hs.Shutdown()
		gracefulStop(srv)
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("server stopped", zap.Int("open_sessions", sessions.Len()))
	return nil
}

// loadCatalog reads the whole catalog once. The Spanner client is only needed
// for that read, so it is closed before serving starts.
func loadCatalog(ctx context.Context, cfg config.Config) (*catalog.Catalog, error) {
	var src contracts.CatalogSource
	switch cfg.Catalog.Source {
	case config.CatalogSpanner:
		client, err := spanner.NewClient(ctx, cfg.Catalog.SpannerDatabase)
		if err != nil {
			return nil, fmt.Errorf("spanner.NewClient: %w", err)
		}
		defer client.Close()
		src = source.NewSpannerSource(client)
	default:
		src = source.NewYAMLSource(cfg.Catalog.File)
	}

	cat, err := src.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return cat, nil
}

func gracefulStop(srv *grpc.Server) {
	stopped := make(chan struct{})
	go func() {
		srv.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(shutdownGrace):
		srv.Stop()
	}
}
