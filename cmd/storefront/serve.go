package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/infra/memory"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	checkoutadapter "github.com/dwikikusuma/storefront/internal/checkout/infra/adapter"
	"github.com/dwikikusuma/storefront/internal/events"
	"github.com/dwikikusuma/storefront/internal/events/rabbit"
	"github.com/dwikikusuma/storefront/internal/server"
	"github.com/dwikikusuma/storefront/pkg/config"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/dwikikusuma/storefront/pkg/shutdown"
	"github.com/dwikikusuma/storefront/pkg/telemetry"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP storefront and gRPC health endpoint",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}

	cfg := config.Load()
	log := logger.New(logger.Options{
		Service:   "storefront",
		Env:       cfg.AppEnv,
		Level:     cfg.LogLevel,
		AddSource: true,
	})
	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, cancel := shutdown.WithSignals(parent)
	defer cancel()

	stopTracing, err := telemetry.Init(ctx, log, telemetry.Config{
		Enabled:     cfg.OTelEnabled,
		ServiceName: "storefront",
		Environment: cfg.AppEnv,
		SampleRatio: cfg.OTelSampleRatio,
	})
	if err != nil {
		log.Error("otel init failed", slog.Any("err", err))
		return err
	}
	defer func() {
		flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer flushCancel()
		if err := stopTracing(flushCtx); err != nil {
			log.Warn("otel shutdown error", slog.Any("err", err))
		}
	}()

	// Catalog
	catalogSvc, origin, err := loadCatalog(ctx, cfg)
	if err != nil {
		log.Error("catalog load failed", slog.Any("err", err))
		return err
	}
	log.Info("catalog loaded", slog.String("source", origin), slog.Int("products", len(catalogSvc.All())))

	// Cart
	cartSvc := cartapp.NewService(memory.NewStore(), catalogSvc)

	// Checkout (adapters)
	checkoutSvc := checkoutapp.NewService(
		checkoutadapter.NewCartServiceReader(cartSvc),
		checkoutadapter.NewCatalogServiceReader(catalogSvc),
		10,
	)

	// Events
	var pub events.Publisher = events.Nop{}
	rp, err := rabbit.New(cfg.AMQPURL, cfg.AMQPExchange)
	if err != nil {
		log.Warn("event publisher unavailable, events disabled", slog.Any("err", err))
	} else if rp != nil {
		defer rp.Close()
		pub = rp
		log.Info("publishing cart events", slog.String("exchange", cfg.AMQPExchange))
	}

	router, err := server.NewRouter(server.Deps{
		Config:   cfg,
		Log:      log,
		Catalog:  catalogSvc,
		Carts:    cartSvc,
		Checkout: checkoutSvc,
		Notifier: events.NewNotifier(pub, log),
	})
	if err != nil {
		return fmt.Errorf("build router: %w", err)
	}

	srv := server.New(log, cfg.Host, cfg.HTTPPort, cfg.GRPCPort, router)
	if err := srv.Run(ctx); err != nil {
		log.Error("server error", slog.Any("err", err))
		return err
	}

	log.Info("bye")
	return nil
}
