// Command itplanet runs the retail backend HTTP server.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/itplanet/retail-backend/internal/app"
	"github.com/itplanet/retail-backend/internal/auth"
	"github.com/itplanet/retail-backend/internal/invoices"
	"github.com/itplanet/retail-backend/internal/ledger"
	"github.com/itplanet/retail-backend/internal/observability"
	"github.com/itplanet/retail-backend/internal/platform/cache"
	"github.com/itplanet/retail-backend/internal/platform/db"
	"github.com/itplanet/retail-backend/internal/products"
	"github.com/itplanet/retail-backend/internal/purchases"
	"github.com/itplanet/retail-backend/internal/quotations"
	"github.com/itplanet/retail-backend/internal/sections"
	"github.com/itplanet/retail-backend/internal/shared"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Error("load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer redisClient.Close()

	sessions := shared.NewSessionManager(redisClient, cfg.SessionCookie, cfg.SessionTTL, cfg.IsProduction())
	metrics := observability.NewMetrics()
	numbers := ledger.NewNumberGenerator()

	authService := auth.NewService(auth.NewRepository(pool))
	productService := products.NewService(products.NewRepository(pool))
	purchaseService := purchases.NewService(purchases.NewRepository(pool), numbers)
	quotationService := quotations.NewService(quotations.NewRepository(pool), numbers)
	invoiceService := invoices.NewService(invoices.NewRepository(pool), productService, numbers)

	router := app.NewRouter(app.RouterDeps{
		Logger:     logger,
		Config:     cfg,
		Sessions:   sessions,
		Metrics:    metrics,
		Auth:       auth.NewHandler(logger, authService, sessions, cfg.LoginRateLimit),
		Sections:   sections.NewHandler(logger, sections.NewRepository(pool)),
		Products:   products.NewHandler(logger, productService),
		Purchases:  purchases.NewHandler(logger, purchaseService),
		Quotations: quotations.NewHandler(logger, quotationService),
		Invoices:   invoices.NewHandler(logger, invoiceService),
	})

	if err := app.RunServer(ctx, logger, cfg, router); err != nil {
		logger.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}
