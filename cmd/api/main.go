package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/handler"
	"storefront/internal/repository"
	"storefront/internal/router"
	"storefront/internal/service"

	"github.com/rs/zerolog"
)

const healthCheckTimeout = 2 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting storefront API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Repositories
	customerRepo := repository.NewCustomerRepository(pool, logger)
	categoryRepo := repository.NewCategoryRepository(pool, logger)
	productRepo := repository.NewProductRepository(pool, logger)
	cartRepo := repository.NewCartRepository(pool, logger)
	wishlistRepo := repository.NewWishlistRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	orderItemRepo := repository.NewOrderItemRepository(pool, logger)
	paymentRepo := repository.NewPaymentRepository(pool, logger)
	shipmentRepo := repository.NewShipmentRepository(pool, logger)
	analyticsRepo := repository.NewAnalyticsRepository(pool, logger)

	if cfg.Catalog.SeedPath != "" {
		if err := seedCatalog(ctx, cfg.Catalog, productRepo, logger); err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	// Services
	customerService := service.NewCustomerService(customerRepo, logger)
	categoryService := service.NewCategoryService(categoryRepo, logger)
	productService := service.NewProductService(productRepo, categoryRepo, logger)
	cartService := service.NewCartService(cartRepo, customerRepo, productRepo, logger)
	wishlistService := service.NewWishlistService(wishlistRepo, customerRepo, productRepo, logger)
	orderService := service.NewOrderService(orderRepo, cartRepo, customerRepo, logger)
	orderItemService := service.NewOrderItemService(orderItemRepo, orderRepo, productRepo, logger)
	paymentService := service.NewPaymentService(paymentRepo, orderRepo, logger)
	shipmentService := service.NewShipmentService(shipmentRepo, orderRepo, logger)
	analyticsService := service.NewAnalyticsService(analyticsRepo, time.Now, logger)

	mux := router.New(router.Handlers{
		Customer:  handler.NewCustomerHandler(customerService, logger),
		Category:  handler.NewCategoryHandler(categoryService, logger),
		Product:   handler.NewProductHandler(productService, logger),
		Cart:      handler.NewCartHandler(cartService, logger),
		Wishlist:  handler.NewWishlistHandler(wishlistService, logger),
		Order:     handler.NewOrderHandler(orderService, logger),
		OrderItem: handler.NewOrderItemHandler(orderItemService, logger),
		Payment:   handler.NewPaymentHandler(paymentService, logger),
		Shipment:  handler.NewShipmentHandler(shipmentService, logger),
		Analytics: handler.NewAnalyticsHandler(analyticsService, logger),
		Health:    handler.NewHealthHandler(pool, healthCheckTimeout, logger),
	}, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// seedCatalog imports the configured catalogue file, reading it from S3 when
// enabled and from disk otherwise.
func seedCatalog(ctx context.Context, cfg config.CatalogConfig, products catalog.ProductUpserter, logger zerolog.Logger) error {
	fileLoader := catalog.NewFileLoader(logger)
	loader := fileLoader

	if cfg.S3Enabled {
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3Bucket, cfg.S3Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			loader = catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3Prefix, true, logger)
		}
	} else {
		logger.Info().Msg("using local file system for catalog seed (S3 disabled)")
	}

	written, err := catalog.NewImporter(loader, products, 0, logger).Import(ctx, cfg.SeedPath)
	if err != nil {
		return err
	}

	logger.Info().
		Str("path", cfg.SeedPath).
		Int("products", written).
		Msg("catalog seeded")
	return nil
}
