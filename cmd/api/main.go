package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"glamora/internal/cart"
	"glamora/internal/catalog"
	"glamora/internal/config"
	"glamora/internal/database"
	"glamora/internal/handler"
	"glamora/internal/repository"
	"glamora/internal/router"
	"glamora/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting glamora API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	wishlistRepo := repository.NewWishlistRepository(pool, logger)
	userRepo := repository.NewUserRepository(pool, logger)

	// Initialize cart store, Redis when enabled with in-memory fallback
	var cartStore cart.Store
	if cfg.Redis.Enabled {
		redisClient, err := database.NewRedisClient(ctx, cfg.Redis, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to connect to redis, falling back to in-memory cart store")
			cartStore = cart.NewMemoryStore()
		} else {
			defer redisClient.Close()
			cartTTL := time.Duration(cfg.Redis.CartTTL) * time.Hour
			cartStore = cart.NewRedisStore(redisClient, cartTTL, logger)
		}
	} else {
		cartStore = cart.NewMemoryStore()
		logger.Info().Msg("using in-memory cart store (redis disabled)")
	}

	// Seed the product catalogue before serving traffic
	if cfg.Catalog.SeedEnabled {
		if err := seedCatalog(ctx, cfg, productRepo, logger); err != nil {
			return fmt.Errorf("failed to seed catalogue: %w", err)
		}
	}

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	cartService := service.NewCartService(cartStore, productRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, cfg.Checkout, logger)
	wishlistService := service.NewWishlistService(wishlistRepo, productRepo, logger)
	authService := service.NewAuthService(userRepo, cfg.Auth, logger)
	adminService := service.NewAdminService(orderRepo, productRepo, userRepo, logger)

	// Initialize HTTP handlers
	productHandler := handler.NewProductHandler(productService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	orderHandler := handler.NewOrderHandler(orderService, logger)
	wishlistHandler := handler.NewWishlistHandler(wishlistService, logger)
	authHandler := handler.NewAuthHandler(authService, logger)
	adminHandler := handler.NewAdminHandler(adminService, logger)

	// Initialize router
	mux := router.New(
		productHandler,
		cartHandler,
		orderHandler,
		wishlistHandler,
		authHandler,
		adminHandler,
		authService,
		logger,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// seedCatalog loads the configured gzipped seed files, preferring S3 when
// enabled, and upserts the products into the database.
func seedCatalog(ctx context.Context, cfg *config.Config, productRepo repository.ProductRepository, logger zerolog.Logger) error {
	fileLoader := catalog.NewFileLoader(logger)
	loader := fileLoader

	if cfg.S3.Enabled {
		s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			loader = catalog.NewFallbackLoader(s3Loader, fileLoader, true, cfg.S3.Prefix, logger)
		}
	} else {
		logger.Info().Msg("using local file system for catalogue seed files (S3 disabled)")
	}

	total := 0
	for _, path := range cfg.Catalog.SeedPaths {
		products, err := loader.Load(ctx, path)
		if err != nil {
			return fmt.Errorf("failed to load seed file %s: %w", path, err)
		}

		if err := productRepo.Upsert(ctx, products); err != nil {
			return fmt.Errorf("failed to upsert products from %s: %w", path, err)
		}
		total += len(products)
	}

	logger.Info().
		Int("products_seeded", total).
		Int("seed_files", len(cfg.Catalog.SeedPaths)).
		Msg("catalogue seeding completed")

	return nil
}
