package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coffeehouse/internal/catalog"
	"coffeehouse/internal/config"
	"coffeehouse/internal/database"
	"coffeehouse/internal/handler"
	"coffeehouse/internal/mailer"
	"coffeehouse/internal/repository"
	"coffeehouse/internal/router"
	"coffeehouse/internal/service"
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
	logger.Info().Msg("starting coffeehouse API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load the menu: built-in seed unless a menu file is configured, with
	// optional S3 lookup in front of the local file system.
	menu := catalog.Default()
	if cfg.Menu.File != "" {
		fileLoader := catalog.NewFileLoader(logger)
		loader := fileLoader

		if cfg.S3.Enabled {
			s3Loader, err := catalog.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
			if err != nil {
				logger.Warn().
					Err(err).
					Msg("failed to initialise S3 loader, falling back to local file system only")
			} else {
				loader = catalog.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, true, logger)
			}
		}

		loaded, err := loader.Load(ctx, cfg.Menu.File)
		if err != nil {
			logger.Warn().
				Err(err).
				Str("file", cfg.Menu.File).
				Msg("failed to load menu file, using built-in menu")
		} else {
			menu = loaded
		}
	}

	// Initialize repositories on the configured storage backend
	var (
		orderRepo      repository.OrderRepository
		reviewRepo     repository.ReviewRepository
		newsletterRepo repository.NewsletterRepository
	)

	switch cfg.Storage.Backend {
	case config.BackendPostgres:
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		orderRepo = repository.NewOrderRepository(pool, logger)
		reviewRepo = repository.NewReviewRepository(pool, logger)
		newsletterRepo = repository.NewNewsletterRepository(pool, logger)

	default:
		store := repository.NewMemoryStore()
		orderRepo = repository.NewMemoryOrders(store)
		reviewRepo = repository.NewMemoryReviews(store)
		newsletterRepo = repository.NewMemoryNewsletter(store)
		logger.Info().Msg("using in-memory storage (data is lost on restart)")
	}

	// Initialize the mailer: real SMTP dispatch when configured, no-op
	// otherwise.
	var mail mailer.Mailer
	if cfg.SMTP.Host != "" {
		mail = mailer.NewSMTP(cfg.SMTP, logger)
	} else {
		mail = mailer.NewNop(logger)
		logger.Info().Msg("SMTP not configured, mail dispatch disabled")
	}

	storeInfo := catalog.DefaultStoreInfo()

	// Initialize services
	menuService := service.NewMenuService(menu, storeInfo)
	orderService := service.NewOrderService(orderRepo, logger)
	reviewService := service.NewReviewService(reviewRepo, logger)
	newsletterService := service.NewNewsletterService(newsletterRepo, mail, cfg.SMTP.From, storeInfo, logger)
	contactService := service.NewContactService(mail, cfg.SMTP.From, cfg.SMTP.ContactEmail, logger)

	// Initialize router
	mux := router.New(router.Config{
		Menu:       handler.NewMenuHandler(menuService, logger),
		Order:      handler.NewOrderHandler(orderService, logger),
		Review:     handler.NewReviewHandler(reviewService, logger),
		Newsletter: handler.NewNewsletterHandler(newsletterService, logger),
		Contact:    handler.NewContactHandler(contactService, logger),
		APIKey:     cfg.Auth.APIKey,
		StaticDir:  cfg.Server.StaticDir,
	}, logger)

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
