package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/healthybite-ma/storefront-backend/api/routes"
	"github.com/healthybite-ma/storefront-backend/internal/auth"
	"github.com/healthybite-ma/storefront-backend/internal/blog"
	"github.com/healthybite-ma/storefront-backend/internal/cart"
	"github.com/healthybite-ma/storefront-backend/internal/checkout"
	"github.com/healthybite-ma/storefront-backend/internal/contact"
	"github.com/healthybite-ma/storefront-backend/internal/media"
	products "github.com/healthybite-ma/storefront-backend/internal/products"
	programsvc "github.com/healthybite-ma/storefront-backend/internal/programs"
	"github.com/healthybite-ma/storefront-backend/pkg/auth/session"
	"github.com/healthybite-ma/storefront-backend/pkg/config"
	"github.com/healthybite-ma/storefront-backend/pkg/db"
	"github.com/healthybite-ma/storefront-backend/pkg/logger"
	"github.com/healthybite-ma/storefront-backend/pkg/migrate"
	"github.com/healthybite-ma/storefront-backend/pkg/redis"
	"github.com/healthybite-ma/storefront-backend/pkg/storage/supabase"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	storageClient, err := supabase.NewClient(context.Background(), cfg.Storage, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap storage", err)
		os.Exit(1)
	}

	adminsRepo := auth.NewRepository(dbClient.DB())
	authService, err := auth.NewService(adminsRepo, sessionManager, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	registerService, err := auth.NewRegisterService(adminsRepo, cfg.Password)
	if err != nil {
		logg.Error(context.Background(), "failed to create register service", err)
		os.Exit(1)
	}

	productsRepo := products.NewRepository(dbClient.DB())
	productsService, err := products.NewService(productsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create products service", err)
		os.Exit(1)
	}

	programsRepo := programsvc.NewRepository(dbClient.DB())
	programsService, err := programsvc.NewService(programsRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create programs service", err)
		os.Exit(1)
	}

	blogService, err := blog.NewService(blog.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create blog service", err)
		os.Exit(1)
	}

	contactService, err := contact.NewService(contact.NewRepository(dbClient.DB()))
	if err != nil {
		logg.Error(context.Background(), "failed to create contact service", err)
		os.Exit(1)
	}

	cartStore, err := cart.NewStore(redisClient, cfg.Cart.SnapshotTTL)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart store", err)
		os.Exit(1)
	}

	cartService, err := cart.NewService(cartStore, productsRepo, cfg.Cart)
	if err != nil {
		logg.Error(context.Background(), "failed to create cart service", err)
		os.Exit(1)
	}

	checkoutService, err := checkout.NewService(cartService, programsRepo, cfg.WhatsApp)
	if err != nil {
		logg.Error(context.Background(), "failed to create checkout service", err)
		os.Exit(1)
	}

	mediaService, err := media.NewService(storageClient, cfg.Media)
	if err != nil {
		logg.Error(context.Background(), "failed to create media service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:   cfg,
			Logger:   logg,
			DB:       dbClient,
			Redis:    redisClient,
			Sessions: sessionManager,
			Registry: registry,
			Auth:     authService,
			Register: registerService,
			Products: productsService,
			Programs: programsService,
			Blog:     blogService,
			Contact:  contactService,
			Cart:     cartService,
			Checkout: checkoutService,
			Media:    mediaService,
		}),
	}

	shutdownCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-shutdownCtx.Done():
		logg.Info(ctx, "shutting down api server")
		drainCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := multierr.Append(server.Shutdown(drainCtx), storageClient.Close()); err != nil {
			logg.Error(ctx, "error during shutdown", err)
			os.Exit(1)
		}
	}
}
