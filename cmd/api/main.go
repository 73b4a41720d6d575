package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tireshop/internal/config"
	"tireshop/internal/db"
	"tireshop/internal/httpserver"
	"tireshop/internal/payments"
	cartrepo "tireshop/internal/repository/cart"
	favoriterepo "tireshop/internal/repository/favorite"
	orderrepo "tireshop/internal/repository/order"
	productrepo "tireshop/internal/repository/product"
	profilerepo "tireshop/internal/repository/profile"
	cartsvc "tireshop/internal/service/cart"
	catalogsvc "tireshop/internal/service/catalog"
	checkoutsvc "tireshop/internal/service/checkout"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if cfg.StripeSecretKey == "" {
		logger.Printf("STRIPE_SECRET_KEY is not set, payment intents will fail")
	}
	if cfg.StripeWebhookSecret == "" {
		logger.Printf("STRIPE_WEBHOOK_SECRET is not set, webhook verification will fail")
	}

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool)
	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool)
	favoriteRepo := favoriterepo.NewPostgres(dbpool)
	profileRepo := profilerepo.NewPostgres(dbpool)

	gateway := payments.NewGateway(cfg.StripeSecretKey)
	verifier := payments.NewWebhookVerifier(cfg.StripeWebhookSecret)

	catalogService := catalogsvc.New(productRepo)
	cartService := cartsvc.New(cartRepo, productRepo)
	checkoutService := checkoutsvc.New(gateway, orderRepo, logger)

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		CatalogSvc:  catalogService,
		CartSvc:     cartService,
		CheckoutSvc: checkoutService,
		Verifier:    verifier,
		Orders:      orderRepo,
		Favorites:   favoriteRepo,
		Profiles:    profileRepo,
	}, cfg.StorefrontOrigin)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
