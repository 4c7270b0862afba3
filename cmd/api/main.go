// cmd/api/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront/internal/config"
	"github.com/your-org/storefront/internal/domain/cart"
	"github.com/your-org/storefront/internal/domain/checkout"
	"github.com/your-org/storefront/internal/domain/newsletter"
	"github.com/your-org/storefront/internal/domain/product"
	"github.com/your-org/storefront/internal/domain/wishlist"
	"github.com/your-org/storefront/internal/infrastructure/storage"
	"github.com/your-org/storefront/internal/interfaces/http"
	"github.com/your-org/storefront/internal/interfaces/http/routes"
	"github.com/your-org/storefront/internal/pkg/logger"
	"github.com/your-org/storefront/internal/pkg/pdf"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}

	log := logger.New(cfg)
	log.WithFields(logrus.Fields{
		"version":     cfg.App.Version,
		"environment": cfg.App.Environment,
		"storage":     cfg.Storage.Backend,
	}).Infof("Starting %s", cfg.App.Name)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend, err := storage.Open(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to open storage")
	}
	defer backend.Close()

	catalog, err := product.NewCatalog()
	if err != nil {
		log.WithError(err).Fatal("Failed to load product catalog")
	}

	cartService, err := cart.NewService(ctx, backend.Adapter, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to rehydrate cart")
	}

	newsletterService, err := newsletter.NewService(ctx, backend.Adapter, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to rehydrate newsletter")
	}

	wishlistService, err := wishlist.NewService(ctx, backend.Adapter, catalog, cartService, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to rehydrate wishlist")
	}

	if cfg.Newsletter.DispatchEnabled {
		dispatcher := newsletter.NewDispatcher(newsletterService, cfg.Newsletter.DispatchInterval, log)
		go dispatcher.Run(ctx)
	}

	deps := routes.Dependencies{
		Config:     cfg,
		Logger:     log,
		Catalog:    catalog,
		Cart:       cartService,
		Checkout:   checkout.NewService(cartService, cfg, log),
		Newsletter: newsletterService,
		Wishlist:   wishlistService,
		Receipts:   pdf.NewService(cfg),
	}

	server := http.NewServer(cfg, log, deps, backend.Adapter, backend.Redis)

	go func() {
		if err := server.Start(); err != nil {
			log.WithError(err).Fatal("Failed to start HTTP server")
		}
	}()

	log.Info("All systems operational")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down gracefully")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Stop(shutdownCtx); err != nil {
		log.WithError(err).Error("Failed to shutdown HTTP server gracefully")
	}

	log.Info("Server shutdown completed")
}
