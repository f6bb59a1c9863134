package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"paybyphone/checkout"
	"paybyphone/config"
	"paybyphone/handlers"
	"paybyphone/logger"
	"paybyphone/metrics"
	"paybyphone/middleware"
	"paybyphone/session"
)

func main() {
	logger.SetupDefault(nil)
	log := slog.Default()

	cfg, err := config.Load()
	if err != nil {
		log.Error("configuration error", slog.String("error", err.Error()))
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	store := session.NewStore()
	checkoutClient := checkout.NewClient(cfg.StripeAPIURL, cfg.StripeSecretKey, cfg.CheckoutTimeout)
	limiter := middleware.NewRateLimiter(cfg.RateLimitCheckout, cfg.RateLimitBurst)
	defer limiter.Stop()

	router := handlers.NewRouter(handlers.RouterDeps{
		Store:           store,
		Checkout:        checkoutClient,
		Metrics:         collector,
		MetricsHandler:  metrics.Handler(reg),
		Log:             log,
		BaseURL:         cfg.BaseURL,
		AdminPassword:   cfg.AdminPassword,
		CheckoutLimiter: limiter,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server started", slog.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("http server failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	log.Info("server stopped")
}
