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

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hasunakalanka/Forma.Ai/internal/api/router"
	"github.com/hasunakalanka/Forma.Ai/internal/app/bootstrap"
	appconfig "github.com/hasunakalanka/Forma.Ai/internal/config"
	"github.com/hasunakalanka/Forma.Ai/internal/intake"
	"github.com/hasunakalanka/Forma.Ai/internal/notify"
	"github.com/hasunakalanka/Forma.Ai/internal/observability/metrics"
	"github.com/hasunakalanka/Forma.Ai/internal/payments"
	"github.com/hasunakalanka/Forma.Ai/internal/webhook"
	"github.com/hasunakalanka/Forma.Ai/pkg/logging"
)

const unlockPath = "/unlock"

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting FORMA API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()
	metricsHandler, funnelMetrics := setupMetrics()

	redisClient := bootstrap.BuildRedisClient(ctx, cfg, logger, true)
	if redisClient != nil {
		defer redisClient.Close()
	}
	limiter := bootstrap.BuildIntakeLimiter(cfg, redisClient)
	defer limiter.Close()
	logger.Info("intake rate limiter ready", "backend", limiter.Backend)

	emailSender := bootstrap.BuildEmailSender(ctx, cfg, logger)
	r := router.New(&router.Config{
		Logger:             logger,
		IntakeHandler:      intake.NewHandler(buildIntakeService(cfg, emailSender, funnelMetrics, logger), logger),
		UnlockHandler:      payments.NewUnlockHandler(cfg.PaymentLinkURL, funnelMetrics, logger),
		MetricsHandler:     metricsHandler,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		IntakeLimiter:      limiter,
	})

	if !payments.LinkConfigured(cfg.PaymentLinkURL) {
		logger.Warn("PAYMENT_LINK_URL not configured; /unlock will return 503")
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.WebhookTimeout + cfg.PreviewRevealDelay + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
	fmt.Println("Server exited gracefully")
}

func setupMetrics() (http.Handler, *metrics.FunnelMetrics) {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), metrics.NewFunnelMetrics(registry)
}

// buildIntakeService wires the webhook generator only when WEBHOOK_URL is
// set, so an unconfigured deployment serves local previews directly.
func buildIntakeService(cfg *appconfig.Config, sender notify.EmailSender, m *metrics.FunnelMetrics, logger *logging.Logger) *intake.Service {
	var generator intake.PlanGenerator
	if cfg.WebhookURL != "" {
		generator = webhook.NewClient(cfg.WebhookURL, cfg.WebhookTimeout, logger)
	} else {
		logger.Warn("WEBHOOK_URL not set; every preview is generated locally")
	}

	var notifier intake.LeadNotifier
	if cfg.LeadNotifyEmail != "" {
		notifier = notify.NewLeadNotifier(sender, cfg.LeadNotifyEmail, logger)
	}

	return intake.NewService(generator, notifier, m, logger, intake.ServiceConfig{
		WebhookTimeout: cfg.WebhookTimeout,
		RevealDelay:    cfg.PreviewRevealDelay,
		UnlockPath:     unlockPath,
	})
}
