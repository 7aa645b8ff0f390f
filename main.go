package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	logger := newLogger(getEnv("LOG_LEVEL", "info"))
	cfg := LoadConfig(logger)

	if os.Getenv(gin.EnvGinMode) == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics := NewContactMetrics(prometheus.DefaultRegisterer)
	relay := NewFormspreeRelay(cfg.RelayURL, nil, cfg.RelayTimeout)
	forms := NewRegistry(relay, cfg.FormInstanceTTL, logger, metrics, WithResetDelay(cfg.ResetDelay))
	forms.SetLimit(cfg.FormLimit)
	defer forms.Close()

	router, err := NewRouter(NewContactHandler(forms, metrics, logger), prometheus.DefaultGatherer, logger)
	if err != nil {
		logger.Error("failed to load templates", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go forms.Run(ctx, cfg.SweepInterval)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("portfolio listening", "addr", srv.Addr, "relay", relay.Endpoint())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
