package http

import (
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"

	"taskapp/internal/adapter/telemetry"
	"taskapp/pkg/config"
)

func StartServer(metrics *telemetry.AppMetrics, logger zerolog.Logger, accessLogger *otelzap.Logger, cfg *config.AppConfig) {
	container := NewContainer(cfg, logger, metrics)

	router := SetupRouter(HandlersConfig{
		UserHandler: container.UserHandler,
		TaskHandler: container.TaskHandler,
	}, metrics, accessLogger, cfg)

	port := os.Getenv("PORT")

	if port == "" {
		port = "8080"
	}

	logger.Info().
		Str("port", port).
		Str("environment", cfg.Environment).
		Bool("rate_limit_enabled", cfg.RateLimitEnabled).
		Bool("https_enforced", cfg.EnforceHTTPS).
		Msg("Server starting")

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error().Err(err).Msg("Server failed to start")
	}
}
