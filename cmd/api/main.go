package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	api "taskapp/internal/adapter/http"
	"taskapp/internal/adapter/http/middleware"
	"taskapp/internal/adapter/telemetry"
	"taskapp/pkg/config"
)

func main() {
	ctx := context.Background()

	logger := zerolog.New(os.Stdout).With().
		Timestamp().
		Str("service", "taskapp").
		Logger()

	cfg, err := config.Load()

	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	accessLogger, err := middleware.NewAccessLogger()

	if err != nil {
		log.Fatal("Failed to initialize access logger:", err)
	}

	defer accessLogger.Sync()

	tel, err := telemetry.NewContainer(telemetry.Config{
		ServiceName:    "taskapp",
		ServiceVersion: "1.0.0",
		MetricsPort:    "9091",
		OTLPEndpoint:   "localhost:4317",
	}, logger)

	if err != nil {
		log.Fatal("Failed to initialize telemetry:", err)
	}

	defer tel.Shutdown(ctx)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		api.StartServer(tel.AppMetrics, logger, accessLogger, cfg)
	}()

	<-c
	logger.Info().Msg("Shutting down gracefully...")
}
