package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"lei_validator/internal/adapters/restapi"
	"lei_validator/internal/adapters/storage/memory/identifier"
	"lei_validator/internal/config"
	"lei_validator/internal/core/application"
	"lei_validator/internal/logger"
	"lei_validator/internal/metrics"
)

// main is entry point of application.
func main() {
	configFile := flag.String("config", "", "Path to YAML configuration file (default: config/config.yml)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	appLogger, err := logger.NewAppLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logger: %v\n", err)
		os.Exit(1)
	}

	if *configFile != "" {
		appLogger.Info("Configuration loaded successfully", "configFile", *configFile)
	} else {
		appLogger.Info("Configuration loaded successfully", "configFile", config.DefaultConfigFile+" (default)")
	}

	appMetrics := metrics.New(prometheus.DefaultRegisterer)
	identifierRepo := identifier.NewInMemoryIdentifierRepo()

	validatorService, err := application.NewValidatorService(identifierRepo, appLogger, appMetrics, cfg.Validator)
	if err != nil {
		appLogger.Error("Failed to create validator service", "error", err)
		os.Exit(1)
	}

	apiServer, err := restapi.NewServer(validatorService, appLogger, &cfg.Server)
	if err != nil {
		appLogger.Error("Failed to create API server", "error", err)
		os.Exit(1)
	}

	appLogger.Info("-------------------------------------")
	appLogger.Info("API Server starting", "address", cfg.Server.Port)
	appLogger.Info("Available Endpoints:")
	appLogger.Info("  POST /validate      (Body: {'lei':'...'})")
	appLogger.Info("  POST /build         (Body: {'lou_id':'...','entity_id':'...'})")
	appLogger.Info("  POST /identifiers   (Body: {'lei':'...'})")
	appLogger.Info("  GET  /identifiers")
	appLogger.Info("  GET  /metrics")
	appLogger.Info("-------------------------------------")

	run(appLogger, apiServer)

	appLogger.Info("Application shut down gracefully.")
}

// run starts the HTTP server and blocks until a shutdown signal or a server error.
func run(appLogger logger.AppLogger, apiServer *restapi.Server) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)
	go func() {
		if err := apiServer.Start(); err != nil {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		appLogger.Error("Shutting down due to error", "error", err)
	case <-ctx.Done():
		appLogger.Info("Shutting down due to OS signal...")
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelShutdown()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("HTTP server shutdown error", "error", err)
	}
}
