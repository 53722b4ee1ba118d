// AgriProfit - Crop Prediction and Profit Advisory
// Copyright 2026 Arjun D. (arjund-dev)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/arjund-dev/agriprofit

// Package main is the entry point for the AgriProfit server.
//
// AgriProfit predicts the best crop for given soil and weather readings,
// estimates yield and cultivation expense, and recommends alternative
// crops ranked by expected profit.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered settings from defaults, config file, and
//     environment variables (Koanf v2)
//  2. Models: the crop classifier, yield and expense regressors, and the
//     label encoder; any missing model file is fatal
//  3. Catalog: the crop vocabulary from the reference dataset via DuckDB;
//     a missing dataset degrades to an empty vocabulary with a warning
//  4. Engine: the prediction pipeline over the loaded models
//  5. HTTP Server: REST API under supervision with graceful shutdown
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (SERVER_PORT, LOG_LEVEL, MODEL_DIR,
//     DATASET_PATH, CORS_ORIGINS, ...)
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM: it stops
// accepting new connections and waits for in-flight requests to complete
// within the configured shutdown timeout.
//
// # Example Usage
//
//	export MODEL_DIR=/var/lib/agriprofit/models
//	export DATASET_PATH=/var/lib/agriprofit/models/agri_dataset_5000.csv
//	export SERVER_PORT=5000
//	./agriprofit
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

	"github.com/arjund-dev/agriprofit/internal/api"
	"github.com/arjund-dev/agriprofit/internal/catalog"
	"github.com/arjund-dev/agriprofit/internal/config"
	"github.com/arjund-dev/agriprofit/internal/logging"
	"github.com/arjund-dev/agriprofit/internal/metrics"
	"github.com/arjund-dev/agriprofit/internal/mlmodel"
	"github.com/arjund-dev/agriprofit/internal/predict"
	"github.com/arjund-dev/agriprofit/internal/supervisor"
	"github.com/arjund-dev/agriprofit/internal/supervisor/services"
)

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("model_dir", cfg.Models.Dir).
		Str("dataset_path", cfg.Catalog.DatasetPath).
		Int("port", cfg.Server.Port).
		Msg("Starting AgriProfit")

	// Models are required; refuse to start without them.
	store, err := mlmodel.LoadStore(cfg.Models)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load models")
	}
	logging.Info().Msg("Models loaded successfully")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The catalog is best-effort: a missing or unreadable dataset means
	// name resolution and suggestions degrade, not that we stop.
	crops, err := catalog.Load(ctx, cfg.Catalog.DatasetPath)
	if err != nil {
		logging.Warn().Err(err).Msg("Crop catalog unavailable, continuing with empty vocabulary")
		crops = catalog.New(nil)
	} else {
		logging.Info().Int("crops", crops.Len()).Msg("Crop catalog loaded")
	}
	metrics.SetCatalogSize(crops.Len())

	engine, err := predict.NewEngine(predict.Predictors{
		Crop:    store.Crop,
		Yield:   store.Yield,
		Expense: store.Expense,
		Labels:  store.Labels,
	}, crops, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create prediction engine")
	}

	handler := api.NewHandler(engine)
	router := api.NewRouter(handler, api.NewMiddleware(&api.MiddlewareConfig{
		CORSAllowedOrigins: cfg.HTTP.CORSOrigins,
		RateLimitRequests:  cfg.HTTP.RateLimitRequests,
		RateLimitWindow:    cfg.HTTP.RateLimitWindow,
		RateLimitDisabled:  cfg.HTTP.RateLimitDisabled,
	}))

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Bridge zerolog to slog for sutureslog compatibility.
	slogLogger := logging.NewSlogLogger()

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	select {
	case <-ctx.Done():
		logging.Info().Msg("Context canceled, waiting for supervisor to finish")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	// Drain until the supervisor has fully stopped.
	for err := range errCh {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor shutdown error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	if len(unstopped) > 0 {
		logging.Warn().Int("count", len(unstopped)).Msg("Services failed to stop within timeout")
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
