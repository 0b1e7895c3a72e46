// CartSense - Cart Add-On Recommendation Service
// Copyright 2026 CartSense Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/cartsense/cartsense

// Package main is the entry point for the CartSense server.
//
// CartSense serves cart add-on recommendations over HTTP. A pre-computed
// model snapshot (catalog, co-occurrence neighbors, contextual ranking
// multipliers) is loaded once at startup; every request is then answered
// from immutable in-memory state.
//
// # Startup Order
//
//  1. Configuration: Koanf v2 layered load (defaults, YAML file, env vars)
//  2. Logging: zerolog initialized from the loaded configuration
//  3. Model snapshot: all three artifact files loaded and cross-validated;
//     any failure here is fatal
//  4. Engine: recommendation engine built from the validated artifacts
//  5. HTTP server: chi router under a Suture supervisor tree
//
// # Configuration
//
// Highest priority wins:
//   - Environment variables (HTTP_PORT, MODEL_CATALOG_PATH, LOG_LEVEL, ...)
//   - Config file (config.yaml, path overridable via CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// SIGINT and SIGTERM trigger graceful shutdown: the listener stops accepting
// connections and in-flight requests get the configured shutdown timeout to
// complete.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cartsense/cartsense/internal/api"
	"github.com/cartsense/cartsense/internal/config"
	"github.com/cartsense/cartsense/internal/logging"
	"github.com/cartsense/cartsense/internal/metrics"
	"github.com/cartsense/cartsense/internal/recommend"
	"github.com/cartsense/cartsense/internal/recommend/storage"
	"github.com/cartsense/cartsense/internal/supervisor"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		// Config errors are reported through the default logger since the
		// configured one is not available yet.
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(cfg.Logging)

	logging.Info().
		Str("version", version).
		Str("addr", cfg.Server.Addr()).
		Str("catalog", cfg.Artifacts.Catalog).
		Str("cooccurrence", cfg.Artifacts.CoOccurrence).
		Str("ranking", cfg.Artifacts.Ranking).
		Msg("Starting CartSense")

	// Model load is the one fatal failure mode. A service without a model
	// cannot degrade into anything useful.
	artifacts, err := storage.Load(cfg.Artifacts)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load model snapshot")
	}

	engine, err := recommend.NewEngine(&cfg.Engine, artifacts, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to build recommendation engine")
	}

	logging.Info().
		Str("model_version", engine.ModelVersion()).
		Int("item_count", engine.GetStatus().ItemCount).
		Msg("Model snapshot loaded")

	metrics.SetAppInfo(version)
	metrics.SetEngineInfo(engine.ModelVersion(), engine.GetStatus().ItemCount)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go metrics.TrackUptime(ctx, time.Now())

	router := api.NewRouter(cfg, engine, version)

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Bridge zerolog to slog for sutureslog.
	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(supervisor.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	logging.Info().Str("addr", cfg.Server.Addr()).Msg("Serving recommendations")
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
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("CartSense stopped gracefully")
}
