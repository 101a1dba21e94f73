// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/YuraDukhnoAman/desire-club/internal/api"
	"github.com/YuraDukhnoAman/desire-club/internal/config"
	"github.com/YuraDukhnoAman/desire-club/internal/graph"
	"github.com/YuraDukhnoAman/desire-club/internal/logging"
	"github.com/YuraDukhnoAman/desire-club/internal/reviews"
	"github.com/YuraDukhnoAman/desire-club/internal/supervisor"
	"github.com/YuraDukhnoAman/desire-club/internal/supervisor/services"
)

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})

	logging.Info().
		Str("environment", cfg.Server.Environment).
		Str("graph_api_version", cfg.Graph.APIVersion).
		Bool("circuit_breaker", cfg.Graph.CircuitBreaker.Enabled).
		Msg("Starting Desire Club aggregation API")

	creds := config.NewEnvCredentialSource(cfg.Credentials)
	logConfiguredSources(creds)

	handler := api.NewHandler(cfg, creds, graph.NewClient(cfg.Graph), reviews.NewDefaultAggregator(cfg.Google))
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      api.NewRouter(handler).SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(server, server.Addr, cfg.Server.ShutdownTimeout))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	for err := range tree.ServeBackground(ctx) {
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("Supervisor tree error")
		}
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Server stopped")
}

// logConfiguredSources reports which credential sets are present at start-up
// without logging their values.
func logConfiguredSources(src config.CredentialSource) {
	creds, err := src.Credentials(context.Background())
	if err != nil {
		logging.Warn().Err(err).Msg("Failed to resolve credentials at start-up")
		return
	}
	event := logging.Info()
	if err := creds.RequireGraph(); err != nil {
		event = logging.Warn()
	}
	event.
		Bool("facebook", creds.RequireGraph() == nil).
		Bool("google_places", creds.HasPlaces()).
		Bool("google_business_profile", creds.HasBusinessProfile()).
		Msg("Provider credentials")
}
