// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package reviews

import (
	"context"
	"net/http"

	"github.com/YuraDukhnoAman/desire-club/internal/config"
	"github.com/YuraDukhnoAman/desire-club/internal/logging"
	"github.com/YuraDukhnoAman/desire-club/internal/metrics"
	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

// Result is the chain's answer together with the step that produced it.
type Result struct {
	Response *models.ReviewsResponse
	Strategy string
}

// Fallback reports whether the response came from the static dataset.
func (r *Result) Fallback() bool {
	return r.Strategy == StrategyStatic
}

// Aggregator tries its strategies in order. It holds no per-request state.
type Aggregator struct {
	strategies []Strategy
}

// NewAggregator creates a chain over strategies, tried in the given order.
func NewAggregator(strategies ...Strategy) *Aggregator {
	return &Aggregator{strategies: strategies}
}

// NewDefaultAggregator builds the Places → Business Profile → static chain.
func NewDefaultAggregator(cfg config.GoogleConfig) *Aggregator {
	hc := &http.Client{Timeout: cfg.Timeout}
	return NewAggregator(
		NewPlacesStrategy(cfg, hc),
		NewBusinessProfileStrategy(cfg, hc),
		NewStaticStrategy(),
	)
}

// Fetch returns the first successful strategy's response. A failing
// strategy is logged and skipped. The error is only non-nil when every
// strategy was unavailable or failed, which cannot happen while the static
// strategy terminates the chain.
func (a *Aggregator) Fetch(ctx context.Context, creds config.Credentials, page Page) (*Result, error) {
	log := logging.Ctx(ctx)
	var lastErr error

	for _, s := range a.strategies {
		if !s.Available(creds) {
			log.Debug().Str("strategy", s.Name()).Msg("Reviews strategy not configured, skipping")
			continue
		}

		resp, err := s.Fetch(ctx, creds, page)
		if err != nil {
			lastErr = err
			appErr := models.AsAppError(err)
			metrics.ReviewsStrategyFailures.WithLabelValues(s.Name()).Inc()
			log.Warn().Err(err).Str("strategy", s.Name()).Str("kind", string(appErr.Kind)).Msg("Reviews strategy failed, trying next")
			continue
		}

		metrics.ReviewsServedTotal.WithLabelValues(s.Name()).Inc()
		return &Result{Response: resp, Strategy: s.Name()}, nil
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, models.NewConfigurationError("No reviews source configured")
}
