// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package api

import (
	"context"
	"time"

	"github.com/YuraDukhnoAman/desire-club/internal/config"
	"github.com/YuraDukhnoAman/desire-club/internal/models"
	"github.com/YuraDukhnoAman/desire-club/internal/reviews"
)

// GraphAPI is the subset of the Graph client the handlers depend on.
type GraphAPI interface {
	APIVersion() string
	Events(ctx context.Context, pageID, accessToken string, req models.ResourceRequest) (*models.GraphListResponse[models.GraphEvent], error)
	Photos(ctx context.Context, pageID, accessToken string, req models.ResourceRequest) (*models.GraphListResponse[models.GraphPhoto], error)
	Albums(ctx context.Context, pageID, accessToken string, req models.ResourceRequest) (*models.GraphListResponse[models.GraphAlbum], error)
	Batch(ctx context.Context, accessToken string, items []models.BatchItem) ([]*models.BatchResult, error)
	BreakerState() string
}

// ReviewsSource produces the reviews payload for one inbound request.
type ReviewsSource interface {
	Fetch(ctx context.Context, creds config.Credentials, page reviews.Page) (*reviews.Result, error)
}

// Handler serves every HTTP endpoint of the aggregation API.
//
// Handler holds no per-request state: credentials are resolved from creds on
// every call and each request performs its own upstream round trip. The only
// shared mutable state is the optional Graph circuit breaker, which is off
// unless configured.
type Handler struct {
	cfg       *config.Config
	creds     config.CredentialSource
	graph     GraphAPI
	reviews   ReviewsSource
	now       func() time.Time
	startTime time.Time
}

// NewHandler creates a Handler. All collaborators are passed explicitly.
func NewHandler(cfg *config.Config, creds config.CredentialSource, graph GraphAPI, reviews ReviewsSource) *Handler {
	return &Handler{
		cfg:       cfg,
		creds:     creds,
		graph:     graph,
		reviews:   reviews,
		now:       time.Now,
		startTime: time.Now(),
	}
}

// WithClock replaces the wall clock used for cached_until, batch timestamps
// and upcoming-event filtering.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

// credentials resolves the credentials for the current request. A failing
// source is a configuration problem, not an upstream one.
func (h *Handler) credentials(ctx context.Context) (config.Credentials, error) {
	creds, err := h.creds.Credentials(ctx)
	if err != nil {
		appErr := models.NewConfigurationError("Failed to resolve credentials")
		appErr.Err = err
		return config.Credentials{}, appErr
	}
	return creds, nil
}

// graphCredentials resolves credentials and fails before any network call
// when the Graph pair is incomplete.
func (h *Handler) graphCredentials(ctx context.Context) (config.Credentials, error) {
	creds, err := h.credentials(ctx)
	if err != nil {
		return creds, err
	}
	if err := creds.RequireGraph(); err != nil {
		return creds, err
	}
	return creds, nil
}
