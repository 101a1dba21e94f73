// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

/*
Package api provides the HTTP layer of the aggregation service.

Endpoints:

	GET /api/provider/events   page events, normalized and categorized
	GET /api/provider/photos   uploaded or tagged photos
	GET /api/provider/albums   photo albums
	GET /api/provider/batch    events and photos in one Graph round trip
	GET /api/reviews           reviews from the first working source
	GET /api/health/live       liveness probe
	GET /api/health/ready      readiness probe with configured sources
	GET /metrics               Prometheus metrics

Every failure is written as a models.ErrorEnvelope with Cache-Control:
no-store. Successful provider responses carry a shared-cache policy
(see CachePolicy) plus the X-Graph-API-Version and X-Cache-Duration headers.

Usage Example:

	creds := config.NewEnvCredentialSource(cfg.Credentials)
	handler := api.NewHandler(cfg, creds, graph.NewClient(cfg.Graph), reviews.NewDefaultAggregator(cfg.Google))
	srv := &http.Server{Addr: cfg.Server.Addr(), Handler: api.NewRouter(handler).SetupChi()}

Handlers keep no per-request state on Handler; credentials are resolved on
every call so rotated secrets take effect without a restart.
*/
package api
