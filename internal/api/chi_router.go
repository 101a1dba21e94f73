// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/YuraDukhnoAman/desire-club/internal/middleware"
	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

// Router wires the handler and middleware into a chi route tree.
type Router struct {
	handler       *Handler
	chiMiddleware *ChiMiddleware
}

// NewRouter creates a Router. The middleware configuration is derived from
// the handler's security settings.
func NewRouter(handler *Handler) *Router {
	return &Router{
		handler:       handler,
		chiMiddleware: NewChiMiddleware(NewChiMiddlewareConfig(handler.cfg.Security)),
	}
}

// SetupChi builds the HTTP handler for every route.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(chimiddleware.Recoverer)
	r.Use(Recover(router.handler.includeDetails()))
	r.Use(router.chiMiddleware.CORS())

	r.NotFound(router.notFound)
	r.MethodNotAllowed(router.methodNotAllowed)

	r.Route("/api/health", func(r chi.Router) {
		r.Get("/live", router.handler.HealthLive)
		r.Get("/ready", router.handler.HealthReady)
	})

	r.Route("/api/provider", func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		r.Use(chimiddleware.Compress(5, "application/json"))

		r.Get("/events", router.handler.Events)
		r.Get("/photos", router.handler.Photos)
		r.Get("/albums", router.handler.Albums)
		r.Get("/batch", router.handler.Batch)
	})

	r.Group(func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(middleware.PrometheusMetrics)
		r.Use(chimiddleware.Compress(5, "application/json"))

		r.Get("/api/reviews", router.handler.Reviews)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}

func (router *Router) notFound(w http.ResponseWriter, r *http.Request) {
	router.handler.writeError(w, r, &models.AppError{
		Kind:    models.ErrorKindBadRequest,
		Status:  http.StatusNotFound,
		Message: "Route not found",
	})
}

func (router *Router) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	router.handler.writeError(w, r, &models.AppError{
		Kind:    models.ErrorKindBadRequest,
		Status:  http.StatusMethodNotAllowed,
		Message: "Method not allowed",
	})
}
