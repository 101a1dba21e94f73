// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

// Package metrics defines the Prometheus instrumentation of the aggregation
// service: inbound API traffic, outbound provider calls, batch slot outcomes,
// the reviews fallback chain and the optional Graph circuit breaker.
package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of inbound rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Upstream Provider Metrics
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of outbound provider calls",
		},
		[]string{"provider", "resource", "status_code"},
	)

	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Outbound provider call duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		},
		[]string{"provider", "resource"},
	)

	UpstreamErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_errors_total",
			Help: "Total number of classified provider failures",
		},
		[]string{"provider", "kind"}, // kind: AuthenticationError, RateLimitError, UpstreamError
	)

	TransformFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "transform_failures_total",
			Help: "Total number of provider records that could not be normalized",
		},
		[]string{"resource"},
	)

	// Batch Metrics
	BatchSlotsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "graph_batch_slots_total",
			Help: "Total number of batch sub-requests by outcome",
		},
		[]string{"resource", "result"}, // result: "success", "failure"
	)

	// Reviews Metrics
	ReviewsServedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviews_served_total",
			Help: "Total number of reviews responses by producing strategy",
		},
		[]string{"strategy"},
	)

	ReviewsStrategyFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "reviews_strategy_failures_total",
			Help: "Total number of reviews strategies that failed and fell through",
		},
		[]string{"strategy"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordUpstreamCall records one outbound provider call. A status of 0 means
// the call failed before a response arrived.
func RecordUpstreamCall(provider, resource string, status int, duration time.Duration) {
	code := "transport_error"
	if status > 0 {
		code = strconv.Itoa(status)
	}
	UpstreamRequestsTotal.WithLabelValues(provider, resource, code).Inc()
	UpstreamRequestDuration.WithLabelValues(provider, resource).Observe(duration.Seconds())
}

// RecordUpstreamError records a classified provider failure.
func RecordUpstreamError(provider, kind string) {
	UpstreamErrorsTotal.WithLabelValues(provider, kind).Inc()
}

// RecordBatchSlot records the outcome of one batch sub-request.
func RecordBatchSlot(resource string, success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	BatchSlotsTotal.WithLabelValues(resource, result).Inc()
}
