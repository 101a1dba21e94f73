// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package api

import (
	"net/http"

	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

// HealthLive handles liveness probes. It returns 200 while the process is
// serving, regardless of upstream configuration.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", cacheNoCache)
	writeJSON(w, http.StatusOK, models.HealthStatus{
		Status:    models.HealthStatusAlive,
		Timestamp: h.now().UTC(),
		Uptime:    h.now().Sub(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probes. The service is ready when the
// Facebook credential pair resolves; the reviews chain always has the static
// dataset to fall back on and does not affect readiness.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	status := models.HealthStatus{
		Status:         models.HealthStatusReady,
		Timestamp:      h.now().UTC(),
		Uptime:         h.now().Sub(h.startTime).Seconds(),
		APIVersion:     h.graph.APIVersion(),
		CircuitBreaker: h.graph.BreakerState(),
	}

	code := http.StatusOK
	creds, err := h.credentials(r.Context())
	if err != nil {
		status.Status = models.HealthStatusNotReady
		code = http.StatusServiceUnavailable
	} else {
		status.Sources = &models.ConfiguredSources{
			Facebook:        creds.RequireGraph() == nil,
			GooglePlaces:    creds.HasPlaces(),
			BusinessProfile: creds.HasBusinessProfile(),
		}
		if !status.Sources.Facebook {
			status.Status = models.HealthStatusNotReady
			code = http.StatusServiceUnavailable
		}
	}

	w.Header().Set("Cache-Control", cacheNoCache)
	writeJSON(w, code, status)
}
