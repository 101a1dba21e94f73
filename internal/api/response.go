// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/YuraDukhnoAman/desire-club/internal/logging"
	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

// Response headers set on successful provider responses.
const (
	HeaderGraphVersion  = "X-Graph-API-Version"
	HeaderCacheDuration = "X-Cache-Duration"
	HeaderBatchRequest  = "X-Batch-Request"
)

// writeJSON marshals v before touching the response so an encoding failure
// can still become a clean 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", cacheNoStore)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"kind":"InternalError","code":"INTERNAL_ERROR","message":"Failed to encode response"}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Vary", "Accept-Encoding")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// writeError renders err as an ErrorEnvelope. Failures are never cacheable,
// and upstream diagnostics are only included outside production.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := models.AsAppError(err)
	requestID := logging.RequestIDFromContext(r.Context())

	event := logging.Ctx(r.Context()).Warn()
	if appErr.Status >= http.StatusInternalServerError {
		event = logging.Ctx(r.Context()).Error()
	}
	event.Err(err).
		Str("kind", string(appErr.Kind)).
		Int("status", appErr.Status).
		Str("path", r.URL.Path).
		Msg("Request failed")

	w.Header().Set("Cache-Control", cacheNoStore)
	writeJSON(w, appErr.Status, models.ErrorEnvelope{Error: appErr.Body(h.includeDetails(), requestID)})
}

func (h *Handler) includeDetails() bool {
	return !h.cfg.Server.IsProduction()
}

// slotError renders a failed batch slot with the same detail policy as a
// top-level error.
func (h *Handler) slotError(r *http.Request, appErr *models.AppError) *models.ErrorBody {
	body := appErr.Body(h.includeDetails(), logging.RequestIDFromContext(r.Context()))
	return &body
}
