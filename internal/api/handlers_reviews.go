// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package api

import (
	"net/http"

	"github.com/YuraDukhnoAman/desire-club/internal/reviews"
)

// Reviews handles GET /api/reviews.
//
// Live responses are cached for ReviewsCache. The static fallback is served
// with no-cache so a shared cache picks up live data as soon as a source
// recovers.
func (h *Handler) Reviews(w http.ResponseWriter, r *http.Request) {
	q, err := parseReviewsQuery(r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	creds, err := h.credentials(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.reviews.Fetch(r.Context(), creds, reviews.Page{Token: q.PageToken, MaxResults: q.MaxResults})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if result.Fallback() {
		w.Header().Set("Cache-Control", cacheNoCache)
	} else {
		ReviewsCache.apply(w)
	}
	writeJSON(w, http.StatusOK, result.Response)
}
