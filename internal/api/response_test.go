// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/YuraDukhnoAman/desire-club/internal/config"
	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

func TestCachePolicyHeaders(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind         models.ResourceKind
		wantHeader   string
		wantDuration string
	}{
		{models.KindEvents, "public, s-maxage=300, stale-while-revalidate=600", "300"},
		{models.KindPhotos, "public, s-maxage=600, stale-while-revalidate=1200", "600"},
		{models.KindAlbums, "public, s-maxage=300, stale-while-revalidate=3600", "300"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			CachePolicyFor(tt.kind).apply(rec)
			if got := rec.Header().Get("Cache-Control"); got != tt.wantHeader {
				t.Errorf("Cache-Control = %q, want %q", got, tt.wantHeader)
			}
			if got := rec.Header().Get(HeaderCacheDuration); got != tt.wantDuration {
				t.Errorf("X-Cache-Duration = %q, want %q", got, tt.wantDuration)
			}
		})
	}
}

func TestCachedUntil(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 1, 14, 0, 0, 0, time.FixedZone("IST", 2*3600))
	got := EventsCache.CachedUntil(now)
	if !got.Equal(now.Add(5*time.Minute)) || got.Location() != time.UTC {
		t.Errorf("CachedUntil = %v", got)
	}
}

func TestWriteErrorClassifiesUnknownErrors(t *testing.T) {
	t.Parallel()

	h := NewHandler(&config.Config{Server: config.ServerConfig{Environment: "production"}}, nil, nil, nil)
	rec := httptest.NewRecorder()
	h.writeError(rec, httptest.NewRequest(http.MethodGet, "/", nil), errors.New("database is on fire"))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("code = %d", rec.Code)
	}
	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q", got)
	}
	e := decodeError(t, rec.Body.Bytes())
	if e.Kind != models.ErrorKindInternal || e.Code != models.ErrCodeInternalError {
		t.Errorf("error = %+v", e)
	}
	if e.Details != nil {
		t.Errorf("production details = %v", e.Details)
	}
}

func TestWriteJSONContentType(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	writeJSON(rec, http.StatusOK, map[string]int{"n": 1})
	if got := rec.Header().Get("Content-Type"); got != "application/json; charset=utf-8" {
		t.Errorf("Content-Type = %q", got)
	}
	if rec.Body.String() != `{"n":1}` {
		t.Errorf("body = %s", rec.Body.String())
	}
}
