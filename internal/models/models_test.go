// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package models

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAppErrorCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  *AppError
		want string
	}{
		{NewConfigurationError("x"), ErrCodeConfigurationError},
		{NewAuthenticationError("x"), ErrCodeUnauthorized},
		{NewRateLimitError("x"), ErrCodeTooManyRequests},
		{NewTransformError("x", nil), ErrCodeTransformFailed},
		{NewBadRequestError("x", nil), ErrCodeBadRequest},
		{NewUpstreamError(http.StatusBadGateway, "x", nil), ErrCodeExternalServiceFail},
		{NewUpstreamError(http.StatusServiceUnavailable, "x", nil), ErrCodeServiceUnavailable},
		{&AppError{Kind: ErrorKindInternal, Status: 500}, ErrCodeInternalError},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Kind)+"/"+tt.want, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Code(); got != tt.want {
				t.Errorf("Code() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewUpstreamErrorClampsStatus(t *testing.T) {
	t.Parallel()

	for _, status := range []int{0, 200, 302, 600} {
		if got := NewUpstreamError(status, "x", nil).Status; got != http.StatusInternalServerError {
			t.Errorf("status %d -> %d, want 500", status, got)
		}
	}
	if got := NewUpstreamError(http.StatusForbidden, "x", nil).Status; got != http.StatusForbidden {
		t.Errorf("403 -> %d", got)
	}
}

func TestAsAppError(t *testing.T) {
	t.Parallel()

	auth := NewAuthenticationError("token expired")
	wrapped := fmt.Errorf("fetch events: %w", auth)
	if got := AsAppError(wrapped); got != auth {
		t.Errorf("AsAppError(wrapped) = %v, want original", got)
	}

	plain := errors.New("boom")
	got := AsAppError(plain)
	if got.Kind != ErrorKindInternal || got.Status != http.StatusInternalServerError || !errors.Is(got, plain) {
		t.Errorf("AsAppError(plain) = %+v", got)
	}
}

func TestAppErrorBodyDetails(t *testing.T) {
	t.Parallel()

	e := NewUpstreamError(http.StatusBadGateway, "Facebook API request failed", errors.New("EOF"))
	e.UpstreamCode = 2

	dev := e.Body(true, "req-1")
	if dev.Details != "EOF" || dev.RequestID != "req-1" || dev.UpstreamCode != 2 {
		t.Errorf("development body = %+v", dev)
	}

	prod := e.Body(false, "req-1")
	if prod.Details != nil {
		t.Errorf("production body details = %v", prod.Details)
	}
	if prod.Message != e.Message || prod.Kind != ErrorKindUpstream {
		t.Errorf("production body = %+v", prod)
	}
}

func TestParseEventCategory(t *testing.T) {
	t.Parallel()

	if c, ok := ParseEventCategory("karaoke"); !ok || c != CategoryKaraoke {
		t.Errorf("karaoke = %q, %v", c, ok)
	}
	if _, ok := ParseEventCategory("MUSIC_EVENT"); ok {
		t.Error("MUSIC_EVENT should not parse")
	}
}

func TestGraphEdgeSummaryTotal(t *testing.T) {
	t.Parallel()

	var missing *GraphEdgeSummary
	if missing.Total() != 0 {
		t.Error("nil summary should total 0")
	}
	s := &GraphEdgeSummary{}
	s.Summary = &struct {
		TotalCount int `json:"total_count"`
	}{TotalCount: 12}
	if s.Total() != 12 {
		t.Errorf("Total() = %d", s.Total())
	}
}

func TestResourceKindValid(t *testing.T) {
	t.Parallel()

	for _, k := range []ResourceKind{KindEvents, KindPhotos, KindAlbums} {
		if !k.Valid() {
			t.Errorf("%q should be valid", k)
		}
	}
	if ResourceKind("videos").Valid() {
		t.Error("videos should be invalid")
	}
}
