// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package graph

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/YuraDukhnoAman/desire-club/internal/config"
	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.GraphConfig{
		BaseURL:    srv.URL,
		APIVersion: "v23.0",
		Timeout:    5 * time.Second,
	})
}

func TestClientEvents(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v23.0/PAGE/events" {
			t.Errorf("path = %q", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("access_token") != "TOKEN" || q.Get("limit") != "10" || q.Get("after") != "abc" {
			t.Errorf("unexpected query %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[{"id":"1","name":"Karaoke Night","start_time":"2025-03-01T21:00:00+0200"}],` +
			`"paging":{"cursors":{"before":"b1","after":"a1"},"next":"https://graph.facebook.com/next"}}`))
	})

	page, err := client.Events(context.Background(), "PAGE", "TOKEN",
		models.ResourceRequest{Limit: 10, After: "abc"})
	if err != nil {
		t.Fatalf("Events: %v", err)
	}
	if len(page.Data) != 1 || page.Data[0].Name != "Karaoke Night" {
		t.Fatalf("unexpected data %+v", page.Data)
	}
	if page.Paging == nil || page.Paging.Cursors.After != "a1" {
		t.Fatalf("unexpected paging %+v", page.Paging)
	}
}

func TestClientErrorClassification(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		status     int
		body       string
		wantKind   models.ErrorKind
		wantStatus int
		wantCode   int
	}{
		{
			name:       "expired token",
			status:     http.StatusBadRequest,
			body:       `{"error":{"message":"Error validating access token","type":"OAuthException","code":190,"error_subcode":463}}`,
			wantKind:   models.ErrorKindAuthentication,
			wantStatus: http.StatusUnauthorized,
			wantCode:   190,
		},
		{
			name:       "page throttled",
			status:     http.StatusBadRequest,
			body:       `{"error":{"message":"Calls to this api have exceeded the rate limit.","type":"OAuthException","code":613}}`,
			wantKind:   models.ErrorKindRateLimit,
			wantStatus: http.StatusTooManyRequests,
			wantCode:   613,
		},
		{
			name:       "application throttled",
			status:     http.StatusForbidden,
			body:       `{"error":{"message":"Application request limit reached","code":4}}`,
			wantKind:   models.ErrorKindRateLimit,
			wantStatus: http.StatusTooManyRequests,
			wantCode:   4,
		},
		{
			name:       "other provider error passes status through",
			status:     http.StatusBadRequest,
			body:       `{"error":{"message":"Unsupported get request.","type":"GraphMethodException","code":100}}`,
			wantKind:   models.ErrorKindUpstream,
			wantStatus: http.StatusBadRequest,
			wantCode:   100,
		},
		{
			name:       "unparseable body",
			status:     http.StatusBadGateway,
			body:       `<html>bad gateway</html>`,
			wantKind:   models.ErrorKindUpstream,
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Albums(context.Background(), "PAGE", "TOKEN", models.ResourceRequest{})
			var appErr *models.AppError
			if !errors.As(err, &appErr) {
				t.Fatalf("error %v is not an AppError", err)
			}
			if appErr.Kind != tt.wantKind {
				t.Errorf("kind = %s, want %s", appErr.Kind, tt.wantKind)
			}
			if appErr.Status != tt.wantStatus {
				t.Errorf("status = %d, want %d", appErr.Status, tt.wantStatus)
			}
			if appErr.UpstreamCode != tt.wantCode {
				t.Errorf("upstream code = %d, want %d", appErr.UpstreamCode, tt.wantCode)
			}
		})
	}
}

func TestClassifyResponseTokenAlwaysAuth(t *testing.T) {
	t.Parallel()

	body := []byte(`{"error":{"message":"expired","code":190}}`)
	for _, status := range []int{400, 401, 403, 500} {
		if got := ClassifyResponse(status, body); got.Kind != models.ErrorKindAuthentication {
			t.Errorf("status %d: kind = %s, want AuthenticationError", status, got.Kind)
		}
	}
}

func TestClassifyResponseUnparseableHasNoCode(t *testing.T) {
	t.Parallel()

	got := ClassifyResponse(http.StatusInternalServerError, []byte("not json"))
	if got.Kind != models.ErrorKindUpstream || got.UpstreamCode != 0 {
		t.Fatalf("got %+v", got)
	}
	if got.Message != "Facebook API request failed" {
		t.Errorf("message = %q", got.Message)
	}
}

func TestClientTransportError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := NewClient(config.GraphConfig{BaseURL: srv.URL, APIVersion: "v23.0", Timeout: time.Second})
	_, err := client.Photos(context.Background(), "PAGE", "TOKEN", models.ResourceRequest{})
	appErr := models.AsAppError(err)
	if appErr.Kind != models.ErrorKindUpstream || appErr.Status != http.StatusBadGateway {
		t.Fatalf("got %+v", appErr)
	}
}

func TestClientCircuitBreakerRejects(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"An unknown error has occurred.","code":1}}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(config.GraphConfig{
		BaseURL:    srv.URL,
		APIVersion: "v23.0",
		Timeout:    time.Second,
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      1,
			Interval:         time.Minute,
			Timeout:          time.Minute,
			FailureThreshold: 1,
		},
	})

	_, err := client.Events(context.Background(), "PAGE", "TOKEN", models.ResourceRequest{})
	if got := models.AsAppError(err).Status; got != http.StatusInternalServerError {
		t.Fatalf("first call status = %d, want 500", got)
	}
	if client.BreakerState() != "open" {
		t.Fatalf("breaker state = %s, want open", client.BreakerState())
	}

	_, err = client.Events(context.Background(), "PAGE", "TOKEN", models.ResourceRequest{})
	if got := models.AsAppError(err).Status; got != http.StatusServiceUnavailable {
		t.Fatalf("second call status = %d, want 503", got)
	}
	if hits.Load() != 1 {
		t.Errorf("server hits = %d, want 1", hits.Load())
	}
}

func TestClientBreakerIgnoresClientErrors(t *testing.T) {
	t.Parallel()

	client := NewClient(config.GraphConfig{
		BaseURL:    "http://127.0.0.1:0",
		APIVersion: "v23.0",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 1,
			Timeout:          time.Minute,
		},
	})
	if client.BreakerState() != "closed" {
		t.Fatalf("initial state = %s", client.BreakerState())
	}
	if !isBreakerSuccess(models.NewAuthenticationError("bad token")) {
		t.Error("authentication failures must not trip the breaker")
	}
	if isBreakerSuccess(models.NewUpstreamError(http.StatusBadGateway, "down", nil)) {
		t.Error("5xx failures must count against the breaker")
	}
}

func TestBreakerStateDisabled(t *testing.T) {
	t.Parallel()

	client := NewClient(config.GraphConfig{BaseURL: "http://example.invalid", APIVersion: "v23.0"})
	if client.BreakerState() != "disabled" {
		t.Errorf("state = %s, want disabled", client.BreakerState())
	}
	if client.APIVersion() != "v23.0" {
		t.Errorf("version = %s", client.APIVersion())
	}
}

func TestClientDecodeFailure(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"data":"nope"`))
	})
	_, err := client.Events(context.Background(), "PAGE", "TOKEN", models.ResourceRequest{})
	if models.AsAppError(err).Kind != models.ErrorKindUpstream {
		t.Fatalf("got %v", err)
	}
}
