// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package graph

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/YuraDukhnoAman/desire-club/internal/config"
	"github.com/YuraDukhnoAman/desire-club/internal/logging"
	"github.com/YuraDukhnoAman/desire-club/internal/metrics"
	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

const (
	// Provider is the metrics label for Graph calls.
	Provider = "facebook"

	maxResponseBytes  = 10 << 20
	maxErrorBodyBytes = 64 << 10
)

// Client performs Graph API calls. It holds no per-request state and is safe
// for concurrent use.
type Client struct {
	baseURL    string
	version    string
	httpClient *http.Client
	breaker    *circuitBreaker
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a Graph client from cfg. The circuit breaker is only
// installed when cfg.CircuitBreaker.Enabled is set.
func NewClient(cfg config.GraphConfig, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		version:    cfg.APIVersion,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	if cfg.CircuitBreaker.Enabled {
		c.breaker = newCircuitBreaker("facebook-graph", cfg.CircuitBreaker)
	}
	return c
}

// APIVersion returns the pinned Graph version, e.g. "v23.0".
func (c *Client) APIVersion() string {
	return c.version
}

// Events fetches one page of the page's events.
func (c *Client) Events(ctx context.Context, pageID, accessToken string, req models.ResourceRequest) (*models.GraphListResponse[models.GraphEvent], error) {
	req.Kind = models.KindEvents
	return fetchList[models.GraphEvent](ctx, c, pageID, accessToken, req)
}

// Photos fetches one page of the page's photos.
func (c *Client) Photos(ctx context.Context, pageID, accessToken string, req models.ResourceRequest) (*models.GraphListResponse[models.GraphPhoto], error) {
	req.Kind = models.KindPhotos
	return fetchList[models.GraphPhoto](ctx, c, pageID, accessToken, req)
}

// Albums fetches one page of the page's albums.
func (c *Client) Albums(ctx context.Context, pageID, accessToken string, req models.ResourceRequest) (*models.GraphListResponse[models.GraphAlbum], error) {
	req.Kind = models.KindAlbums
	return fetchList[models.GraphAlbum](ctx, c, pageID, accessToken, req)
}

func fetchList[T any](ctx context.Context, c *Client, pageID, accessToken string, req models.ResourceRequest) (*models.GraphListResponse[T], error) {
	endpoint := ResourceURL(c.baseURL, c.version, pageID, req, accessToken)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	body, err := c.call(ctx, string(req.Kind), httpReq)
	if err != nil {
		return nil, err
	}

	var out models.GraphListResponse[T]
	if err := json.Unmarshal(body, &out); err != nil {
		metrics.RecordUpstreamError(Provider, string(models.ErrorKindUpstream))
		return nil, models.NewUpstreamError(http.StatusBadGateway, "Facebook API returned an unreadable response", err)
	}
	return &out, nil
}

// call runs do through the circuit breaker when one is installed.
func (c *Client) call(ctx context.Context, resource string, req *http.Request) ([]byte, error) {
	if c.breaker == nil {
		return c.do(ctx, resource, req)
	}
	return c.breaker.execute(func() ([]byte, error) {
		return c.do(ctx, resource, req)
	})
}

func (c *Client) do(ctx context.Context, resource string, req *http.Request) ([]byte, error) {
	log := logging.Ctx(ctx)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamCall(Provider, resource, 0, time.Since(start))
		metrics.RecordUpstreamError(Provider, string(models.ErrorKindUpstream))
		log.Warn().Err(err).Str("resource", resource).Str("url", logging.RedactURL(req.URL.String())).Msg("Graph API request failed")
		status := http.StatusBadGateway
		if errors.Is(err, context.DeadlineExceeded) {
			status = http.StatusGatewayTimeout
		}
		return nil, models.NewUpstreamError(status, "Failed to reach Facebook API", err)
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.RecordUpstreamCall(Provider, resource, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		appErr := ClassifyResponse(resp.StatusCode, readBodyForError(resp.Body))
		metrics.RecordUpstreamError(Provider, string(appErr.Kind))
		log.Warn().
			Str("resource", resource).
			Int("status", resp.StatusCode).
			Int("graph_code", appErr.UpstreamCode).
			Str("kind", string(appErr.Kind)).
			Msg("Graph API returned an error")
		return nil, appErr
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, models.NewUpstreamError(http.StatusBadGateway, "Failed to read Facebook API response", err)
	}

	log.Debug().Str("resource", resource).Dur("duration", time.Since(start)).Msg("Graph API request completed")
	return body, nil
}

// readBodyForError reads a bounded prefix of an error response body.
func readBodyForError(body io.Reader) []byte {
	data, err := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))
	if err != nil {
		return nil
	}
	return data
}

// BreakerState reports the circuit breaker state, or "disabled" when no
// breaker is installed.
func (c *Client) BreakerState() string {
	if c.breaker == nil {
		return "disabled"
	}
	return c.breaker.State()
}
