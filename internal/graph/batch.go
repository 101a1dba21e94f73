// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package graph

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"github.com/YuraDukhnoAman/desire-club/internal/logging"
	"github.com/YuraDukhnoAman/desire-club/internal/metrics"
	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

// MaxBatchSize is the provider's limit on sub-requests per compound call.
const MaxBatchSize = 50

var (
	ErrBatchEmpty    = errors.New("batch contains no requests")
	ErrBatchTooLarge = errors.New("batch exceeds maximum size")
)

// EncodeBatch serializes items into the provider's batch parameter.
func EncodeBatch(items []models.BatchItem) (string, error) {
	if len(items) == 0 {
		return "", ErrBatchEmpty
	}
	if len(items) > MaxBatchSize {
		return "", fmt.Errorf("%w: %d requests, limit %d", ErrBatchTooLarge, len(items), MaxBatchSize)
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", fmt.Errorf("failed to encode batch: %w", err)
	}
	return string(data), nil
}

// NewBatchItem returns a GET sub-request for req against pageID.
func NewBatchItem(pageID string, req models.ResourceRequest) models.BatchItem {
	return models.BatchItem{Method: http.MethodGet, RelativeURL: RelativeURL(pageID, req)}
}

// Batch issues items as one compound call. The result has exactly one slot
// per item, in item order; a slot is nil when the provider returned nothing
// for it. An invalid batch is rejected before any network call.
func (c *Client) Batch(ctx context.Context, accessToken string, items []models.BatchItem) ([]*models.BatchResult, error) {
	payload, err := EncodeBatch(items)
	if err != nil {
		appErr := models.NewBadRequestError(err.Error(), map[string]int{"requests": len(items), "limit": MaxBatchSize})
		appErr.Err = err
		return nil, appErr
	}

	form := url.Values{}
	form.Set("access_token", accessToken)
	form.Set("batch", payload)
	form.Set("include_headers", "false")

	endpoint := fmt.Sprintf("%s/%s/", c.baseURL, c.version)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	httpReq.Header.Set("Accept", "application/json")

	body, err := c.call(ctx, "batch", httpReq)
	if err != nil {
		return nil, err
	}

	var results []*models.BatchResult
	if err := json.Unmarshal(body, &results); err != nil {
		metrics.RecordUpstreamError(Provider, string(models.ErrorKindUpstream))
		return nil, models.NewUpstreamError(http.StatusBadGateway, "Facebook API returned an unreadable batch response", err)
	}

	if len(results) != len(items) {
		logging.Ctx(ctx).Warn().Int("expected", len(items)).Int("received", len(results)).Msg("Batch response slot count mismatch")
	}
	aligned := make([]*models.BatchResult, len(items))
	copy(aligned, results)
	return aligned, nil
}

// ParseBatchResults decodes each slot body. The output is positionally
// aligned with the input; a slot is nil when it is missing, not a 200, or
// not valid JSON.
func ParseBatchResults(results []*models.BatchResult) []json.RawMessage {
	out := make([]json.RawMessage, len(results))
	for i, r := range results {
		if r == nil || r.Code != http.StatusOK || !json.Valid([]byte(r.Body)) {
			continue
		}
		out[i] = json.RawMessage(r.Body)
	}
	return out
}

// DecodeSlot unmarshals a parsed batch slot into a listing of T.
func DecodeSlot[T any](raw json.RawMessage) (*models.GraphListResponse[T], error) {
	var out models.GraphListResponse[T]
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, models.NewUpstreamError(http.StatusBadGateway, "Facebook API returned an unreadable batch item", err)
	}
	return &out, nil
}
