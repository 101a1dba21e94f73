// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package graph

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

// Graph error codes with a dedicated local classification.
const (
	CodeInvalidToken = 190
	CodeAppThrottled = 4
	CodeUserThrottle = 17
	CodePageThrottle = 32
	CodeRateLimited  = 613
)

// maxDetailBytes bounds the raw body echoed into error details.
const maxDetailBytes = 2048

// ClassifyResponse maps a failed Graph response into the local taxonomy.
// Code 190 is an authentication failure regardless of the HTTP status.
func ClassifyResponse(status int, body []byte) *models.AppError {
	var parsed models.GraphErrorResponse
	if err := json.Unmarshal(body, &parsed); err != nil || parsed.Error == nil {
		appErr := models.NewUpstreamError(status, "Facebook API request failed", nil)
		appErr.Details = truncate(body)
		return appErr
	}

	ge := parsed.Error
	var appErr *models.AppError
	switch ge.Code {
	case CodeInvalidToken:
		appErr = models.NewAuthenticationError("Facebook access token is invalid or expired")
	case CodeAppThrottled, CodeUserThrottle, CodePageThrottle, CodeRateLimited:
		appErr = models.NewRateLimitError("Facebook API rate limit exceeded")
	default:
		msg := ge.Message
		if msg == "" {
			msg = http.StatusText(status)
		}
		appErr = models.NewUpstreamError(status, msg, nil)
	}
	appErr.UpstreamCode = ge.Code
	appErr.UpstreamSubcode = ge.ErrorSubcode
	appErr.UpstreamType = ge.Type
	appErr.Details = ge
	return appErr
}

// SlotError classifies a failed batch slot. A nil slot means the provider
// returned no response for that sub-request.
func SlotError(result *models.BatchResult) *models.AppError {
	if result == nil {
		return models.NewUpstreamError(http.StatusBadGateway, "Facebook API returned no response for batch item", nil)
	}
	if result.Code == http.StatusOK {
		appErr := models.NewUpstreamError(http.StatusBadGateway, "Facebook API returned an unreadable batch item", nil)
		appErr.Details = truncate([]byte(result.Body))
		return appErr
	}
	return ClassifyResponse(result.Code, []byte(result.Body))
}

func truncate(body []byte) string {
	if len(body) > maxDetailBytes {
		return string(body[:maxDetailBytes]) + "..."
	}
	return string(body)
}
