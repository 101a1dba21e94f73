// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package reviews

import (
	"fmt"
	"io"
	"net/http"

	"github.com/goccy/go-json"

	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

const maxErrorBodyBytes = 64 << 10

// googleErrorResponse is the error body shared by Google JSON APIs.
type googleErrorResponse struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// classifyGoogleError maps a failed Google API response into the local
// taxonomy.
func classifyGoogleError(service string, status int, body io.Reader) *models.AppError {
	data, _ := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))

	var parsed googleErrorResponse
	msg := fmt.Sprintf("%s request failed", service)
	apiStatus := ""
	if err := json.Unmarshal(data, &parsed); err == nil && parsed.Error != nil {
		if parsed.Error.Message != "" {
			msg = fmt.Sprintf("%s: %s", service, parsed.Error.Message)
		}
		apiStatus = parsed.Error.Status
	}

	var appErr *models.AppError
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		appErr = models.NewAuthenticationError(msg)
	case status == http.StatusTooManyRequests:
		appErr = models.NewRateLimitError(msg)
	default:
		appErr = models.NewUpstreamError(status, msg, nil)
	}
	appErr.UpstreamType = apiStatus
	appErr.Details = string(data)
	return appErr
}
