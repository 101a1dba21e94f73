// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package logging

import (
	"net/url"
	"strings"
)

// secretParams are query parameters that must never appear in logs or in
// URLs echoed back to clients.
var secretParams = []string{"access_token", "key", "client_secret", "refresh_token"}

// RedactURL strips credential query parameters from raw. Inputs that do not
// parse as URLs are returned as "[invalid-url]".
func RedactURL(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "[invalid-url]"
	}
	q := u.Query()
	changed := false
	for _, p := range secretParams {
		if q.Has(p) {
			q.Del(p)
			changed = true
		}
	}
	if changed {
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// MaskSecret keeps the first four characters of a credential for correlation.
func MaskSecret(s string) string {
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return s[:4] + strings.Repeat("*", 8)
}
