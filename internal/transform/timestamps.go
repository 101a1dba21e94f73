// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package transform

import (
	"fmt"
	"time"
)

// GraphTimeLayout is the provider's timestamp format ("2025-03-01T21:00:00+0200").
const GraphTimeLayout = "2006-01-02T15:04:05-0700"

// ParseGraphTime parses a provider timestamp, accepting RFC 3339 as well.
func ParseGraphTime(s string) (time.Time, error) {
	if t, err := time.Parse(GraphTimeLayout, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q", s)
	}
	return t, nil
}

// parseOptionalTime returns nil for an empty string.
func parseOptionalTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := ParseGraphTime(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
