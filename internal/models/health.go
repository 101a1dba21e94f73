// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package models

import "time"

// Health status values.
const (
	HealthStatusAlive    = "alive"
	HealthStatusReady    = "ready"
	HealthStatusNotReady = "not_ready"
)

// ConfiguredSources reports which credential sets are present. Values are
// never echoed.
type ConfiguredSources struct {
	Facebook        bool `json:"facebook"`
	GooglePlaces    bool `json:"google_places"`
	BusinessProfile bool `json:"google_business_profile"`
}

// HealthStatus is the body of the health endpoints.
type HealthStatus struct {
	Status         string             `json:"status"`
	Timestamp      time.Time          `json:"timestamp"`
	Uptime         float64            `json:"uptime_seconds"`
	APIVersion     string             `json:"api_version,omitempty"`
	Sources        *ConfiguredSources `json:"sources,omitempty"`
	CircuitBreaker string             `json:"circuit_breaker,omitempty"`
}
