// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package config

import (
	"fmt"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Graph       GraphConfig    `koanf:"graph"`
	Google      GoogleConfig   `koanf:"google"`
	Credentials Credentials    `koanf:"credentials"`
	Server      ServerConfig   `koanf:"server"`
	Security    SecurityConfig `koanf:"security"`
	Logging     LoggingConfig  `koanf:"logging"`
}

// GraphConfig configures the outbound Graph API client.
type GraphConfig struct {
	BaseURL        string               `koanf:"base_url"`
	APIVersion     string               `koanf:"api_version"`
	Timeout        time.Duration        `koanf:"timeout"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// CircuitBreakerConfig configures the optional breaker around Graph calls.
// Disabled by default so that requests stay independent of each other.
type CircuitBreakerConfig struct {
	Enabled          bool          `koanf:"enabled"`
	MaxRequests      uint32        `koanf:"max_requests"`
	Interval         time.Duration `koanf:"interval"`
	Timeout          time.Duration `koanf:"timeout"`
	FailureThreshold uint32        `koanf:"failure_threshold"`
}

// GoogleConfig holds the endpoints used by the reviews chain.
type GoogleConfig struct {
	PlacesBaseURL   string        `koanf:"places_base_url"`
	BusinessBaseURL string        `koanf:"business_base_url"`
	TokenURL        string        `koanf:"token_url"`
	Timeout         time.Duration `koanf:"timeout"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IsProduction reports whether diagnostic details must be withheld.
func (s ServerConfig) IsProduction() bool {
	return s.Environment == "production"
}

// SecurityConfig holds inbound CORS and rate limit settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}
