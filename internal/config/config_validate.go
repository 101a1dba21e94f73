// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package config

import (
	"fmt"
	"strings"
)

var (
	validEnvironments = map[string]bool{"development": true, "staging": true, "production": true}
	validLogLevels    = map[string]bool{"trace": true, "debug": true, "info": true, "warn": true, "error": true}
	validLogFormats   = map[string]bool{"json": true, "console": true}
)

// Validate checks that the loaded configuration is usable. Credentials are
// deliberately not required here: a missing secret is reported per request as
// a ConfigurationError so that health endpoints keep working.
func (c *Config) Validate() error {
	if err := c.validateGraph(); err != nil {
		return err
	}
	if err := c.validateGoogle(); err != nil {
		return err
	}
	if err := c.validateServer(); err != nil {
		return err
	}
	if err := c.validateSecurity(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateGraph() error {
	if err := validateHTTPURL(c.Graph.BaseURL, "GRAPH_BASE_URL"); err != nil {
		return err
	}
	if !strings.HasPrefix(c.Graph.APIVersion, "v") {
		return fmt.Errorf("GRAPH_API_VERSION must look like v23.0, got %q", c.Graph.APIVersion)
	}
	if c.Graph.Timeout <= 0 {
		return fmt.Errorf("GRAPH_TIMEOUT must be positive")
	}
	cb := c.Graph.CircuitBreaker
	if cb.Enabled && (cb.FailureThreshold == 0 || cb.Timeout <= 0) {
		return fmt.Errorf("circuit breaker requires a failure threshold and a positive timeout")
	}
	return nil
}

func (c *Config) validateGoogle() error {
	if err := validateHTTPURL(c.Google.PlacesBaseURL, "GOOGLE_PLACES_BASE_URL"); err != nil {
		return err
	}
	if err := validateHTTPURL(c.Google.BusinessBaseURL, "GOOGLE_BUSINESS_BASE_URL"); err != nil {
		return err
	}
	if err := validateEndpointURL(c.Google.TokenURL, "GOOGLE_TOKEN_URL"); err != nil {
		return err
	}
	if c.Google.Timeout <= 0 {
		return fmt.Errorf("GOOGLE_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1")
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
