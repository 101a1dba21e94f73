// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths searched for a config file, in order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/desire-club/config.yaml",
}

// ConfigPathEnvVar overrides the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config with every optional setting populated.
func defaultConfig() *Config {
	return &Config{
		Graph: GraphConfig{
			BaseURL:    "https://graph.facebook.com",
			APIVersion: "v23.0",
			Timeout:    15 * time.Second,
			CircuitBreaker: CircuitBreakerConfig{
				Enabled:          false,
				MaxRequests:      3,
				Interval:         time.Minute,
				Timeout:          30 * time.Second,
				FailureThreshold: 5,
			},
		},
		Google: GoogleConfig{
			PlacesBaseURL:   "https://places.googleapis.com",
			BusinessBaseURL: "https://mybusiness.googleapis.com",
			TokenURL:        "https://oauth2.googleapis.com/token",
			Timeout:         15 * time.Second,
		},
		Server: ServerConfig{
			Port:            8080,
			Host:            "0.0.0.0",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Security: SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   120,
			RateLimitWindow: time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// LoadWithKoanf loads configuration from defaults, an optional YAML file and
// the environment, in increasing order of precedence, then validates it.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are parsed from comma-separated strings when set via env.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		if err := k.Set(path, splitList(strVal)); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// credentialEnvMappings maps the deployment's secret variable names to
// credential fields. The NEXT_PUBLIC_ alias is accepted for compatibility with
// the website's existing environment files.
var credentialEnvMappings = map[string]string{
	"facebook_page_id":                "page_id",
	"facebook_access_token":           "access_token",
	"google_maps_api_key":             "maps_api_key",
	"next_public_google_maps_api_key": "maps_api_key",
	"google_place_id":                 "place_id",
	"google_client_id":                "oauth_client_id",
	"google_client_secret":            "oauth_client_secret",
	"google_refresh_token":            "oauth_refresh_token",
	"google_business_account_id":      "business_account_id",
	"google_business_location_id":     "business_location_id",
}

// envMappings maps every other supported variable to its koanf path.
var envMappings = map[string]string{
	"graph_base_url":                     "graph.base_url",
	"graph_api_version":                  "graph.api_version",
	"graph_timeout":                      "graph.timeout",
	"graph_circuit_breaker_enabled":      "graph.circuit_breaker.enabled",
	"graph_circuit_breaker_max_requests": "graph.circuit_breaker.max_requests",
	"graph_circuit_breaker_interval":     "graph.circuit_breaker.interval",
	"graph_circuit_breaker_timeout":      "graph.circuit_breaker.timeout",
	"graph_circuit_breaker_failures":     "graph.circuit_breaker.failure_threshold",
	"google_places_base_url":             "google.places_base_url",
	"google_business_base_url":           "google.business_base_url",
	"google_token_url":                   "google.token_url",
	"google_timeout":                     "google.timeout",
	"http_port":                          "server.port",
	"http_host":                          "server.host",
	"http_read_timeout":                  "server.read_timeout",
	"http_write_timeout":                 "server.write_timeout",
	"http_idle_timeout":                  "server.idle_timeout",
	"http_shutdown_timeout":              "server.shutdown_timeout",
	"environment":                        "server.environment",
	"cors_origins":                       "security.cors_origins",
	"rate_limit_requests":                "security.rate_limit_reqs",
	"rate_limit_window":                  "security.rate_limit_window",
	"disable_rate_limit":                 "security.rate_limit_disabled",
	"log_level":                          "logging.level",
	"log_format":                         "logging.format",
	"log_caller":                         "logging.caller",
}

// envTransformFunc maps an environment variable name to a koanf path.
// Unmapped variables return "" and are skipped.
func envTransformFunc(key string) string {
	key = strings.ToLower(key)
	if field, ok := credentialEnvMappings[key]; ok {
		return "credentials." + field
	}
	return envMappings[key]
}
