// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

// Credentials are the secrets needed to reach the upstream providers.
type Credentials struct {
	PageID             string `koanf:"page_id"`
	AccessToken        string `koanf:"access_token"`
	MapsAPIKey         string `koanf:"maps_api_key"`
	PlaceID            string `koanf:"place_id"`
	OAuthClientID      string `koanf:"oauth_client_id"`
	OAuthClientSecret  string `koanf:"oauth_client_secret"`
	OAuthRefreshToken  string `koanf:"oauth_refresh_token"`
	BusinessAccountID  string `koanf:"business_account_id"`
	BusinessLocationID string `koanf:"business_location_id"`
}

// RequireGraph returns a ConfigurationError unless both the page id and the
// page access token are set.
func (c Credentials) RequireGraph() error {
	var missing []string
	if strings.TrimSpace(c.PageID) == "" {
		missing = append(missing, "FACEBOOK_PAGE_ID")
	}
	if strings.TrimSpace(c.AccessToken) == "" {
		missing = append(missing, "FACEBOOK_ACCESS_TOKEN")
	}
	if len(missing) == 0 {
		return nil
	}
	appErr := models.NewConfigurationError("Facebook credentials not configured")
	appErr.Details = map[string]any{"missing": missing}
	return appErr
}

// HasPlaces reports whether the Places lookup can be attempted.
func (c Credentials) HasPlaces() bool {
	return c.MapsAPIKey != "" && c.PlaceID != ""
}

// HasBusinessProfile reports whether the OAuth refresh flow can be attempted.
func (c Credentials) HasBusinessProfile() bool {
	return c.OAuthClientID != "" && c.OAuthClientSecret != "" && c.OAuthRefreshToken != "" &&
		c.BusinessAccountID != "" && c.BusinessLocationID != ""
}

// CredentialSource resolves credentials at request time.
type CredentialSource interface {
	Credentials(ctx context.Context) (Credentials, error)
}

// StaticCredentialSource always returns the same credentials.
type StaticCredentialSource struct {
	creds Credentials
}

// NewStaticCredentialSource wraps a fixed set of credentials.
func NewStaticCredentialSource(c Credentials) *StaticCredentialSource {
	return &StaticCredentialSource{creds: c}
}

// Credentials implements CredentialSource.
func (s *StaticCredentialSource) Credentials(_ context.Context) (Credentials, error) {
	return s.creds, nil
}

// EnvCredentialSource re-reads the process environment on every call, layered
// over the credentials loaded at start-up (defaults and config file).
type EnvCredentialSource struct {
	base Credentials
}

// NewEnvCredentialSource returns a source that falls back to base for any
// variable that is not set.
func NewEnvCredentialSource(base Credentials) *EnvCredentialSource {
	return &EnvCredentialSource{base: base}
}

// Credentials implements CredentialSource.
func (s *EnvCredentialSource) Credentials(_ context.Context) (Credentials, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(s.base, "koanf"), nil); err != nil {
		return Credentials{}, fmt.Errorf("failed to load base credentials: %w", err)
	}
	if err := k.Load(env.Provider("", ".", credentialEnvKey), nil); err != nil {
		return Credentials{}, fmt.Errorf("failed to read credential environment: %w", err)
	}

	var creds Credentials
	if err := k.Unmarshal("", &creds); err != nil {
		return Credentials{}, fmt.Errorf("failed to unmarshal credentials: %w", err)
	}
	return creds, nil
}

func credentialEnvKey(key string) string {
	return credentialEnvMappings[strings.ToLower(key)]
}
