// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

/*
Package config provides layered configuration for the aggregation service.

Configuration is loaded with Koanf v2 in three layers, each overriding the
previous one:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file (CONFIG_PATH, config.yaml, config.yml)
 3. Environment variables

# Environment Variables

Graph API:
  - FACEBOOK_PAGE_ID, FACEBOOK_ACCESS_TOKEN: page credentials (secrets)
  - GRAPH_BASE_URL: default https://graph.facebook.com
  - GRAPH_API_VERSION: default v23.0
  - GRAPH_TIMEOUT: outbound timeout (default 15s)
  - GRAPH_CIRCUIT_BREAKER_ENABLED: opt-in breaker (default false)

Reviews:
  - GOOGLE_MAPS_API_KEY (or NEXT_PUBLIC_GOOGLE_MAPS_API_KEY), GOOGLE_PLACE_ID
  - GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET, GOOGLE_REFRESH_TOKEN
  - GOOGLE_BUSINESS_ACCOUNT_ID, GOOGLE_BUSINESS_LOCATION_ID

Server:
  - HTTP_HOST, HTTP_PORT, HTTP_READ_TIMEOUT, HTTP_WRITE_TIMEOUT, ENVIRONMENT

Security:
  - CORS_ORIGINS (comma separated), RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW,
    DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

# Credentials

Secrets are also resolved per request through a CredentialSource so that a
rotated token takes effect without a restart:

	creds, err := source.Credentials(ctx)
	if err := creds.RequireGraph(); err != nil {
	    return err // ConfigurationError, HTTP 500
	}
*/
package config
