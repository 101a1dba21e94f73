// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

// Package main is the entry point of the Desire Club data aggregation server.
//
// The server proxies the club's Facebook page (events, photos, albums) and its
// Google reviews to the website frontend, normalizing every payload and
// attaching CDN cache headers.
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority
// wins):
//   - Environment variables
//   - Config file (CONFIG_PATH, or config.yaml)
//   - Built-in defaults
//
// Provider credentials are re-read from the environment on every request:
//   - FACEBOOK_PAGE_ID, FACEBOOK_ACCESS_TOKEN
//   - GOOGLE_MAPS_API_KEY, GOOGLE_PLACE_ID
//   - GOOGLE_CLIENT_ID, GOOGLE_CLIENT_SECRET, GOOGLE_REFRESH_TOKEN,
//     GOOGLE_BUSINESS_ACCOUNT_ID, GOOGLE_BUSINESS_LOCATION_ID
//
// # Signal Handling
//
// SIGINT and SIGTERM cancel the supervisor tree, which shuts the HTTP server
// down gracefully within SERVER_SHUTDOWN_TIMEOUT.
package main
