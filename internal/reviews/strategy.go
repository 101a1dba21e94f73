// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

// Package reviews serves venue reviews from the first source that can
// answer: Google Places, then the Google Business Profile API, then a
// labeled static dataset. Every response names its source.
package reviews

import (
	"context"

	"github.com/YuraDukhnoAman/desire-club/internal/config"
	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

const (
	// DefaultMaxResults applies when the caller gives no maxResults.
	DefaultMaxResults = 20
	// MaxPageSize is the Business Profile API's page size ceiling.
	MaxPageSize = 50
)

// Strategy names used for logging, metrics and cache policy.
const (
	StrategyPlaces          = "places"
	StrategyBusinessProfile = "business_profile"
	StrategyStatic          = "static"
)

// Page is the caller's pagination request.
type Page struct {
	Token      string
	MaxResults int
}

func (p Page) size() int {
	switch {
	case p.MaxResults <= 0:
		return DefaultMaxResults
	case p.MaxResults > MaxPageSize:
		return MaxPageSize
	default:
		return p.MaxResults
	}
}

// Strategy is one step of the reviews chain. Available is a pure
// credential check; Fetch makes a single attempt with no retries.
type Strategy interface {
	Name() string
	Available(creds config.Credentials) bool
	Fetch(ctx context.Context, creds config.Credentials, page Page) (*models.ReviewsResponse, error)
}
