// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package reviews

import (
	"context"

	"github.com/YuraDukhnoAman/desire-club/internal/config"
	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

// Source labels of the static datasets.
const (
	SourceBusinessFallback = "Mock Data (Business Profile API fallback)"
	SourceNoCredentials    = "Mock Data (no credentials)"
)

var staticReviews = []models.Review{
	{
		ID:        "mock-1",
		Author:    "Sarah M.",
		Rating:    5,
		Comment:   "Amazing atmosphere and great music! The staff was super friendly and the drinks were perfect. Will definitely come back!",
		CreatedAt: "2024-01-15T10:30:00Z",
		UpdatedAt: "2024-01-15T10:30:00Z",
	},
	{
		ID:        "mock-2",
		Author:    "David K.",
		Rating:    5,
		Comment:   "Best nightclub in Tel Aviv! The live music was incredible and the vibe was electric. Highly recommend!",
		CreatedAt: "2024-01-10T22:15:00Z",
		UpdatedAt: "2024-01-10T22:15:00Z",
	},
	{
		ID:        "mock-3",
		Author:    "Rachel L.",
		Rating:    4,
		Comment:   "Great place for a night out. Good music selection and nice crowd. The only downside was it got quite crowded later in the evening.",
		CreatedAt: "2024-01-08T21:45:00Z",
		UpdatedAt: "2024-01-08T21:45:00Z",
	},
	{
		ID:        "mock-4",
		Author:    "Michael T.",
		Rating:    5,
		Comment:   "Incredible experience! The DJ was amazing and the atmosphere was perfect. Can't wait to come back next weekend!",
		CreatedAt: "2024-01-05T23:20:00Z",
		UpdatedAt: "2024-01-05T23:20:00Z",
	},
	{
		ID:        "mock-5",
		Author:    "Anna B.",
		Rating:    4,
		Comment:   "Really enjoyed the live band performance. The venue has great acoustics and the staff was very attentive.",
		CreatedAt: "2024-01-03T20:15:00Z",
		UpdatedAt: "2024-01-03T20:15:00Z",
	},
	{
		ID:        "mock-6",
		Author:    "Tom R.",
		Rating:    5,
		Comment:   "Best night out in a long time! The cocktails were delicious and the music was exactly what I was looking for.",
		CreatedAt: "2024-01-01T22:45:00Z",
		UpdatedAt: "2024-01-01T22:45:00Z",
	},
	{
		ID:        "mock-7",
		Author:    "Lisa K.",
		Rating:    4,
		Comment:   "Great venue with a fantastic atmosphere. The food was surprisingly good for a club. Will definitely return!",
		CreatedAt: "2023-12-28T21:30:00Z",
		UpdatedAt: "2023-12-28T21:30:00Z",
	},
	{
		ID:        "mock-8",
		Author:    "Daniel S.",
		Rating:    5,
		Comment:   "Absolutely loved the karaoke night! The staff was so supportive and the crowd was amazing. Perfect evening!",
		CreatedAt: "2023-12-25T19:15:00Z",
		UpdatedAt: "2023-12-25T19:15:00Z",
	},
}

// StaticStrategy is the terminal step: always available, never fails.
// With OAuth credentials configured it serves the full dataset labeled as
// the Business Profile fallback; otherwise the short no-credentials set.
type StaticStrategy struct{}

// NewStaticStrategy creates the terminal step of the chain.
func NewStaticStrategy() *StaticStrategy {
	return &StaticStrategy{}
}

func (s *StaticStrategy) Name() string { return StrategyStatic }

func (s *StaticStrategy) Available(config.Credentials) bool { return true }

func (s *StaticStrategy) Fetch(_ context.Context, creds config.Credentials, page Page) (*models.ReviewsResponse, error) {
	dataset, source, avg := staticReviews[:3], SourceNoCredentials, 4.7
	if creds.OAuthClientID != "" && creds.OAuthClientSecret != "" && creds.OAuthRefreshToken != "" {
		dataset, source, avg = staticReviews, SourceBusinessFallback, 4.6
	}
	total := len(dataset)

	n := min(page.size(), total)
	out := make([]models.Review, n)
	copy(out, dataset[:n])

	return &models.ReviewsResponse{
		Reviews:          out,
		AverageRating:    &avg,
		TotalReviewCount: &total,
		Source:           source,
	}, nil
}
