// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package reviews

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/YuraDukhnoAman/desire-club/internal/config"
	"github.com/YuraDukhnoAman/desire-club/internal/logging"
	"github.com/YuraDukhnoAman/desire-club/internal/metrics"
	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

const (
	placesSource = "Google Places API (New)"
	placesNote   = "Google Places API returns up to 5 most recent reviews"
)

type placesResponse struct {
	Rating          *float64       `json:"rating"`
	UserRatingCount *int           `json:"userRatingCount"`
	Reviews         []placesReview `json:"reviews"`
}

type placesReview struct {
	Name                           string `json:"name"`
	RelativePublishTimeDescription string `json:"relativePublishTimeDescription"`
	Rating                         int    `json:"rating"`
	Text                           *struct {
		Text string `json:"text"`
	} `json:"text"`
	AuthorAttribution *struct {
		DisplayName string `json:"displayName"`
		URI         string `json:"uri"`
		PhotoURI    string `json:"photoUri"`
	} `json:"authorAttribution"`
	PublishTime string `json:"publishTime"`
}

// PlacesStrategy reads the reviews embedded in a Places API (New) place
// lookup. The provider caps them at five and offers no pagination.
type PlacesStrategy struct {
	baseURL    string
	httpClient *http.Client
}

// NewPlacesStrategy creates the Places step of the chain.
func NewPlacesStrategy(cfg config.GoogleConfig, hc *http.Client) *PlacesStrategy {
	return &PlacesStrategy{baseURL: strings.TrimRight(cfg.PlacesBaseURL, "/"), httpClient: hc}
}

func (s *PlacesStrategy) Name() string { return StrategyPlaces }

func (s *PlacesStrategy) Available(creds config.Credentials) bool {
	return creds.HasPlaces()
}

func (s *PlacesStrategy) Fetch(ctx context.Context, creds config.Credentials, page Page) (*models.ReviewsResponse, error) {
	q := url.Values{}
	q.Set("fields", "reviews,rating,userRatingCount")
	q.Set("key", creds.MapsAPIKey)
	endpoint := fmt.Sprintf("%s/v1/places/%s?%s", s.baseURL, url.PathEscape(creds.PlaceID), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamCall("google_places", "reviews", 0, time.Since(start))
		return nil, models.NewUpstreamError(http.StatusBadGateway, "Failed to reach Google Places API", err)
	}
	defer func() { _ = resp.Body.Close() }()
	metrics.RecordUpstreamCall("google_places", "reviews", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, classifyGoogleError("Google Places API", resp.StatusCode, resp.Body)
	}

	var data placesResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, models.NewUpstreamError(http.StatusBadGateway, "Google Places API returned an unreadable response", err)
	}

	reviews := make([]models.Review, 0, len(data.Reviews))
	for i, r := range data.Reviews {
		if len(reviews) == page.size() {
			break
		}
		review := models.Review{
			ID:           fmt.Sprintf("places-%d", i),
			Rating:       r.Rating,
			CreatedAt:    r.PublishTime,
			UpdatedAt:    r.PublishTime,
			RelativeTime: r.RelativePublishTimeDescription,
		}
		if r.Text != nil {
			review.Comment = r.Text.Text
		}
		if r.AuthorAttribution != nil {
			review.Author = r.AuthorAttribution.DisplayName
			review.ProfilePhoto = r.AuthorAttribution.PhotoURI
			review.AuthorURL = r.AuthorAttribution.URI
		}
		reviews = append(reviews, review)
	}

	total := 0
	if data.UserRatingCount != nil {
		total = *data.UserRatingCount
	}

	logging.Ctx(ctx).Debug().Int("reviews", len(reviews)).Msg("Fetched reviews from Places API")
	return &models.ReviewsResponse{
		Reviews:          reviews,
		AverageRating:    data.Rating,
		TotalReviewCount: data.UserRatingCount,
		Source:           placesSource,
		Pagination: &models.ReviewsPagination{
			HasMore:        false,
			TotalAvailable: total,
			CurrentCount:   len(reviews),
			Note:           placesNote,
		},
	}, nil
}
