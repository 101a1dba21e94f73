// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package reviews

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/oauth2"

	"github.com/YuraDukhnoAman/desire-club/internal/config"
	"github.com/YuraDukhnoAman/desire-club/internal/logging"
	"github.com/YuraDukhnoAman/desire-club/internal/metrics"
	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

const (
	businessSource = "Google Business Profile API"
	businessScope  = "https://www.googleapis.com/auth/business.manage"
)

var starRatings = map[string]int{
	"ONE":   1,
	"TWO":   2,
	"THREE": 3,
	"FOUR":  4,
	"FIVE":  5,
}

type businessReviewsResponse struct {
	Reviews          []businessReview `json:"reviews"`
	AverageRating    *float64         `json:"averageRating"`
	TotalReviewCount *int             `json:"totalReviewCount"`
	NextPageToken    string           `json:"nextPageToken"`
}

type businessReview struct {
	Name     string `json:"name"`
	ReviewID string `json:"reviewId"`
	Reviewer struct {
		DisplayName     string `json:"displayName"`
		ProfilePhotoURL string `json:"profilePhotoUrl"`
		IsAnonymous     bool   `json:"isAnonymous"`
	} `json:"reviewer"`
	StarRating  string `json:"starRating"`
	Comment     string `json:"comment"`
	CreateTime  string `json:"createTime"`
	UpdateTime  string `json:"updateTime"`
	ReviewReply *struct {
		Comment string `json:"comment"`
	} `json:"reviewReply"`
}

// BusinessProfileStrategy exchanges the stored refresh token for an access
// token, then lists the location's reviews.
type BusinessProfileStrategy struct {
	baseURL    string
	tokenURL   string
	httpClient *http.Client
}

// NewBusinessProfileStrategy creates the Business Profile step of the chain.
func NewBusinessProfileStrategy(cfg config.GoogleConfig, hc *http.Client) *BusinessProfileStrategy {
	return &BusinessProfileStrategy{
		baseURL:    strings.TrimRight(cfg.BusinessBaseURL, "/"),
		tokenURL:   cfg.TokenURL,
		httpClient: hc,
	}
}

func (s *BusinessProfileStrategy) Name() string { return StrategyBusinessProfile }

func (s *BusinessProfileStrategy) Available(creds config.Credentials) bool {
	return creds.HasBusinessProfile()
}

func (s *BusinessProfileStrategy) Fetch(ctx context.Context, creds config.Credentials, page Page) (*models.ReviewsResponse, error) {
	token, err := s.accessToken(ctx, creds)
	if err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("pageSize", strconv.Itoa(page.size()))
	if page.Token != "" {
		q.Set("pageToken", page.Token)
	}
	endpoint := fmt.Sprintf("%s/v4/accounts/%s/locations/%s/reviews?%s", s.baseURL,
		url.PathEscape(creds.BusinessAccountID), url.PathEscape(creds.BusinessLocationID), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	token.SetAuthHeader(req)

	start := time.Now()
	resp, err := s.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstreamCall("google_business", "reviews", 0, time.Since(start))
		return nil, models.NewUpstreamError(http.StatusBadGateway, "Failed to reach Google Business Profile API", err)
	}
	defer func() { _ = resp.Body.Close() }()
	metrics.RecordUpstreamCall("google_business", "reviews", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, classifyGoogleError("Google Business Profile API", resp.StatusCode, resp.Body)
	}

	var data businessReviewsResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, models.NewUpstreamError(http.StatusBadGateway, "Google Business Profile API returned an unreadable response", err)
	}

	reviews := make([]models.Review, 0, len(data.Reviews))
	for _, r := range data.Reviews {
		reviews = append(reviews, toReview(r))
	}

	total := len(reviews)
	if data.TotalReviewCount != nil {
		total = *data.TotalReviewCount
	}

	logging.Ctx(ctx).Debug().Int("reviews", len(reviews)).Bool("has_more", data.NextPageToken != "").Msg("Fetched reviews from Business Profile API")
	return &models.ReviewsResponse{
		Reviews:          reviews,
		AverageRating:    data.AverageRating,
		TotalReviewCount: data.TotalReviewCount,
		Source:           businessSource,
		Pagination: &models.ReviewsPagination{
			HasMore:        data.NextPageToken != "",
			NextPageToken:  data.NextPageToken,
			TotalAvailable: total,
			CurrentCount:   len(reviews),
		},
	}, nil
}

// accessToken performs the refresh-token grant. A rejected grant is an
// authentication failure.
func (s *BusinessProfileStrategy) accessToken(ctx context.Context, creds config.Credentials) (*oauth2.Token, error) {
	conf := &oauth2.Config{
		ClientID:     creds.OAuthClientID,
		ClientSecret: creds.OAuthClientSecret,
		Endpoint: oauth2.Endpoint{
			TokenURL:  s.tokenURL,
			AuthStyle: oauth2.AuthStyleInParams,
		},
		Scopes: []string{businessScope},
	}

	ctx = context.WithValue(ctx, oauth2.HTTPClient, s.httpClient)
	start := time.Now()
	token, err := conf.TokenSource(ctx, &oauth2.Token{RefreshToken: creds.OAuthRefreshToken}).Token()
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) && retrieveErr.Response != nil {
			metrics.RecordUpstreamCall("google_oauth", "token", retrieveErr.Response.StatusCode, time.Since(start))
			if retrieveErr.Response.StatusCode < http.StatusInternalServerError {
				appErr := models.NewAuthenticationError("Google OAuth refresh token was rejected")
				appErr.UpstreamType = retrieveErr.ErrorCode
				appErr.Err = err
				return nil, appErr
			}
			return nil, models.NewUpstreamError(retrieveErr.Response.StatusCode, "Google OAuth token endpoint failed", err)
		}
		metrics.RecordUpstreamCall("google_oauth", "token", 0, time.Since(start))
		return nil, models.NewUpstreamError(http.StatusBadGateway, "Failed to refresh Google OAuth token", err)
	}
	metrics.RecordUpstreamCall("google_oauth", "token", http.StatusOK, time.Since(start))
	return token, nil
}

func toReview(r businessReview) models.Review {
	review := models.Review{
		ID:           r.ReviewID,
		Author:       r.Reviewer.DisplayName,
		Rating:       starRatings[r.StarRating],
		Comment:      r.Comment,
		CreatedAt:    r.CreateTime,
		UpdatedAt:    r.UpdateTime,
		ProfilePhoto: r.Reviewer.ProfilePhotoURL,
	}
	if review.ID == "" {
		review.ID = r.Name
	}
	if r.Reviewer.IsAnonymous && review.Author == "" {
		review.Author = "Anonymous"
	}
	if r.ReviewReply != nil {
		review.Reply = r.ReviewReply.Comment
	}
	return review
}
