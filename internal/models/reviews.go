// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package models

// Review is a normalized customer review, independent of the source that
// produced it.
type Review struct {
	ID           string `json:"id"`
	Author       string `json:"author"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
	RelativeTime string `json:"relativeTime,omitempty"`
	ProfilePhoto string `json:"profilePhoto,omitempty"`
	AuthorURL    string `json:"authorUrl,omitempty"`
	Reply        string `json:"reply,omitempty"`
}

// ReviewsPagination describes how much more data the source can return.
type ReviewsPagination struct {
	HasMore        bool   `json:"hasMore"`
	NextPageToken  string `json:"nextPageToken,omitempty"`
	TotalAvailable int    `json:"totalAvailable"`
	CurrentCount   int    `json:"currentCount"`
	Note           string `json:"note,omitempty"`
}

// ReviewsResponse is the body of the reviews endpoint. Source is always set
// so consumers can tell live data from the fallback dataset.
type ReviewsResponse struct {
	Reviews          []Review           `json:"reviews"`
	AverageRating    *float64           `json:"averageRating,omitempty"`
	TotalReviewCount *int               `json:"totalReviewCount,omitempty"`
	Source           string             `json:"source"`
	Pagination       *ReviewsPagination `json:"pagination,omitempty"`
}
