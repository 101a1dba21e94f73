// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package models

import "time"

// ResourceKind names one of the listable Graph edges.
type ResourceKind string

const (
	KindEvents ResourceKind = "events"
	KindPhotos ResourceKind = "photos"
	KindAlbums ResourceKind = "albums"
)

// Valid reports whether k is one of the three listable kinds.
func (k ResourceKind) Valid() bool {
	switch k {
	case KindEvents, KindPhotos, KindAlbums:
		return true
	}
	return false
}

// DefaultLimit is the page size used when the caller supplies none.
const DefaultLimit = 25

// DefaultPhotoType is the photos edge filter used when the caller supplies none.
const DefaultPhotoType = "uploaded"

// ResourceRequest describes one page request against a Graph edge. It lives
// only for the duration of an inbound call.
type ResourceRequest struct {
	Kind      ResourceKind
	After     string
	Before    string
	Limit     int
	PhotoType string
}

// EventCategory is the local event classification used by the frontend.
type EventCategory string

const (
	CategoryLive    EventCategory = "live"
	CategoryStandup EventCategory = "standup"
	CategoryKaraoke EventCategory = "karaoke"
	CategoryQuiz    EventCategory = "quiz"
	CategoryMOM     EventCategory = "mom"
	CategoryParty   EventCategory = "party"
)

// ParseEventCategory returns the category named by s and whether s names one.
func ParseEventCategory(s string) (EventCategory, bool) {
	switch c := EventCategory(s); c {
	case CategoryLive, CategoryStandup, CategoryKaraoke, CategoryQuiz, CategoryMOM, CategoryParty:
		return c, true
	}
	return "", false
}

// Coordinates is a latitude/longitude pair.
type Coordinates struct {
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// LocationDetails is a flattened venue description.
type LocationDetails struct {
	Name        string       `json:"name,omitempty"`
	Address     string       `json:"address,omitempty"`
	City        string       `json:"city,omitempty"`
	Country     string       `json:"country,omitempty"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// ImageVariant is one size of an image.
type ImageVariant struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Dimensions is the pixel size of an original upload.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// NormalizedEvent is the frontend representation of a page event.
type NormalizedEvent struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	StartDate       time.Time        `json:"startDate"`
	EndDate         *time.Time       `json:"endDate,omitempty"`
	Description     string           `json:"description"`
	Category        EventCategory    `json:"category"`
	Price           int              `json:"price"`
	CoverImage      string           `json:"coverImage"`
	TicketURL       string           `json:"ticketUrl,omitempty"`
	FacebookURL     string           `json:"facebookUrl"`
	AttendingCount  *int             `json:"attendingCount,omitempty"`
	InterestedCount *int             `json:"interestedCount,omitempty"`
	IsCanceled      bool             `json:"isCanceled"`
	IsOnline        bool             `json:"isOnline"`
	Timezone        string           `json:"timezone,omitempty"`
	Location        string           `json:"location,omitempty"`
	LocationDetails *LocationDetails `json:"locationDetails,omitempty"`
}

// AlbumPlace is the venue attached to an album.
type AlbumPlace struct {
	Name     string           `json:"name,omitempty"`
	Location *LocationDetails `json:"location,omitempty"`
}

// NormalizedAlbum is the frontend representation of a photo album.
type NormalizedAlbum struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description,omitempty"`
	PhotoCount      int            `json:"photoCount"`
	CreatedAt       *time.Time     `json:"createdAt,omitempty"`
	UpdatedAt       *time.Time     `json:"updatedAt,omitempty"`
	CoverImage      string         `json:"coverImage,omitempty"`
	CoverImageSizes []ImageVariant `json:"coverImageSizes"`
	Type            string         `json:"type"`
	Privacy         string         `json:"privacy,omitempty"`
	CanUpload       bool           `json:"canUpload"`
	FacebookURL     string         `json:"facebookUrl"`
	OwnerName       string         `json:"ownerName,omitempty"`
	OwnerID         string         `json:"ownerId,omitempty"`
	Place           *AlbumPlace    `json:"place,omitempty"`
}

// Engagement is the flattened set of photo interaction counters.
type Engagement struct {
	Likes     int `json:"likes"`
	Comments  int `json:"comments"`
	Reactions int `json:"reactions"`
	Tags      int `json:"tags"`
}

// NormalizedPhoto is the frontend representation of a page photo.
type NormalizedPhoto struct {
	ID              string           `json:"id"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       *time.Time       `json:"updatedAt,omitempty"`
	Caption         string           `json:"caption,omitempty"`
	AltText         string           `json:"altText,omitempty"`
	Dimensions      *Dimensions      `json:"dimensions,omitempty"`
	Images          []ImageVariant   `json:"images"`
	Thumbnail       string           `json:"thumbnail,omitempty"`
	FullImage       string           `json:"fullImage,omitempty"`
	AlbumID         string           `json:"albumId,omitempty"`
	AlbumName       string           `json:"albumName,omitempty"`
	Location        string           `json:"location,omitempty"`
	LocationDetails *LocationDetails `json:"locationDetails,omitempty"`
	Engagement      Engagement       `json:"engagement"`
	FacebookURL     string           `json:"facebookUrl"`
}

// PaginationMetadata is attached to every successful listing, including
// empty ones.
type PaginationMetadata struct {
	TotalCount      int       `json:"total_count"`
	HasNextPage     bool      `json:"has_next_page"`
	HasPreviousPage bool      `json:"has_previous_page"`
	CursorAfter     string    `json:"cursor_after,omitempty"`
	CursorBefore    string    `json:"cursor_before,omitempty"`
	APIVersion      string    `json:"api_version"`
	CachedUntil     time.Time `json:"cached_until"`
	PhotoType       string    `json:"photo_type,omitempty"`
}

// ListResponse is the body of a single-edge listing endpoint.
type ListResponse[T any] struct {
	Data     []T                `json:"data"`
	Paging   *GraphPaging       `json:"paging,omitempty"`
	Metadata PaginationMetadata `json:"metadata"`
}

// BatchSlot is one edge's share of a batch response. Error is set when the
// sub-request failed; Data is then empty.
type BatchSlot[T any] struct {
	Data     []T                `json:"data"`
	Paging   *GraphPaging       `json:"paging,omitempty"`
	Metadata PaginationMetadata `json:"metadata"`
	Error    *ErrorBody         `json:"error,omitempty"`
}

// BatchInfo summarizes the outcome of a compound call.
type BatchInfo struct {
	RequestsMade       int       `json:"requests_made"`
	SuccessfulRequests int       `json:"successful_requests"`
	FailedRequests     int       `json:"failed_requests"`
	Timestamp          time.Time `json:"timestamp"`
}

// BatchResponse is the body of the batch endpoint.
type BatchResponse struct {
	Events    BatchSlot[NormalizedEvent] `json:"events"`
	Photos    BatchSlot[NormalizedPhoto] `json:"photos"`
	BatchInfo BatchInfo                  `json:"batch_info"`
}
