// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package models

// Upstream Graph API payloads. Every nested object is a pointer because the
// provider omits sub-objects freely depending on permissions and content.

// GraphListResponse is the envelope of every Graph edge listing.
type GraphListResponse[T any] struct {
	Data   []T          `json:"data"`
	Paging *GraphPaging `json:"paging,omitempty"`
}

// GraphPaging carries opaque cursors and pre-built page URLs.
type GraphPaging struct {
	Cursors  *GraphCursors `json:"cursors,omitempty"`
	Next     string        `json:"next,omitempty"`
	Previous string        `json:"previous,omitempty"`
}

// GraphCursors holds the before/after cursor pair.
type GraphCursors struct {
	Before string `json:"before,omitempty"`
	After  string `json:"after,omitempty"`
}

// GraphLocation is the address block nested under a place.
type GraphLocation struct {
	City      string   `json:"city,omitempty"`
	Country   string   `json:"country,omitempty"`
	Street    string   `json:"street,omitempty"`
	Zip       string   `json:"zip,omitempty"`
	State     string   `json:"state,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// GraphPlace is a venue reference.
type GraphPlace struct {
	ID       string         `json:"id,omitempty"`
	Name     string         `json:"name,omitempty"`
	Location *GraphLocation `json:"location,omitempty"`
}

// GraphProfile identifies the owner or author of an object.
type GraphProfile struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	Category string `json:"category,omitempty"`
}

// GraphCover is an event cover photo.
type GraphCover struct {
	ID      string  `json:"id,omitempty"`
	Source  string  `json:"source,omitempty"`
	OffsetX float64 `json:"offset_x,omitempty"`
	OffsetY float64 `json:"offset_y,omitempty"`
}

// GraphImage is one size variant of a photo.
type GraphImage struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// GraphEventTime is one occurrence of a recurring event.
type GraphEventTime struct {
	ID        string `json:"id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time,omitempty"`
}

// GraphEvent is a page event as returned by /{page-id}/events.
type GraphEvent struct {
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Description     string           `json:"description,omitempty"`
	StartTime       string           `json:"start_time"`
	EndTime         string           `json:"end_time,omitempty"`
	UpdatedTime     string           `json:"updated_time,omitempty"`
	Timezone        string           `json:"timezone,omitempty"`
	Category        string           `json:"category,omitempty"`
	EventTimes      []GraphEventTime `json:"event_times,omitempty"`
	IsCanceled      bool             `json:"is_canceled,omitempty"`
	IsOnline        bool             `json:"is_online,omitempty"`
	IsPageOwned     bool             `json:"is_page_owned,omitempty"`
	TicketURI       string           `json:"ticket_uri,omitempty"`
	AttendingCount  *int             `json:"attending_count,omitempty"`
	DeclinedCount   *int             `json:"declined_count,omitempty"`
	InterestedCount *int             `json:"interested_count,omitempty"`
	MaybeCount      *int             `json:"maybe_count,omitempty"`
	NoreplyCount    *int             `json:"noreply_count,omitempty"`
	Cover           *GraphCover      `json:"cover,omitempty"`
	Place           *GraphPlace      `json:"place,omitempty"`
	Owner           *GraphProfile    `json:"owner,omitempty"`
}

// GraphEdgeSummary is an edge requested with .summary(true).
type GraphEdgeSummary struct {
	Summary *struct {
		TotalCount int `json:"total_count"`
	} `json:"summary,omitempty"`
}

// Total returns the summary count, or 0 when the edge or summary is absent.
func (s *GraphEdgeSummary) Total() int {
	if s == nil || s.Summary == nil {
		return 0
	}
	return s.Summary.TotalCount
}

// GraphAlbumRef is the album block nested in a photo.
type GraphAlbumRef struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Type string `json:"type,omitempty"`
}

// GraphPhoto is a page photo as returned by /{page-id}/photos.
type GraphPhoto struct {
	ID            string            `json:"id"`
	CreatedTime   string            `json:"created_time"`
	UpdatedTime   string            `json:"updated_time,omitempty"`
	BackdatedTime string            `json:"backdated_time,omitempty"`
	Name          string            `json:"name,omitempty"`
	AltText       string            `json:"alt_text,omitempty"`
	Height        int               `json:"height,omitempty"`
	Width         int               `json:"width,omitempty"`
	Link          string            `json:"link,omitempty"`
	Place         *GraphPlace       `json:"place,omitempty"`
	Images        []GraphImage      `json:"images,omitempty"`
	Album         *GraphAlbumRef    `json:"album,omitempty"`
	From          *GraphProfile     `json:"from,omitempty"`
	Likes         *GraphEdgeSummary `json:"likes,omitempty"`
	Comments      *GraphEdgeSummary `json:"comments,omitempty"`
	Reactions     *GraphEdgeSummary `json:"reactions,omitempty"`
	Tags          *GraphEdgeSummary `json:"tags,omitempty"`
}

// GraphCoverPhoto is the cover block nested in an album.
type GraphCoverPhoto struct {
	ID          string       `json:"id,omitempty"`
	Name        string       `json:"name,omitempty"`
	Picture     string       `json:"picture,omitempty"`
	Source      string       `json:"source,omitempty"`
	Images      []GraphImage `json:"images,omitempty"`
	CreatedTime string       `json:"created_time,omitempty"`
}

// GraphAlbum is a page album as returned by /{page-id}/albums.
type GraphAlbum struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description,omitempty"`
	Type        string           `json:"type,omitempty"`
	Privacy     string           `json:"privacy,omitempty"`
	Count       *int             `json:"count,omitempty"`
	CreatedTime string           `json:"created_time,omitempty"`
	UpdatedTime string           `json:"updated_time,omitempty"`
	CoverPhoto  *GraphCoverPhoto `json:"cover_photo,omitempty"`
	From        *GraphProfile    `json:"from,omitempty"`
	Place       *GraphPlace      `json:"place,omitempty"`
	CanUpload   bool             `json:"can_upload,omitempty"`
	Link        string           `json:"link,omitempty"`
}

// GraphErrorResponse is the body of a failed Graph call.
type GraphErrorResponse struct {
	Error *GraphError `json:"error"`
}

// GraphError is the provider error object.
type GraphError struct {
	Message      string `json:"message"`
	Type         string `json:"type"`
	Code         int    `json:"code"`
	ErrorSubcode int    `json:"error_subcode,omitempty"`
	FBTraceID    string `json:"fbtrace_id,omitempty"`
}

// BatchItem is one sub-request of a compound Graph call.
type BatchItem struct {
	Method      string `json:"method"`
	RelativeURL string `json:"relative_url"`
}

// BatchResult is one slot of a compound Graph response. Body is itself a
// JSON document encoded as a string.
type BatchResult struct {
	Code int    `json:"code"`
	Body string `json:"body"`
}
