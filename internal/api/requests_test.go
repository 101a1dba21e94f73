// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package api

import (
	"net/url"
	"strings"
	"testing"

	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

func TestParseListQuery(t *testing.T) {
	t.Parallel()

	longCursor := strings.Repeat("Q", 4096)

	tests := []struct {
		name    string
		kind    models.ResourceKind
		query   string
		want    ListQuery
		wantErr string
	}{
		{name: "defaults", kind: models.KindEvents, query: "", want: ListQuery{Limit: models.DefaultLimit}},
		{name: "after cursor", kind: models.KindEvents, query: "limit=5&after=QVFIUm", want: ListQuery{Limit: 5, After: "QVFIUm"}},
		{name: "before cursor", kind: models.KindAlbums, query: "before=QVFIUm", want: ListQuery{Limit: models.DefaultLimit, Before: "QVFIUm"}},
		{name: "long cursor kept", kind: models.KindEvents, query: "after=" + longCursor, want: ListQuery{Limit: models.DefaultLimit, After: longCursor}},
		{name: "padded cursor kept", kind: models.KindPhotos, query: "after=%20QVFI%20Um%3D%3D%20", want: ListQuery{Limit: models.DefaultLimit, After: " QVFI Um== "}},
		{name: "tagged photos", kind: models.KindPhotos, query: "type=tagged", want: ListQuery{Limit: models.DefaultLimit, Type: "tagged"}},
		{name: "type ignored on events", kind: models.KindEvents, query: "type=profile", want: ListQuery{Limit: models.DefaultLimit}},
		{name: "type ignored on albums", kind: models.KindAlbums, query: "type=tagged", want: ListQuery{Limit: models.DefaultLimit}},
		{name: "upcoming", kind: models.KindEvents, query: "upcoming=true", want: ListQuery{Limit: models.DefaultLimit, Upcoming: true}},
		{name: "upcoming ignored on photos", kind: models.KindPhotos, query: "upcoming=maybe", want: ListQuery{Limit: models.DefaultLimit}},
		{name: "maximum limit", kind: models.KindEvents, query: "limit=100", want: ListQuery{Limit: 100}},
		{name: "both cursors", kind: models.KindEvents, query: "after=a&before=b", wantErr: "after cannot be combined with before"},
		{name: "limit too small", kind: models.KindEvents, query: "limit=0", wantErr: "limit must be at least 1"},
		{name: "limit too large", kind: models.KindAlbums, query: "limit=500", wantErr: "limit must be at most 100"},
		{name: "limit not a number", kind: models.KindPhotos, query: "limit=abc", wantErr: "limit must be an integer"},
		{name: "bad type", kind: models.KindPhotos, query: "type=profile", wantErr: "type must be one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			values, err := url.ParseQuery(tt.query)
			if err != nil {
				t.Fatal(err)
			}
			got, err := parseListQuery(values, tt.kind)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q", tt.wantErr)
				}
				appErr := models.AsAppError(err)
				if appErr.Kind != models.ErrorKindBadRequest || !strings.Contains(appErr.Message, tt.wantErr) {
					t.Errorf("error = %v, want BadRequest containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestListQueryResourceRequest(t *testing.T) {
	t.Parallel()

	q := ListQuery{Limit: 7, After: "A", Type: "tagged"}
	got := q.ResourceRequest(models.KindPhotos)
	want := models.ResourceRequest{Kind: models.KindPhotos, Limit: 7, After: "A", PhotoType: "tagged"}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestParseBatchQuery(t *testing.T) {
	t.Parallel()

	got, err := parseBatchQuery(url.Values{})
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	if got.EventsLimit != DefaultBatchLimit || got.PhotosLimit != DefaultBatchLimit {
		t.Errorf("defaults = %+v", got)
	}

	got, err = parseBatchQuery(url.Values{"events_limit": {"3"}, "photos_after": {"P"}})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if got.EventsLimit != 3 || got.PhotosAfter != "P" {
		t.Errorf("parsed = %+v", got)
	}

	got, err = parseBatchQuery(url.Values{"events_after": {" E 1 "}, "photos_after": {strings.Repeat("P", 3000)}})
	if err != nil {
		t.Fatalf("parse cursors: %v", err)
	}
	if got.EventsAfter != " E 1 " || got.PhotosAfter != strings.Repeat("P", 3000) {
		t.Errorf("cursors changed: %+v", got)
	}

	if _, err := parseBatchQuery(url.Values{"photos_limit": {"101"}}); err == nil {
		t.Error("expected error for photos_limit=101")
	}
}

func TestParseReviewsQuery(t *testing.T) {
	t.Parallel()

	got, err := parseReviewsQuery(url.Values{})
	if err != nil {
		t.Fatalf("defaults: %v", err)
	}
	if got.MaxResults != 20 || got.PageToken != "" {
		t.Errorf("defaults = %+v", got)
	}

	got, err = parseReviewsQuery(url.Values{"pageToken": {" next page "}})
	if err != nil {
		t.Fatalf("page token: %v", err)
	}
	if got.PageToken != " next page " {
		t.Errorf("pageToken = %q", got.PageToken)
	}

	for _, bad := range []string{"0", "51", "x"} {
		if _, err := parseReviewsQuery(url.Values{"maxResults": {bad}}); err == nil {
			t.Errorf("maxResults=%s: expected error", bad)
		}
	}
}
