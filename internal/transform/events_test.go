// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package transform

import (
	"testing"
	"time"

	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

func TestInferCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		title       string
		description string
		want        models.EventCategory
	}{
		{name: "karaoke english", title: "Karaoke Night", want: models.CategoryKaraoke},
		{name: "karaoke russian", title: "Вечер КАРАОКЕ", want: models.CategoryKaraoke},
		{name: "standup beats karaoke", title: "Standup & Karaoke", want: models.CategoryStandup},
		{name: "comedy russian", title: "Комедия вечер", want: models.CategoryStandup},
		{name: "quiz", title: "Pub Trivia", want: models.CategoryQuiz},
		{name: "quiz russian", title: "Квиз по кино", want: models.CategoryQuiz},
		{name: "karaoke beats quiz", title: "Karaoke Quiz", want: models.CategoryKaraoke},
		{name: "live music", title: "Jazz Band Tonight", want: models.CategoryLive},
		{name: "concert russian", title: "Концерт", want: models.CategoryLive},
		{name: "karaoke only in description", title: "Rock Band Live", description: "Live set, then karaoke until 3am", want: models.CategoryLive},
		{name: "karaoke description without name hit", title: "Friday", description: "Караоке до утра", want: models.CategoryParty},
		{name: "open mic in description", title: "Thursday", description: "Bring your guitar, Open Mic all night", want: models.CategoryMOM},
		{name: "mom in name", title: "MOM session", want: models.CategoryMOM},
		{name: "nothing matches", title: "Friday Night", description: "Dance until dawn", want: models.CategoryParty},
		{name: "empty input", want: models.CategoryParty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := InferCategory(tt.title, tt.description, DefaultCategoryRules)
			if got != tt.want {
				t.Errorf("InferCategory(%q, %q) = %s, want %s", tt.title, tt.description, got, tt.want)
			}
			if again := InferCategory(tt.title, tt.description, DefaultCategoryRules); again != got {
				t.Errorf("InferCategory not deterministic: %s then %s", got, again)
			}
			if _, ok := models.ParseEventCategory(string(got)); !ok {
				t.Errorf("InferCategory returned %q outside the enum", got)
			}
		})
	}
}

func TestInferCategoryCustomRules(t *testing.T) {
	t.Parallel()

	rules := []CategoryRule{
		{Category: models.CategoryKaraoke, NameKeywords: []string{"קריוקי"}},
	}
	if got := InferCategory("ערב קריוקי", "", rules); got != models.CategoryKaraoke {
		t.Errorf("got %s, want karaoke", got)
	}
	if got := InferCategory("Karaoke", "", rules); got != models.CategoryParty {
		t.Errorf("got %s, want party for a table without english keywords", got)
	}
}

func TestExtractPrice(t *testing.T) {
	t.Parallel()

	tests := []struct {
		description string
		want        int
	}{
		{"Entry 50₪ at the door", 50},
		{"Tickets: 80 ILS", 80},
		{"only 40 il for members", 40},
		{"120 Shekels including a drink", 120},
		{"Вход 60 шк", 60},
		{"Free entry", 0},
		{"Doors at 21:00, 2 floors", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := ExtractPrice(tt.description); got != tt.want {
			t.Errorf("ExtractPrice(%q) = %d, want %d", tt.description, got, tt.want)
		}
	}
}

func TestEvent(t *testing.T) {
	t.Parallel()

	attending := 42
	lat, lng := 32.05, 34.76
	ev := models.GraphEvent{
		ID:             "123",
		Name:           "Karaoke Night",
		Description:    "Sing along! Entry 50₪",
		StartTime:      "2025-03-01T21:00:00+0200",
		EndTime:        "2025-03-02T02:00:00+0200",
		TicketURI:      "https://tickets.example/123",
		AttendingCount: &attending,
		Place: &models.GraphPlace{
			Name:     "Desire Club",
			Location: &models.GraphLocation{City: "Tel Aviv", Country: "Israel", Latitude: &lat, Longitude: &lng},
		},
	}

	got, err := Event(&ev)
	if err != nil {
		t.Fatalf("Event: %v", err)
	}
	if got.Title != "Karaoke Night" || got.Category != models.CategoryKaraoke || got.Price != 50 {
		t.Errorf("unexpected event %+v", got)
	}
	if got.CoverImage != FallbackCovers[models.CategoryKaraoke] {
		t.Errorf("cover = %q, want karaoke fallback", got.CoverImage)
	}
	if got.FacebookURL != "https://www.facebook.com/events/123" {
		t.Errorf("facebookUrl = %q", got.FacebookURL)
	}
	wantStart := time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)
	if !got.StartDate.Equal(wantStart) {
		t.Errorf("start = %v, want %v", got.StartDate, wantStart)
	}
	if got.EndDate == nil {
		t.Fatal("end date missing")
	}
	if got.AttendingCount == nil || *got.AttendingCount != 42 {
		t.Errorf("attending = %v", got.AttendingCount)
	}
	if got.InterestedCount != nil {
		t.Errorf("interested should stay absent, got %v", *got.InterestedCount)
	}
	if got.LocationDetails == nil || got.LocationDetails.City != "Tel Aviv" || got.Location != "Desire Club" {
		t.Errorf("location = %q %+v", got.Location, got.LocationDetails)
	}
}

func TestEventProviderCategory(t *testing.T) {
	t.Parallel()

	tests := []struct {
		category string
		want     models.EventCategory
	}{
		{category: "quiz", want: models.CategoryQuiz},
		{category: "LIVE", want: models.CategoryLive},
		{category: "MUSIC_EVENT", want: models.CategoryKaraoke},
	}
	for _, tt := range tests {
		ev := models.GraphEvent{ID: "1", Name: "Karaoke", StartTime: "2025-01-01T20:00:00+0000", Category: tt.category}
		if got := CategoryOf(&ev); got != tt.want {
			t.Errorf("category %q: got %s, want %s", tt.category, got, tt.want)
		}
	}
}

func TestEventCoverPreferred(t *testing.T) {
	t.Parallel()

	ev := models.GraphEvent{
		ID:        "1",
		Name:      "Party",
		StartTime: "2025-01-01T20:00:00Z",
		Cover:     &models.GraphCover{Source: "https://cdn.example/cover.jpg"},
	}
	got, err := Event(&ev)
	if err != nil {
		t.Fatalf("Event: %v", err)
	}
	if got.CoverImage != "https://cdn.example/cover.jpg" {
		t.Errorf("cover = %q", got.CoverImage)
	}
}

func TestEventErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ev   models.GraphEvent
	}{
		{name: "missing id", ev: models.GraphEvent{StartTime: "2025-01-01T20:00:00+0000"}},
		{name: "missing start", ev: models.GraphEvent{ID: "1"}},
		{name: "bad start", ev: models.GraphEvent{ID: "1", StartTime: "yesterday"}},
		{name: "bad end", ev: models.GraphEvent{ID: "1", StartTime: "2025-01-01T20:00:00+0000", EndTime: "later"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := Event(&tt.ev)
			if models.AsAppError(err).Kind != models.ErrorKindTransform {
				t.Errorf("err = %v, want TransformError", err)
			}
		})
	}
}

func TestEventsFailsOnBadRecord(t *testing.T) {
	t.Parallel()

	_, err := Events([]models.GraphEvent{
		{ID: "1", StartTime: "2025-01-01T20:00:00+0000"},
		{StartTime: "2025-01-01T20:00:00+0000"},
	})
	if err == nil {
		t.Fatal("expected an error")
	}

	out, err := Events(nil)
	if err != nil || out == nil || len(out) != 0 {
		t.Errorf("Events(nil) = %v, %v; want empty non-nil slice", out, err)
	}
}

func TestSortAndFilterEvents(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	end := now.Add(2 * time.Hour)
	events := []models.NormalizedEvent{
		{ID: "later", StartDate: now.Add(48 * time.Hour)},
		{ID: "past", StartDate: now.Add(-48 * time.Hour)},
		{ID: "ongoing", StartDate: now.Add(-time.Hour), EndDate: &end},
		{ID: "canceled", StartDate: now.Add(24 * time.Hour), IsCanceled: true},
	}

	sorted := SortEventsByStart(events)
	wantOrder := []string{"past", "ongoing", "canceled", "later"}
	for i, id := range wantOrder {
		if sorted[i].ID != id {
			t.Fatalf("sorted[%d] = %s, want %s", i, sorted[i].ID, id)
		}
	}
	if events[0].ID != "later" {
		t.Error("SortEventsByStart modified its input")
	}

	upcoming := FilterUpcoming(events, now)
	if len(upcoming) != 2 || upcoming[0].ID != "later" || upcoming[1].ID != "ongoing" {
		t.Errorf("upcoming = %+v", upcoming)
	}

	past := FilterPast(events, now)
	if len(past) != 1 || past[0].ID != "past" {
		t.Errorf("past = %+v", past)
	}
}

func TestParseGraphTime(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"2025-03-01T21:00:00+0200", "2025-03-01T19:00:00Z", "2025-03-01T21:00:00+02:00"} {
		got, err := ParseGraphTime(s)
		if err != nil {
			t.Errorf("ParseGraphTime(%q): %v", s, err)
			continue
		}
		if !got.Equal(time.Date(2025, 3, 1, 19, 0, 0, 0, time.UTC)) {
			t.Errorf("ParseGraphTime(%q) = %v", s, got)
		}
	}
	if _, err := ParseGraphTime("2025-03-01"); err == nil {
		t.Error("expected error for a date without time")
	}
}
