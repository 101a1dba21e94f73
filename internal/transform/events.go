// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package transform

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

// CategoryRule maps lowercase keywords to a category. NameKeywords are
// matched against the event name, DescriptionKeywords against the
// description.
type CategoryRule struct {
	Category            models.EventCategory
	NameKeywords        []string
	DescriptionKeywords []string
}

// DefaultCategoryRules is checked top to bottom; the first hit wins.
var DefaultCategoryRules = []CategoryRule{
	{
		Category:     models.CategoryStandup,
		NameKeywords: []string{"standup", "stand up", "comedy", "стендап", "комедия"},
	},
	{
		Category:     models.CategoryKaraoke,
		NameKeywords: []string{"karaoke", "караоке"},
	},
	{
		Category:     models.CategoryQuiz,
		NameKeywords: []string{"quiz", "trivia", "квиз", "викторина"},
	},
	{
		Category:     models.CategoryLive,
		NameKeywords: []string{"live", "concert", "band", "лайв", "концерт", "группа"},
	},
	{
		Category:            models.CategoryMOM,
		NameKeywords:        []string{"open mic", "mom", "мом", "открытый микрофон"},
		DescriptionKeywords: []string{"open mic", "открытый микрофон"},
	},
}

// DefaultCategory is returned when no rule matches.
const DefaultCategory = models.CategoryParty

// FallbackCovers holds the site asset shown when an event has no cover.
var FallbackCovers = map[models.EventCategory]string{
	models.CategoryLive:    "/assets/ui/backgrounds/about/live-concerts/514728464_1300841482046548_6550638706408135999_n.jpg",
	models.CategoryStandup: "/assets/ui/backgrounds/about/standup/500331705_1271017951695568_3759745623717392760_n.jpg",
	models.CategoryParty:   "/assets/ui/backgrounds/about/disco/492231185_1243597314437632_4946434647322291015_n.jpg",
	models.CategoryKaraoke: "/assets/ui/backgrounds/events/karaoke/514487653_1301575825306447_3668275234757971734_n.jpg",
	models.CategoryQuiz:    "/assets/ui/backgrounds/events/kviz/514017682_1039077668330128_1972127480873474881_n.jpg",
	models.CategoryMOM:     "/assets/ui/backgrounds/about/mom/492522651_1242690481194982_8592720461180068310_n.jpg",
}

var priceRe = regexp.MustCompile(`(?i)(\d+)\s*(?:шк|₪|ils?|shekels?)`)

// InferCategory returns the category of the first rule with a keyword found
// in name or description (case-insensitive), or DefaultCategory.
func InferCategory(name, description string, rules []CategoryRule) models.EventCategory {
	name = strings.ToLower(name)
	description = strings.ToLower(description)

	for _, rule := range rules {
		if containsAny(name, rule.NameKeywords) || containsAny(description, rule.DescriptionKeywords) {
			return rule.Category
		}
	}
	return DefaultCategory
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// CategoryOf prefers the provider's category when it names a local one.
func CategoryOf(ev *models.GraphEvent) models.EventCategory {
	if c, ok := models.ParseEventCategory(strings.ToLower(strings.TrimSpace(ev.Category))); ok {
		return c
	}
	return InferCategory(ev.Name, ev.Description, DefaultCategoryRules)
}

// ExtractPrice returns the first amount followed by a shekel marker, or 0.
func ExtractPrice(description string) int {
	m := priceRe.FindStringSubmatch(description)
	if m == nil {
		return 0
	}
	price, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return price
}

// FallbackCover returns the placeholder asset for category.
func FallbackCover(category models.EventCategory) string {
	if src, ok := FallbackCovers[category]; ok {
		return src
	}
	return FallbackCovers[DefaultCategory]
}

// EventURL returns the public Facebook page of an event.
func EventURL(id string) string {
	return "https://www.facebook.com/events/" + id
}

// Event normalizes one Graph event.
func Event(ev *models.GraphEvent) (models.NormalizedEvent, error) {
	if ev.ID == "" {
		return models.NormalizedEvent{}, models.NewTransformError("event is missing an id", nil)
	}
	start, err := ParseGraphTime(ev.StartTime)
	if err != nil {
		return models.NormalizedEvent{}, models.NewTransformError(fmt.Sprintf("event %s has an invalid start_time", ev.ID), err)
	}
	end, err := parseOptionalTime(ev.EndTime)
	if err != nil {
		return models.NormalizedEvent{}, models.NewTransformError(fmt.Sprintf("event %s has an invalid end_time", ev.ID), err)
	}

	category := CategoryOf(ev)
	cover := FallbackCover(category)
	if ev.Cover != nil && ev.Cover.Source != "" {
		cover = ev.Cover.Source
	}

	return models.NormalizedEvent{
		ID:              ev.ID,
		Title:           ev.Name,
		StartDate:       start,
		EndDate:         end,
		Description:     ev.Description,
		Category:        category,
		Price:           ExtractPrice(ev.Description),
		CoverImage:      cover,
		TicketURL:       ev.TicketURI,
		FacebookURL:     EventURL(ev.ID),
		AttendingCount:  ev.AttendingCount,
		InterestedCount: ev.InterestedCount,
		IsCanceled:      ev.IsCanceled,
		IsOnline:        ev.IsOnline,
		Timezone:        ev.Timezone,
		Location:        placeName(ev.Place),
		LocationDetails: locationDetails(ev.Place),
	}, nil
}

// Events normalizes a page of events, failing on the first bad record.
func Events(events []models.GraphEvent) ([]models.NormalizedEvent, error) {
	out := make([]models.NormalizedEvent, 0, len(events))
	for i := range events {
		ev, err := Event(&events[i])
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, nil
}

// SortEventsByStart orders events earliest first. The input is not modified.
func SortEventsByStart(events []models.NormalizedEvent) []models.NormalizedEvent {
	out := append([]models.NormalizedEvent(nil), events...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StartDate.Before(out[j].StartDate)
	})
	return out
}

// FilterUpcoming keeps events that are not canceled and have not ended by
// now. An event without an end time ends when it starts.
func FilterUpcoming(events []models.NormalizedEvent, now time.Time) []models.NormalizedEvent {
	out := make([]models.NormalizedEvent, 0, len(events))
	for _, ev := range events {
		if ev.IsCanceled {
			continue
		}
		if eventEnd(ev).After(now) {
			out = append(out, ev)
		}
	}
	return out
}

// FilterPast keeps events that ended at or before now.
func FilterPast(events []models.NormalizedEvent, now time.Time) []models.NormalizedEvent {
	out := make([]models.NormalizedEvent, 0, len(events))
	for _, ev := range events {
		if !eventEnd(ev).After(now) {
			out = append(out, ev)
		}
	}
	return out
}

func eventEnd(ev models.NormalizedEvent) time.Time {
	if ev.EndDate != nil {
		return *ev.EndDate
	}
	return ev.StartDate
}
