// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package api

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/YuraDukhnoAman/desire-club/internal/models"
	"github.com/YuraDukhnoAman/desire-club/internal/reviews"
	"github.com/YuraDukhnoAman/desire-club/internal/validation"
)

// DefaultBatchLimit is the per-edge page size of the batch endpoint.
const DefaultBatchLimit = 10

// ListQuery is the query of the events, photos and albums endpoints. Type is
// read on the photos endpoint only and Upcoming on the events endpoint only.
type ListQuery struct {
	Limit    int    `query:"limit" validate:"min=1,max=100"`
	After    string `query:"after" validate:"omitempty,excluded_with=Before"`
	Before   string `query:"before"`
	Type     string `query:"type" validate:"omitempty,oneof=uploaded tagged"`
	Upcoming bool   `query:"upcoming"`
}

// ResourceRequest converts q into a Graph request for kind.
func (q ListQuery) ResourceRequest(kind models.ResourceKind) models.ResourceRequest {
	return models.ResourceRequest{
		Kind:      kind,
		After:     q.After,
		Before:    q.Before,
		Limit:     q.Limit,
		PhotoType: q.Type,
	}
}

// BatchQuery is the query of the batch endpoint.
type BatchQuery struct {
	EventsLimit int    `query:"events_limit" validate:"min=1,max=100"`
	PhotosLimit int    `query:"photos_limit" validate:"min=1,max=100"`
	EventsAfter string `query:"events_after"`
	PhotosAfter string `query:"photos_after"`
}

// ReviewsQuery is the query of the reviews endpoint.
type ReviewsQuery struct {
	PageToken  string `query:"pageToken"`
	MaxResults int    `query:"maxResults" validate:"min=1,max=50"`
}

// queryParser accumulates conversion failures so a caller sees every bad
// parameter at once.
type queryParser struct {
	values url.Values
	errs   []validation.ValidationError
}

func newQueryParser(values url.Values) *queryParser {
	return &queryParser{values: values}
}

func (p *queryParser) str(name string) string {
	return strings.TrimSpace(p.values.Get(name))
}

// cursor returns a provider cursor exactly as sent.
func (p *queryParser) cursor(name string) string {
	return p.values.Get(name)
}

func (p *queryParser) int(name string, def int) int {
	raw := p.str(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		p.errs = append(p.errs, validation.ValidationError{
			Field:   name,
			Tag:     "integer",
			Message: fmt.Sprintf("%s must be an integer", name),
		})
		return def
	}
	return n
}

func (p *queryParser) bool(name string) bool {
	raw := p.str(name)
	if raw == "" {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		p.errs = append(p.errs, validation.ValidationError{
			Field:   name,
			Tag:     "boolean",
			Message: fmt.Sprintf("%s must be true or false", name),
		})
	}
	return b
}

// validate runs struct validation on v unless conversion already failed.
func (p *queryParser) validate(v any) error {
	if len(p.errs) > 0 {
		messages := make([]string, len(p.errs))
		for i, e := range p.errs {
			messages[i] = e.Message
		}
		return models.NewBadRequestError(strings.Join(messages, "; "), map[string]any{"fields": p.errs})
	}
	if verr := validation.ValidateStruct(v); verr != nil {
		return verr.ToAppError()
	}
	return nil
}

func parseListQuery(values url.Values, kind models.ResourceKind) (ListQuery, error) {
	p := newQueryParser(values)
	q := ListQuery{
		Limit:  p.int("limit", models.DefaultLimit),
		After:  p.cursor("after"),
		Before: p.cursor("before"),
	}
	switch kind {
	case models.KindPhotos:
		q.Type = p.str("type")
	case models.KindEvents:
		q.Upcoming = p.bool("upcoming")
	}
	return q, p.validate(&q)
}

func parseBatchQuery(values url.Values) (BatchQuery, error) {
	p := newQueryParser(values)
	q := BatchQuery{
		EventsLimit: p.int("events_limit", DefaultBatchLimit),
		PhotosLimit: p.int("photos_limit", DefaultBatchLimit),
		EventsAfter: p.cursor("events_after"),
		PhotosAfter: p.cursor("photos_after"),
	}
	return q, p.validate(&q)
}

func parseReviewsQuery(values url.Values) (ReviewsQuery, error) {
	p := newQueryParser(values)
	q := ReviewsQuery{
		PageToken:  p.cursor("pageToken"),
		MaxResults: p.int("maxResults", reviews.DefaultMaxResults),
	}
	return q, p.validate(&q)
}
