// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package graph

import (
	"strings"

	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

// Field lists are fixed per resource kind and never caller-controlled.
var (
	eventFields = []string{
		"id", "name", "description", "category",
		"start_time", "end_time", "updated_time", "timezone", "event_times",
		"is_canceled", "is_online", "is_page_owned", "ticket_uri",
		"attending_count", "declined_count", "interested_count", "maybe_count", "noreply_count",
		"cover{id,source,offset_x,offset_y}",
		"place{id,name,location{city,country,latitude,longitude,street,zip,state}}",
		"owner{id,name,category}",
	}

	photoFields = []string{
		"id", "created_time", "updated_time", "backdated_time",
		"name", "alt_text", "height", "width", "link",
		"place{id,name,location{city,country,latitude,longitude,street}}",
		"images",
		"album{id,name,type,description,created_time,updated_time,count,cover_photo{id,source}}",
		"from{id,name,category}",
		"likes.summary(true)", "comments.summary(true)", "reactions.summary(true)", "tags.summary(true)",
	}

	albumFields = []string{
		"id", "name", "description", "type", "privacy", "count",
		"created_time", "updated_time",
		"cover_photo{id,name,picture,source,images,created_time}",
		"from{id,name}",
		"place{name,location{city,country,latitude,longitude}}",
		"can_upload", "link",
	}
)

// FieldsFor returns the comma-joined field expansion for kind, or "" for an
// unknown kind.
func FieldsFor(kind models.ResourceKind) string {
	switch kind {
	case models.KindEvents:
		return strings.Join(eventFields, ",")
	case models.KindPhotos:
		return strings.Join(photoFields, ",")
	case models.KindAlbums:
		return strings.Join(albumFields, ",")
	default:
		return ""
	}
}
