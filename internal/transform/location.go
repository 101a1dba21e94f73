// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package transform

import (
	"strings"

	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

// FormatLocation renders a place as "name, street, city, state, country",
// skipping empty parts.
func FormatLocation(place *models.GraphPlace) string {
	if place == nil {
		return ""
	}
	if place.Location == nil {
		return place.Name
	}

	parts := make([]string, 0, 5)
	for _, p := range []string{place.Name, place.Location.Street, place.Location.City, place.Location.State, place.Location.Country} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// locationDetails returns nil unless the place carries a location block.
func locationDetails(place *models.GraphPlace) *models.LocationDetails {
	if place == nil || place.Location == nil {
		return nil
	}
	loc := place.Location
	return &models.LocationDetails{
		Name:    place.Name,
		Address: loc.Street,
		City:    loc.City,
		Country: loc.Country,
		Coordinates: &models.Coordinates{
			Latitude:  loc.Latitude,
			Longitude: loc.Longitude,
		},
	}
}

func placeName(place *models.GraphPlace) string {
	if place == nil {
		return ""
	}
	return place.Name
}
