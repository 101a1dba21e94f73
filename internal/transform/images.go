// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package transform

import "github.com/YuraDukhnoAman/desire-club/internal/models"

// mediumTargetPixels is roughly one 720p frame.
const mediumTargetPixels = 518400

// AlbumCoverMinWidth is the narrowest variant accepted as an album cover.
const AlbumCoverMinWidth = 600

func pixels(img models.GraphImage) int {
	return img.Width * img.Height
}

// BestQualityImage returns the variant with the most pixels, or nil.
// Ties keep the earlier variant.
func BestQualityImage(images []models.GraphImage) *models.GraphImage {
	var best *models.GraphImage
	for i := range images {
		if best == nil || pixels(images[i]) > pixels(*best) {
			best = &images[i]
		}
	}
	return best
}

// ThumbnailImage returns the variant with the fewest pixels, or nil.
func ThumbnailImage(images []models.GraphImage) *models.GraphImage {
	var smallest *models.GraphImage
	for i := range images {
		if smallest == nil || pixels(images[i]) < pixels(*smallest) {
			smallest = &images[i]
		}
	}
	return smallest
}

// MediumImage returns the variant closest in pixel count to a 720p frame,
// or nil.
func MediumImage(images []models.GraphImage) *models.GraphImage {
	var closest *models.GraphImage
	bestDiff := 0
	for i := range images {
		diff := pixels(images[i]) - mediumTargetPixels
		if diff < 0 {
			diff = -diff
		}
		if closest == nil || diff < bestDiff {
			closest, bestDiff = &images[i], diff
		}
	}
	return closest
}

// SmallestAtLeast returns the narrowest variant whose width is at least
// minWidth, or nil when none qualifies.
func SmallestAtLeast(images []models.GraphImage, minWidth int) *models.GraphImage {
	var pick *models.GraphImage
	for i := range images {
		if images[i].Width < minWidth {
			continue
		}
		if pick == nil || images[i].Width < pick.Width {
			pick = &images[i]
		}
	}
	return pick
}

func toVariants(images []models.GraphImage) []models.ImageVariant {
	out := make([]models.ImageVariant, 0, len(images))
	for _, img := range images {
		out = append(out, models.ImageVariant{URL: img.Source, Width: img.Width, Height: img.Height})
	}
	return out
}

func sourceOf(img *models.GraphImage) string {
	if img == nil {
		return ""
	}
	return img.Source
}
