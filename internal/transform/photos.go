// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package transform

import (
	"fmt"
	"sort"

	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

// PhotoURL returns the public Facebook page of a photo.
func PhotoURL(id string) string {
	return "https://www.facebook.com/photo/?fbid=" + id
}

// Photo normalizes one Graph photo. Missing engagement edges count as 0.
func Photo(p *models.GraphPhoto) (models.NormalizedPhoto, error) {
	if p.ID == "" {
		return models.NormalizedPhoto{}, models.NewTransformError("photo is missing an id", nil)
	}
	created, err := ParseGraphTime(p.CreatedTime)
	if err != nil {
		return models.NormalizedPhoto{}, models.NewTransformError(fmt.Sprintf("photo %s has an invalid created_time", p.ID), err)
	}
	updated, err := parseOptionalTime(p.UpdatedTime)
	if err != nil {
		return models.NormalizedPhoto{}, models.NewTransformError(fmt.Sprintf("photo %s has an invalid updated_time", p.ID), err)
	}

	out := models.NormalizedPhoto{
		ID:              p.ID,
		CreatedAt:       created,
		UpdatedAt:       updated,
		Caption:         p.Name,
		AltText:         p.AltText,
		Images:          toVariants(p.Images),
		Thumbnail:       sourceOf(ThumbnailImage(p.Images)),
		FullImage:       sourceOf(BestQualityImage(p.Images)),
		Location:        placeName(p.Place),
		LocationDetails: locationDetails(p.Place),
		Engagement: models.Engagement{
			Likes:     p.Likes.Total(),
			Comments:  p.Comments.Total(),
			Reactions: p.Reactions.Total(),
			Tags:      p.Tags.Total(),
		},
		FacebookURL: PhotoURL(p.ID),
	}
	if p.Width > 0 && p.Height > 0 {
		out.Dimensions = &models.Dimensions{Width: p.Width, Height: p.Height}
	}
	if p.Album != nil {
		out.AlbumID = p.Album.ID
		out.AlbumName = p.Album.Name
	}
	return out, nil
}

// Photos normalizes a page of photos, failing on the first bad record.
func Photos(photos []models.GraphPhoto) ([]models.NormalizedPhoto, error) {
	out := make([]models.NormalizedPhoto, 0, len(photos))
	for i := range photos {
		p, err := Photo(&photos[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// SortPhotosByNewest orders photos newest first. The input is not modified.
func SortPhotosByNewest(photos []models.NormalizedPhoto) []models.NormalizedPhoto {
	out := append([]models.NormalizedPhoto(nil), photos...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// GroupPhotosByAlbum buckets photos by album id; photos without an album go
// under "no-album".
func GroupPhotosByAlbum(photos []models.NormalizedPhoto) map[string][]models.NormalizedPhoto {
	groups := make(map[string][]models.NormalizedPhoto)
	for _, p := range photos {
		key := p.AlbumID
		if key == "" {
			key = "no-album"
		}
		groups[key] = append(groups[key], p)
	}
	return groups
}
