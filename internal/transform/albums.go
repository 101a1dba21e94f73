// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package transform

import (
	"fmt"

	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

// DefaultAlbumType applies when the provider omits the album type.
const DefaultAlbumType = "normal"

// AlbumCover picks the smallest variant at least AlbumCoverMinWidth wide,
// then the cover's source, then its picture.
func AlbumCover(cover *models.GraphCoverPhoto) string {
	if cover == nil {
		return ""
	}
	if img := SmallestAtLeast(cover.Images, AlbumCoverMinWidth); img != nil {
		return img.Source
	}
	if cover.Source != "" {
		return cover.Source
	}
	return cover.Picture
}

// AlbumURL returns the album link, or the generic album page for id.
func AlbumURL(link, id string) string {
	if link != "" {
		return link
	}
	return "https://www.facebook.com/album.php?fbid=" + id
}

// Album normalizes one Graph album.
func Album(a *models.GraphAlbum) (models.NormalizedAlbum, error) {
	if a.ID == "" {
		return models.NormalizedAlbum{}, models.NewTransformError("album is missing an id", nil)
	}
	created, err := parseOptionalTime(a.CreatedTime)
	if err != nil {
		return models.NormalizedAlbum{}, models.NewTransformError(fmt.Sprintf("album %s has an invalid created_time", a.ID), err)
	}
	updated, err := parseOptionalTime(a.UpdatedTime)
	if err != nil {
		return models.NormalizedAlbum{}, models.NewTransformError(fmt.Sprintf("album %s has an invalid updated_time", a.ID), err)
	}

	out := models.NormalizedAlbum{
		ID:              a.ID,
		Name:            a.Name,
		Description:     a.Description,
		CreatedAt:       created,
		UpdatedAt:       updated,
		CoverImage:      AlbumCover(a.CoverPhoto),
		CoverImageSizes: []models.ImageVariant{},
		Type:            a.Type,
		Privacy:         a.Privacy,
		CanUpload:       a.CanUpload,
		FacebookURL:     AlbumURL(a.Link, a.ID),
	}
	if a.Count != nil {
		out.PhotoCount = *a.Count
	}
	if out.Type == "" {
		out.Type = DefaultAlbumType
	}
	if a.CoverPhoto != nil {
		out.CoverImageSizes = toVariants(a.CoverPhoto.Images)
	}
	if a.From != nil {
		out.OwnerName = a.From.Name
		out.OwnerID = a.From.ID
	}
	if a.Place != nil {
		out.Place = &models.AlbumPlace{Name: a.Place.Name, Location: locationDetails(a.Place)}
	}
	return out, nil
}

// Albums normalizes a page of albums, failing on the first bad record.
func Albums(albums []models.GraphAlbum) ([]models.NormalizedAlbum, error) {
	out := make([]models.NormalizedAlbum, 0, len(albums))
	for i := range albums {
		a, err := Album(&albums[i])
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}
