// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

const (
	cacheNoStore = "no-store"
	cacheNoCache = "no-cache"
)

// CachePolicy is the shared-cache freshness window of a successful response.
type CachePolicy struct {
	SMaxAge              time.Duration
	StaleWhileRevalidate time.Duration
}

// Per-endpoint policies.
var (
	EventsCache  = CachePolicy{SMaxAge: 5 * time.Minute, StaleWhileRevalidate: 10 * time.Minute}
	PhotosCache  = CachePolicy{SMaxAge: 10 * time.Minute, StaleWhileRevalidate: 20 * time.Minute}
	AlbumsCache  = CachePolicy{SMaxAge: 5 * time.Minute, StaleWhileRevalidate: time.Hour}
	BatchCache   = EventsCache
	ReviewsCache = CachePolicy{SMaxAge: 30 * time.Minute, StaleWhileRevalidate: time.Hour}
)

// CachePolicyFor returns the policy for a listing of kind.
func CachePolicyFor(kind models.ResourceKind) CachePolicy {
	switch kind {
	case models.KindPhotos:
		return PhotosCache
	case models.KindAlbums:
		return AlbumsCache
	default:
		return EventsCache
	}
}

// Header renders the Cache-Control value.
func (p CachePolicy) Header() string {
	return fmt.Sprintf("public, s-maxage=%d, stale-while-revalidate=%d",
		int(p.SMaxAge.Seconds()), int(p.StaleWhileRevalidate.Seconds()))
}

// CachedUntil is the instant a response produced at now stops being fresh.
func (p CachePolicy) CachedUntil(now time.Time) time.Time {
	return now.Add(p.SMaxAge).UTC()
}

func (p CachePolicy) apply(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", p.Header())
	w.Header().Set(HeaderCacheDuration, strconv.Itoa(int(p.SMaxAge.Seconds())))
}
