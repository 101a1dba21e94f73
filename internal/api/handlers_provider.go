// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package api

import (
	"net/http"
	"time"

	"github.com/YuraDukhnoAman/desire-club/internal/graph"
	"github.com/YuraDukhnoAman/desire-club/internal/logging"
	"github.com/YuraDukhnoAman/desire-club/internal/metrics"
	"github.com/YuraDukhnoAman/desire-club/internal/models"
	"github.com/YuraDukhnoAman/desire-club/internal/transform"
)

// Events handles GET /api/provider/events.
//
// Query parameters: limit (1-100, default 25), after, before (mutually
// exclusive cursors) and upcoming=true to drop canceled and finished events
// and order the rest by start time.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r.URL.Query(), models.KindEvents)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	creds, err := h.graphCredentials(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp, err := h.graph.Events(r.Context(), creds.PageID, creds.AccessToken, q.ResourceRequest(models.KindEvents))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	events, err := transform.Events(resp.Data)
	if err != nil {
		metrics.TransformFailuresTotal.WithLabelValues(string(models.KindEvents)).Inc()
		h.writeError(w, r, err)
		return
	}
	if q.Upcoming {
		events = transform.SortEventsByStart(transform.FilterUpcoming(events, h.now()))
	}

	policy := CachePolicyFor(models.KindEvents)
	h.writeListing(w, policy, models.ListResponse[models.NormalizedEvent]{
		Data:     events,
		Paging:   redactPaging(resp.Paging),
		Metadata: h.metadata(len(events), resp.Paging, policy, ""),
	})
}

// Photos handles GET /api/provider/photos. The type parameter selects the
// uploaded (default) or tagged photos edge.
func (h *Handler) Photos(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r.URL.Query(), models.KindPhotos)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	creds, err := h.graphCredentials(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if q.Type == "" {
		q.Type = models.DefaultPhotoType
	}

	resp, err := h.graph.Photos(r.Context(), creds.PageID, creds.AccessToken, q.ResourceRequest(models.KindPhotos))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	photos, err := transform.Photos(resp.Data)
	if err != nil {
		metrics.TransformFailuresTotal.WithLabelValues(string(models.KindPhotos)).Inc()
		h.writeError(w, r, err)
		return
	}

	policy := CachePolicyFor(models.KindPhotos)
	h.writeListing(w, policy, models.ListResponse[models.NormalizedPhoto]{
		Data:     photos,
		Paging:   redactPaging(resp.Paging),
		Metadata: h.metadata(len(photos), resp.Paging, policy, q.Type),
	})
}

// Albums handles GET /api/provider/albums.
func (h *Handler) Albums(w http.ResponseWriter, r *http.Request) {
	q, err := parseListQuery(r.URL.Query(), models.KindAlbums)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	creds, err := h.graphCredentials(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	resp, err := h.graph.Albums(r.Context(), creds.PageID, creds.AccessToken, q.ResourceRequest(models.KindAlbums))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	albums, err := transform.Albums(resp.Data)
	if err != nil {
		metrics.TransformFailuresTotal.WithLabelValues(string(models.KindAlbums)).Inc()
		h.writeError(w, r, err)
		return
	}

	policy := CachePolicyFor(models.KindAlbums)
	h.writeListing(w, policy, models.ListResponse[models.NormalizedAlbum]{
		Data:     albums,
		Paging:   redactPaging(resp.Paging),
		Metadata: h.metadata(len(albums), resp.Paging, policy, ""),
	})
}

// Batch handles GET /api/provider/batch: events and photos in a single Graph
// round trip. A failed sub-request only fails its own slot; the response is
// still 200 and batch_info counts the outcome.
func (h *Handler) Batch(w http.ResponseWriter, r *http.Request) {
	q, err := parseBatchQuery(r.URL.Query())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	creds, err := h.graphCredentials(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	eventsReq := models.ResourceRequest{Kind: models.KindEvents, Limit: q.EventsLimit, After: q.EventsAfter}
	photosReq := models.ResourceRequest{Kind: models.KindPhotos, Limit: q.PhotosLimit, After: q.PhotosAfter, PhotoType: models.DefaultPhotoType}
	items := []models.BatchItem{
		graph.NewBatchItem(creds.PageID, eventsReq),
		graph.NewBatchItem(creds.PageID, photosReq),
	}

	results, err := h.graph.Batch(r.Context(), creds.AccessToken, items)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	bodies := graph.ParseBatchResults(results)
	now := h.now()
	policy := BatchCache

	out := models.BatchResponse{
		Events: batchSlot(h, r, now, policy, results[0], bodies[0], models.KindEvents, "", transform.Events),
		Photos: batchSlot(h, r, now, policy, results[1], bodies[1], models.KindPhotos, models.DefaultPhotoType, transform.Photos),
	}

	info := models.BatchInfo{RequestsMade: len(items), Timestamp: now}
	if out.Events.Error == nil {
		info.SuccessfulRequests++
	}
	if out.Photos.Error == nil {
		info.SuccessfulRequests++
	}
	info.FailedRequests = info.RequestsMade - info.SuccessfulRequests
	out.BatchInfo = info

	if info.FailedRequests > 0 {
		logging.Ctx(r.Context()).Warn().
			Int("failed_requests", info.FailedRequests).
			Int("requests_made", info.RequestsMade).
			Msg("Batch completed with failed slots")
	}

	w.Header().Set(HeaderBatchRequest, "true")
	h.writeListing(w, policy, out)
}

// batchSlot decodes and normalizes one batch slot. Any failure is captured
// in the slot's error field instead of failing the whole response.
func batchSlot[G, N any](
	h *Handler,
	r *http.Request,
	now time.Time,
	policy CachePolicy,
	result *models.BatchResult,
	body []byte,
	kind models.ResourceKind,
	photoType string,
	normalize func([]G) ([]N, error),
) models.BatchSlot[N] {
	slot := models.BatchSlot[N]{
		Data:     []N{},
		Metadata: h.metadataAt(now, 0, nil, policy, photoType),
	}

	fail := func(appErr *models.AppError) models.BatchSlot[N] {
		metrics.RecordBatchSlot(string(kind), false)
		logging.Ctx(r.Context()).Warn().
			Str("resource", string(kind)).
			Str("kind", string(appErr.Kind)).
			Int("status", appErr.Status).
			Msg("Batch slot failed")
		slot.Error = h.slotError(r, appErr)
		return slot
	}

	if body == nil {
		return fail(graph.SlotError(result))
	}
	listing, err := graph.DecodeSlot[G](body)
	if err != nil {
		return fail(models.AsAppError(err))
	}
	data, err := normalize(listing.Data)
	if err != nil {
		metrics.TransformFailuresTotal.WithLabelValues(string(kind)).Inc()
		return fail(models.AsAppError(err))
	}

	metrics.RecordBatchSlot(string(kind), true)
	slot.Data = data
	slot.Paging = redactPaging(listing.Paging)
	slot.Metadata = h.metadataAt(now, len(data), listing.Paging, policy, photoType)
	return slot
}

// writeListing writes a successful provider response with its cache headers.
func (h *Handler) writeListing(w http.ResponseWriter, policy CachePolicy, v any) {
	policy.apply(w)
	w.Header().Set(HeaderGraphVersion, h.graph.APIVersion())
	writeJSON(w, http.StatusOK, v)
}

func (h *Handler) metadata(count int, paging *models.GraphPaging, policy CachePolicy, photoType string) models.PaginationMetadata {
	return h.metadataAt(h.now(), count, paging, policy, photoType)
}

func (h *Handler) metadataAt(now time.Time, count int, paging *models.GraphPaging, policy CachePolicy, photoType string) models.PaginationMetadata {
	md := models.PaginationMetadata{
		TotalCount:  count,
		APIVersion:  h.graph.APIVersion(),
		CachedUntil: policy.CachedUntil(now),
		PhotoType:   photoType,
	}
	if paging == nil {
		return md
	}
	md.HasNextPage = paging.Next != ""
	md.HasPreviousPage = paging.Previous != ""
	if paging.Cursors != nil {
		md.CursorAfter = paging.Cursors.After
		md.CursorBefore = paging.Cursors.Before
	}
	return md
}

// redactPaging copies paging with the access token removed from the
// pre-built page URLs.
func redactPaging(p *models.GraphPaging) *models.GraphPaging {
	if p == nil {
		return nil
	}
	out := &models.GraphPaging{
		Next:     logging.RedactURL(p.Next),
		Previous: logging.RedactURL(p.Previous),
	}
	if p.Cursors != nil {
		c := *p.Cursors
		out.Cursors = &c
	}
	return out
}
