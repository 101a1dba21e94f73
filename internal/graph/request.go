// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

package graph

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/YuraDukhnoAman/desire-club/internal/models"
)

// apiRequest accumulates the query parameters of one edge request.
type apiRequest struct {
	kind   models.ResourceKind
	params url.Values
}

// newAPIRequest applies the fixed field list, the limit and the cursor of req.
// When both cursors are set, after wins; the HTTP layer rejects that
// combination before it gets here.
func newAPIRequest(req models.ResourceRequest) *apiRequest {
	r := &apiRequest{kind: req.Kind, params: url.Values{}}
	r.params.Set("fields", FieldsFor(req.Kind))

	limit := req.Limit
	if limit <= 0 {
		limit = models.DefaultLimit
	}
	r.params.Set("limit", strconv.Itoa(limit))

	switch {
	case req.After != "":
		r.params.Set("after", req.After)
	case req.Before != "":
		r.params.Set("before", req.Before)
	}

	if req.Kind == models.KindPhotos {
		photoType := req.PhotoType
		if photoType == "" {
			photoType = models.DefaultPhotoType
		}
		r.params.Set("type", photoType)
	}
	return r
}

// path returns "{pageID}/{kind}".
func (r *apiRequest) path(pageID string) string {
	return url.PathEscape(pageID) + "/" + string(r.kind)
}

// BuildQuery returns the full query for req including the access token.
func BuildQuery(req models.ResourceRequest, accessToken string) url.Values {
	q := newAPIRequest(req).params
	q.Set("access_token", accessToken)
	return q
}

// RelativeURL returns the token-free "{pageID}/{kind}?..." form used inside
// a batch; the batch call carries the token once at the top level.
func RelativeURL(pageID string, req models.ResourceRequest) string {
	r := newAPIRequest(req)
	return r.path(pageID) + "?" + r.params.Encode()
}

// ResourceURL returns the absolute URL of a single edge request.
func ResourceURL(baseURL, version, pageID string, req models.ResourceRequest, accessToken string) string {
	r := newAPIRequest(req)
	return fmt.Sprintf("%s/%s/%s?%s",
		strings.TrimRight(baseURL, "/"), version, r.path(pageID), BuildQuery(req, accessToken).Encode())
}
