// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

/*
Package graph talks to the Facebook Graph API on behalf of the page.

The package has three layers:

  - Request building (fields.go, request.go): pure functions that turn a
    models.ResourceRequest into a query string with the fixed field list for
    the resource kind, the caller's limit and at most one cursor.
  - Transport (client.go, batch.go): one outbound call per listing, or one
    compound POST for a batch. There are no retries; a failed call is
    classified and returned.
  - Classification (errors.go): maps provider error bodies into the local
    error taxonomy (code 190 is always an AuthenticationError).

Example:

	client := graph.NewClient(cfg.Graph)
	page, err := client.Events(ctx, creds.PageID, creds.AccessToken, models.ResourceRequest{
	    Kind:  models.KindEvents,
	    Limit: 10,
	})
*/
package graph
