// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

/*
Package models defines the data structures shared by every layer.

Model Categories:

 1. Graph wire types (graph.go): the Facebook Graph API payloads as they
    arrive, with optional fields as pointers or omitempty values.
 2. Normalized types (normalized.go): the frontend representation of events,
    photos and albums, plus listing and batch envelopes.
 3. Reviews (reviews.go): the source-independent reviews payload.
 4. Errors (errors.go): the AppError taxonomy and its wire envelope.

Normalized records are always built with explicit defaults, so a field that
is absent upstream is either omitted from JSON or carries its zero value,
never an undefined one.
*/
package models
