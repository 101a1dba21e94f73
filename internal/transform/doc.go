// Desire Club - Nightclub Website Data Aggregation API
// Copyright 2026 YuraDukhnoAman
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/YuraDukhnoAman/desire-club

/*
Package transform converts raw Graph API records into the normalized event,
photo and album shapes the website renders.

Every function is pure: no I/O, no clock, no globals beyond read-only tables.
A record without an id, or with a timestamp that cannot be parsed, produces an
AppError of kind TransformError; optional sub-objects never do.

Event categories come from the provider's category field when it names a
local category, otherwise from DefaultCategoryRules (English and Russian
keywords, checked in priority order). Adding a locale is a table change:

	rules := []transform.CategoryRule{
	    {Category: models.CategoryKaraoke, NameKeywords: []string{"karaoke", "קריוקי"}},
	}
	category := transform.InferCategory(name, description, rules) // "party" when nothing matches
*/
package transform
