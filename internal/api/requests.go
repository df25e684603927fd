// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

// Request parameter structs. Field names in validation errors come from the
// query tag. Upper bounds that depend on configuration are applied by
// clamping after validation.

// RecommendRequest holds GET /recommend parameters.
type RecommendRequest struct {
	Title string `query:"title" validate:"required,notblank,max=200"`
	K     int    `query:"k" validate:"min=1"`
}

// MoviesRequest holds GET /movies parameters.
type MoviesRequest struct {
	Page    int `query:"page" validate:"min=1"`
	PerPage int `query:"per_page" validate:"min=1"`
}

// SearchRequest holds GET /search parameters.
type SearchRequest struct {
	Query string `query:"q" validate:"required,notblank,max=200"`
	Limit int    `query:"limit" validate:"min=1"`
}
