// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"time"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/match"
)

// Recommendation is the result of a title lookup. It is shared between
// callers through the result cache and must not be modified.
type Recommendation struct {
	// Query is the title as submitted, trimmed.
	Query string

	// Movie is the resolved catalog entry.
	Movie *catalog.Entry

	// Match reports whether the title matched exactly or fuzzily.
	Match match.Kind

	// Score is the match score on 0-100 (100 for exact matches).
	Score int

	// Items are the most similar entries, best first.
	Items []RecommendedEntry
}

// RecommendedEntry is one ranked recommendation.
type RecommendedEntry struct {
	Entry      *catalog.Entry
	Similarity float64
}

// Page is one page of catalog titles.
type Page struct {
	Page    int
	PerPage int
	Titles  []string
	Total   int
}

// Stats describes a built engine.
type Stats struct {
	// Entries is the catalog size.
	Entries int `json:"entries"`

	// Vocabulary is the number of distinct TF-IDF terms.
	Vocabulary int `json:"vocabulary"`

	// Source is the strategy that produced the catalog: "snapshot" or "rebuild".
	Source string `json:"source"`

	// DataErrors counts malformed values recovered during loading.
	DataErrors int `json:"data_errors"`

	// BuiltAt is when the engine finished building.
	BuiltAt time.Time `json:"built_at"`

	// BuildDuration is the total setup time.
	BuildDuration time.Duration `json:"build_duration_ns"`

	// Cache reports the lookup result cache; nil when caching is disabled.
	Cache *CacheStats `json:"cache,omitempty"`
}

// CacheStats is a point-in-time view of the lookup result cache.
type CacheStats struct {
	Entries int   `json:"entries"`
	Hits    int64 `json:"hits"`
	Misses  int64 `json:"misses"`
}
