// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package match resolves free-text movie titles against the catalog.
//
// Resolution runs in two steps: a case-insensitive exact comparison, then a
// fuzzy pass scoring every title with a normalized Levenshtein ratio (0-100).
// When neither step succeeds, callers can ask for display-only suggestions
// scored with a gestalt pattern matching ratio (0-1), which is looser and
// never used to auto-resolve.
//
// The same Matcher also serves autocomplete search: prefix matches from a
// trie, then substring matches, then fuzzy matches above a lower threshold.
package match
