// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package cache provides the in-memory data structures used on the request
// path: a generic TTL-bounded LRU cache for lookup results and a prefix trie
// for title autocomplete.
package cache
