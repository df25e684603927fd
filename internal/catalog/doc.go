// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package catalog holds the movie catalog: entry records, the tag text derived
// from their metadata, and the loader that builds entries from the TMDB
// movies and credits CSV files.
//
// # Tags
//
// A tag is the space-joined concatenation of an entry's genres, keywords, top
// cast and directors, in that order, with each list's order preserved. Tags are
// the documents vectorized by the similarity index.
//
// # Loading
//
// The two CSV files are merged on title inside an in-memory DuckDB. Rows keep
// the order of the movies file; a title present several times in either file
// yields one entry per matching pair. Nested metadata columns hold JSON arrays
// of objects with a "name" field. A malformed value is reported as a DataError,
// counted, and treated as an empty list.
package catalog
