// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package storage persists the merged movie catalog between restarts.
//
// A snapshot lives in a BadgerDB directory under two keys:
//
//	snapshot:catalog  gzip-compressed gob encoding of []catalog.Entry
//	snapshot:meta     JSON Metadata (schema version, entry count,
//	                  SHA-256 of the raw gob payload, save time,
//	                  source file fingerprint)
//
// Load validates the schema version, checksum and entry count and reports
// ErrSnapshotInvalid on any mismatch. Only entries are stored: the TF-IDF
// vocabulary and similarity matrix are always recomputed from them.
package storage
