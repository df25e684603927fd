// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package storage

import (
	"bytes"
	"compress/gzip"
	"crypto/sha256"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// SchemaVersion identifies the encoding of stored entries. Snapshots written
// with a different version are rejected on load.
const SchemaVersion = 1

// Metadata describes a stored snapshot.
type Metadata struct {
	// SchemaVersion is the entry encoding version.
	SchemaVersion int `json:"schema_version"`

	// EntryCount is the number of catalog entries in the snapshot.
	EntryCount int `json:"entry_count"`

	// Checksum is the SHA-256 of the uncompressed gob payload.
	Checksum string `json:"checksum"`

	// SizeBytes is the compressed payload size.
	SizeBytes int64 `json:"size_bytes"`

	// SavedAt is when the snapshot was written.
	SavedAt time.Time `json:"saved_at"`

	// SourceFingerprint identifies the CSV files the entries were loaded from.
	SourceFingerprint string `json:"source_fingerprint"`
}

// encodeEntries gob-encodes and gzip-compresses entries. It returns the
// compressed payload and the checksum of the raw encoding.
func encodeEntries(entries []catalog.Entry) ([]byte, string, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(entries); err != nil {
		return nil, "", fmt.Errorf("encode entries: %w", err)
	}

	rawData := buf.Bytes()
	hash := sha256.Sum256(rawData)

	var compressed bytes.Buffer
	gzw := gzip.NewWriter(&compressed)
	if _, err := gzw.Write(rawData); err != nil {
		return nil, "", fmt.Errorf("compress entries: %w", err)
	}
	if err := gzw.Close(); err != nil {
		return nil, "", fmt.Errorf("finalize compression: %w", err)
	}

	return compressed.Bytes(), hex.EncodeToString(hash[:]), nil
}

// decodeEntries reverses encodeEntries, verifying the checksum of the
// decompressed payload.
func decodeEntries(compressed []byte, checksum string) ([]catalog.Entry, error) {
	gzr, err := gzip.NewReader(bytes.NewReader(compressed))
	if err != nil {
		return nil, fmt.Errorf("decompress entries: %w", err)
	}
	defer func() { _ = gzr.Close() }() //nolint:errcheck // error on gzip close after read is not actionable

	rawData, err := io.ReadAll(gzr)
	if err != nil {
		return nil, fmt.Errorf("read decompressed data: %w", err)
	}

	hash := sha256.Sum256(rawData)
	if got := hex.EncodeToString(hash[:]); got != checksum {
		return nil, fmt.Errorf("checksum mismatch: expected %s, got %s", checksum, got)
	}

	var entries []catalog.Entry
	if err := gob.NewDecoder(bytes.NewReader(rawData)).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}

	// gob drops empty slices; restore them so decoded entries match loaded ones
	for i := range entries {
		e := &entries[i]
		e.Genres = nonNil(e.Genres)
		e.Keywords = nonNil(e.Keywords)
		e.TopCast = nonNil(e.TopCast)
		e.Director = nonNil(e.Director)
	}
	return entries, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
