// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// Key names in the snapshot database
const (
	catalogKey = "snapshot:catalog"
	metaKey    = "snapshot:meta"
)

var (
	// ErrSnapshotNotFound is returned when no snapshot has been saved.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrSnapshotInvalid is returned when a stored snapshot fails schema,
	// checksum, or entry count validation.
	ErrSnapshotInvalid = errors.New("snapshot invalid")
)

// SnapshotStore persists the loaded catalog in BadgerDB so restarts can skip
// the CSV merge. The similarity matrix is never stored.
type SnapshotStore struct {
	db  *badger.DB
	now func() time.Time
}

// Open opens (or creates) a snapshot database in dir.
func Open(dir string) (*SnapshotStore, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil { //nolint:gosec // 0750 is acceptable for snapshot storage
		return nil, fmt.Errorf("create snapshot directory: %w", err)
	}

	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Suppress BadgerDB internal logs
	opts.ValueLogFileSize = 64 << 20
	opts.SyncWrites = true

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for snapshot: %w", err)
	}

	return &SnapshotStore{db: db, now: time.Now}, nil
}

// Close releases the database.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// Save replaces the stored snapshot with entries. Catalog and metadata are
// written in one transaction.
func (s *SnapshotStore) Save(ctx context.Context, entries []catalog.Entry, fingerprint string) (*Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	payload, checksum, err := encodeEntries(entries)
	if err != nil {
		return nil, err
	}

	meta := &Metadata{
		SchemaVersion:     SchemaVersion,
		EntryCount:        len(entries),
		Checksum:          checksum,
		SizeBytes:         int64(len(payload)),
		SavedAt:           s.now().UTC(),
		SourceFingerprint: fingerprint,
	}
	metaData, err := json.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshal snapshot metadata: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(catalogKey), payload); err != nil {
			return fmt.Errorf("set catalog: %w", err)
		}
		if err := txn.Set([]byte(metaKey), metaData); err != nil {
			return fmt.Errorf("set metadata: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return meta, nil
}

// Load returns the stored entries and their metadata. It returns
// ErrSnapshotNotFound when nothing was saved and ErrSnapshotInvalid when the
// stored data does not validate.
func (s *SnapshotStore) Load(ctx context.Context) ([]catalog.Entry, *Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	var (
		meta    Metadata
		payload []byte
	)
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(metaKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrSnapshotNotFound
		}
		if err != nil {
			return fmt.Errorf("get metadata: %w", err)
		}
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &meta)
		}); err != nil {
			return fmt.Errorf("%w: metadata: %v", ErrSnapshotInvalid, err)
		}

		item, err = txn.Get([]byte(catalogKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("%w: catalog payload missing", ErrSnapshotInvalid)
		}
		if err != nil {
			return fmt.Errorf("get catalog: %w", err)
		}
		payload, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, nil, err
	}

	if meta.SchemaVersion != SchemaVersion {
		return nil, nil, fmt.Errorf("%w: schema version %d, want %d", ErrSnapshotInvalid, meta.SchemaVersion, SchemaVersion)
	}

	entries, err := decodeEntries(payload, meta.Checksum)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrSnapshotInvalid, err)
	}
	if len(entries) != meta.EntryCount {
		return nil, nil, fmt.Errorf("%w: %d entries, metadata says %d", ErrSnapshotInvalid, len(entries), meta.EntryCount)
	}

	return entries, &meta, nil
}
