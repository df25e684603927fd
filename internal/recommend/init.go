// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend/algorithms"
	"github.com/tomtom215/reelmatch/internal/recommend/storage"
)

// Strategy selects where Init gets the catalog from.
type Strategy string

const (
	// StrategySnapshot loads the stored snapshot when it is valid and matches
	// the current source files, and rebuilds otherwise.
	StrategySnapshot Strategy = "snapshot"

	// StrategyRebuild always merges the CSV files and refreshes the snapshot.
	StrategyRebuild Strategy = "rebuild"
)

// ParseStrategy converts a configuration value to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategySnapshot, StrategyRebuild:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown init strategy %q (want %q or %q)", s, StrategySnapshot, StrategyRebuild)
	}
}

// SnapshotStore persists loaded catalogs between runs.
type SnapshotStore interface {
	Load(ctx context.Context) ([]catalog.Entry, *storage.Metadata, error)
	Save(ctx context.Context, entries []catalog.Entry, fingerprint string) (*storage.Metadata, error)
}

// Options configures Init.
type Options struct {
	Strategy Strategy
	Source   catalog.Source

	// Snapshots is optional; without it both strategies load the CSV files.
	Snapshots SnapshotStore

	Config Config
}

// Init builds a ready-to-serve Engine. Every failure is returned as a
// *SetupError and no partially built engine is ever returned.
func Init(ctx context.Context, opts Options) (*Engine, error) {
	logger := logging.WithComponent("recommend")
	start := time.Now()

	if err := opts.Config.Validate(); err != nil {
		return nil, &SetupError{Stage: StageConfig, Err: err}
	}
	if _, err := ParseStrategy(string(opts.Strategy)); err != nil {
		return nil, &SetupError{Stage: StageConfig, Err: err}
	}

	entries, stats, err := loadCatalog(ctx, opts, logger)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, &SetupError{Stage: StageLoad, Err: ErrEmptyCatalog}
	}

	indexStart := time.Now()
	index, err := algorithms.BuildIndex(ctx, catalog.BuildTags(entries), algorithms.TFIDFConfig{}, opts.Config.Workers)
	if err != nil {
		return nil, &SetupError{Stage: StageIndex, Err: err}
	}
	metrics.RecordSetupStage(StageIndex, time.Since(indexStart))

	stats.BuiltAt = time.Now()
	stats.BuildDuration = stats.BuiltAt.Sub(start)
	engine := NewEngine(entries, index, opts.Config, stats)
	stats = engine.Stats()
	metrics.UpdateIndexGauges(stats.Entries, stats.Vocabulary)

	logger.Info().
		Str("source", stats.Source).
		Int("entries", stats.Entries).
		Int("vocabulary", stats.Vocabulary).
		Int("data_errors", stats.DataErrors).
		Dur("duration", stats.BuildDuration).
		Msg("Recommendation engine ready")

	return engine, nil
}

// loadCatalog returns entries from a valid snapshot when the strategy allows
// it, and from the CSV files otherwise.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func loadCatalog(ctx context.Context, opts Options, logger zerolog.Logger) ([]catalog.Entry, Stats, error) {
	fingerprint, fpErr := catalog.Fingerprint(opts.Source)

	if opts.Strategy == StrategySnapshot && opts.Snapshots != nil {
		if entries, ok := loadSnapshot(ctx, opts.Snapshots, fingerprint, fpErr, logger); ok {
			return entries, Stats{Source: string(StrategySnapshot)}, nil
		}
	}

	loadStart := time.Now()
	entries, loadStats, err := catalog.Load(ctx, opts.Source)
	if err != nil {
		return nil, Stats{}, &SetupError{Stage: StageLoad, Err: err}
	}
	metrics.RecordSetupStage(StageLoad, time.Since(loadStart))
	metrics.RecordDataErrors(loadStats.DataErrors)

	if n := loadStats.TotalDataErrors(); n > 0 {
		logger.Debug().Interface("by_field", loadStats.DataErrors).Int("total", n).Msg("Recovered malformed catalog fields")
	}

	if opts.Snapshots != nil {
		if fpErr != nil {
			fingerprint, err = catalog.Fingerprint(opts.Source)
			if err != nil {
				return nil, Stats{}, &SetupError{Stage: StageSnapshot, Err: err}
			}
		}
		saveStart := time.Now()
		meta, err := opts.Snapshots.Save(ctx, entries, fingerprint)
		if err != nil {
			metrics.RecordSnapshot("save", "error")
			return nil, Stats{}, &SetupError{Stage: StageSnapshot, Err: err}
		}
		metrics.RecordSnapshot("save", "success")
		metrics.RecordSetupStage(StageSnapshot, time.Since(saveStart))
		logger.Info().Int("entries", meta.EntryCount).Int64("size_bytes", meta.SizeBytes).Msg("Catalog snapshot saved")
	}

	return entries, Stats{Source: string(StrategyRebuild), DataErrors: loadStats.TotalDataErrors()}, nil
}

// loadSnapshot reports whether a usable snapshot was found. A snapshot whose
// fingerprint differs from the current source files is stale; when the source
// files cannot be inspected the snapshot is trusted.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func loadSnapshot(ctx context.Context, store SnapshotStore, fingerprint string, fpErr error, logger zerolog.Logger) ([]catalog.Entry, bool) {
	entries, meta, err := store.Load(ctx)
	switch {
	case err == nil && fpErr == nil && meta.SourceFingerprint != fingerprint:
		metrics.RecordSnapshot("load", "stale")
		logger.Info().Time("saved_at", meta.SavedAt).Msg("Catalog snapshot is stale, rebuilding")
		return nil, false
	case err == nil:
		metrics.RecordSnapshot("load", "success")
		logger.Info().Int("entries", meta.EntryCount).Time("saved_at", meta.SavedAt).Msg("Loaded catalog snapshot")
		return entries, true
	case errors.Is(err, storage.ErrSnapshotNotFound):
		metrics.RecordSnapshot("load", "miss")
		logger.Info().Msg("No catalog snapshot, rebuilding")
	case errors.Is(err, storage.ErrSnapshotInvalid):
		metrics.RecordSnapshot("load", "invalid")
		logger.Warn().Err(err).Msg("Catalog snapshot failed validation, rebuilding")
	default:
		metrics.RecordSnapshot("load", "error")
		logger.Warn().Err(err).Msg("Catalog snapshot could not be read, rebuilding")
	}
	return nil, false
}
