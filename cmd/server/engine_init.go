// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"time"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/match"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/recommend/storage"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
)

// buildEngineConfig maps application configuration onto the engine's.
func buildEngineConfig(cfg *config.Config) recommend.Config {
	rc := recommend.DefaultConfig()
	rc.TopK = cfg.Recommend.TopK
	rc.MaxK = cfg.API.MaxRecommendations
	rc.Match = match.Config{
		ResolveThreshold: cfg.Recommend.ResolveThreshold,
		SuggestionCutoff: cfg.Recommend.SuggestionCutoff,
		MaxSuggestions:   cfg.Recommend.MaxSuggestions,
		SearchThreshold:  cfg.Recommend.SearchThreshold,
		MinQueryLength:   cfg.Recommend.MinSearchQueryLen,
	}
	rc.Cache = recommend.CacheConfig{
		Capacity: cfg.Cache.Capacity,
		TTL:      cfg.Cache.TTL,
	}
	return rc
}

// openSnapshots opens the snapshot store, or returns nil when snapshots are
// disabled by an empty directory.
func openSnapshots(cfg *config.Config) (*storage.SnapshotStore, error) {
	if cfg.Data.SnapshotDir == "" {
		logging.Info().Msg("Snapshot directory not set; every start rebuilds from CSV")
		return nil, nil
	}
	store, err := storage.Open(cfg.Data.SnapshotDir)
	if err != nil {
		return nil, err
	}
	logging.Info().Str("dir", cfg.Data.SnapshotDir).Msg("Snapshot store opened")
	return store, nil
}

// engineOptions assembles Init options for strategy.
func engineOptions(cfg *config.Config, strategy recommend.Strategy, store *storage.SnapshotStore) recommend.Options {
	opts := recommend.Options{
		Strategy: strategy,
		Source: catalog.Source{
			MoviesPath:  cfg.Data.MoviesPath,
			CreditsPath: cfg.Data.CreditsPath,
		},
		Config: buildEngineConfig(cfg),
	}
	// a typed nil must not reach the interface
	if store != nil {
		opts.Snapshots = store
	}
	return opts
}

// rebuildFunc is the data watcher's build step: always from CSV, refreshing
// the snapshot on success.
func rebuildFunc(cfg *config.Config, store *storage.SnapshotStore) services.BuildFunc {
	return func(ctx context.Context) (*recommend.Engine, error) {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
		defer cancel()
		return recommend.Init(ctx, engineOptions(cfg, recommend.StrategyRebuild, store))
	}
}

// newDataWatcher creates the watcher service when data.watch is enabled.
func newDataWatcher(cfg *config.Config, store *storage.SnapshotStore, holder *recommend.Holder) (*services.DataWatcher, error) {
	return services.NewDataWatcher(services.DataWatcherConfig{
		Paths:            []string{cfg.Data.MoviesPath, cfg.Data.CreditsPath},
		MinInterval:      cfg.Data.WatchDebounce,
		FailureThreshold: cfg.Data.WatchFailureThreshold,
		Cooldown:         cfg.Data.WatchCooldown,
	}, rebuildFunc(cfg, store), holder)
}
