// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend implements the content-based movie recommendation engine.
//
// # Overview
//
// Each catalog entry is summarized as a tag (genres, keywords, top cast and
// director). Tags are vectorized with TF-IDF and every pair of entries is
// compared by cosine similarity once, when the engine is built. Requests
// then only resolve a title and sort one matrix row.
//
// # Lifecycle
//
// Init builds an Engine according to a Strategy:
//
//   - StrategyRebuild merges the movies and credits CSV files and refreshes
//     the stored snapshot.
//   - StrategySnapshot loads the stored snapshot when it validates and was
//     taken from the current source files, and falls back to a rebuild.
//
// Any failure during Init is a *SetupError and the caller must not serve.
// A built Engine is immutable; a Holder lets a file watcher replace it with
// a freshly built one without interrupting readers.
//
// # Errors
//
//   - *NotFoundError: Lookup could not resolve a title; carries suggestions.
//   - *SetupError: a stage of Init failed; wraps the cause.
//   - ErrIndexOutOfRange: an index outside the catalog was requested.
//
// # Usage
//
//	engine, err := recommend.Init(ctx, recommend.Options{
//	    Strategy:  recommend.StrategySnapshot,
//	    Source:    catalog.Source{MoviesPath: movies, CreditsPath: credits},
//	    Snapshots: store,
//	    Config:    recommend.DefaultConfig(),
//	})
//	if err != nil {
//	    return err
//	}
//	rec, err := engine.Lookup("Avatar", 10)
package recommend
