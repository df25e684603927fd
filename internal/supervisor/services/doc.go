// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package services provides suture.Service wrappers for Reelmatch components.

Each wrapper implements suture's Service interface and names itself via
fmt.Stringer for supervisor events:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Runs *http.Server until the context is canceled
  - Drains connections with Shutdown under its own deadline
  - Bind failures are returned so the supervisor restarts with backoff

Data Watcher (DataWatcher):
  - Watches the catalog CSV files with fsnotify
  - Waits for changes to settle, then rebuilds at most once per MinInterval
    (golang.org/x/time/rate token bucket)
  - Runs each rebuild through a sony/gobreaker circuit breaker; after
    FailureThreshold consecutive failures rebuilds are skipped for Cooldown
  - Swaps the rebuilt engine into the recommend.Holder served by the API;
    a failed rebuild keeps serving the previous engine

# Metrics

The data watcher records recommend_reloads_total{result} and the
circuit_breaker_state gauge for breaker "data-watcher".
*/
package services
