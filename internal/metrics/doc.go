// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered with the default registry through promauto at package
initialization and exposed by the API router at /metrics.

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)

Engine Metrics:
  - recommend_lookups_total: Title lookups by outcome (exact, fuzzy, not_found)
  - recommend_searches_total: Autocomplete searches by result
  - recommend_index_build_duration_seconds: Setup stage durations
  - recommend_catalog_entries, recommend_vocabulary_size: Serving index size
  - recommend_data_errors_total: Recovered malformed values by field
  - recommend_snapshot_operations_total: Snapshot loads and saves by result
  - recommend_cache_hits_total, recommend_cache_misses_total: Result cache
  - recommend_reloads_total: File-triggered reloads by result

Reload protection:
  - circuit_breaker_state, circuit_breaker_state_transitions_total

# Usage

	start := time.Now()
	// handle request
	metrics.RecordAPIRequest("GET", "/recommend", "200", time.Since(start))

	metrics.RecordLookup("fuzzy")
*/
package metrics
