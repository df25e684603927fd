// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Lookup Metrics
	LookupsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_lookups_total",
			Help: "Total number of title lookups by resolution outcome",
		},
		[]string{"outcome"}, // "exact", "fuzzy", "not_found"
	)

	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_searches_total",
			Help: "Total number of autocomplete searches",
		},
		[]string{"result"}, // "hit", "empty"
	)

	// Index Metrics
	IndexBuildDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "recommend_index_build_duration_seconds",
			Help:    "Duration of engine setup stages in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"stage"}, // "load", "snapshot", "index"
	)

	CatalogEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_catalog_entries",
			Help: "Number of entries in the serving catalog",
		},
	)

	VocabularySize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_vocabulary_size",
			Help: "Number of distinct terms in the TF-IDF vocabulary",
		},
	)

	DataErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_data_errors_total",
			Help: "Malformed catalog values recovered as empty lists",
		},
		[]string{"field"},
	)

	// Snapshot Metrics
	SnapshotOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_snapshot_operations_total",
			Help: "Snapshot loads and saves by result",
		},
		[]string{"operation", "result"}, // operation: "load", "save"; result: "success", "miss", "invalid", "stale", "error"
	)

	// Result Cache Metrics
	CacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_hits_total",
			Help: "Total number of recommendation cache hits",
		},
	)

	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_misses_total",
			Help: "Total number of recommendation cache misses",
		},
	)

	// Reload Metrics
	ReloadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_reloads_total",
			Help: "Catalog reloads triggered by source file changes",
		},
		[]string{"result"}, // "success", "failure", "rejected"
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements active request counter
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordLookup records a title lookup by outcome.
func RecordLookup(outcome string) {
	LookupsTotal.WithLabelValues(outcome).Inc()
}

// RecordSearch records an autocomplete search.
func RecordSearch(matches int) {
	if matches == 0 {
		SearchesTotal.WithLabelValues("empty").Inc()
		return
	}
	SearchesTotal.WithLabelValues("hit").Inc()
}

// RecordSetupStage records how long an engine setup stage took.
func RecordSetupStage(stage string, duration time.Duration) {
	IndexBuildDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// UpdateIndexGauges publishes the size of the serving engine.
func UpdateIndexGauges(entries, vocabulary int) {
	CatalogEntries.Set(float64(entries))
	VocabularySize.Set(float64(vocabulary))
}

// RecordDataErrors adds recovered data errors per field.
func RecordDataErrors(byField map[string]int) {
	for field, n := range byField {
		if n > 0 {
			DataErrors.WithLabelValues(field).Add(float64(n))
		}
	}
}

// RecordSnapshot records a snapshot load or save outcome.
func RecordSnapshot(operation, result string) {
	SnapshotOperations.WithLabelValues(operation, result).Inc()
}

// RecordCacheAccess records a recommendation cache hit or miss.
func RecordCacheAccess(hit bool) {
	if hit {
		CacheHits.Inc()
	} else {
		CacheMisses.Inc()
	}
}

// RecordReload records the outcome of a file-triggered reload.
func RecordReload(result string) {
	ReloadsTotal.WithLabelValues(result).Inc()
}

// RecordCircuitBreakerTransition updates breaker state gauges on a transition.
// States are encoded as 0=closed, 1=half-open, 2=open.
func RecordCircuitBreakerTransition(name, from, to string, state int) {
	CircuitBreakerState.WithLabelValues(name).Set(float64(state))
	CircuitBreakerTransitions.WithLabelValues(name, from, to).Inc()
}

// SetAppInfo publishes version information.
func SetAppInfo(version, goVersion string) {
	AppInfo.WithLabelValues(version, goVersion).Set(1)
}

// StatusLabel converts an HTTP status code to its metric label.
func StatusLabel(code int) string {
	return strconv.Itoa(code)
}
