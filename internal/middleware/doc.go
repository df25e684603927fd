// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package middleware provides HTTP middleware components for the API router.

Key Components:

  - RequestID: UUID-based request tracking (X-Request-ID), propagated into
    the logging context together with a correlation ID
  - PrometheusMetrics: request count, latency and in-flight gauge labelled
    by chi route pattern
  - Compression: gzip responses for clients that accept it
  - AccessLog: per-request debug logging and slow request warnings

All components use the standard func(http.Handler) http.Handler shape and
mount directly on a chi router:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog(time.Second))
	r.Use(middleware.Compression)
*/
package middleware
