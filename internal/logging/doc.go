// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package logging provides the process-wide zerolog logger.
//
// Call Init once at startup with values from the configuration. Before Init is
// called the logger writes JSON at info level to stderr.
//
//	logging.Init(logging.Config{Level: "info", Format: "json", Timestamp: true})
//	logging.Info().Int("entries", n).Msg("Catalog loaded")
//
// Request-scoped logging picks up the request and correlation IDs placed in the
// context by the HTTP middleware:
//
//	logging.Ctx(r.Context()).Warn().Str("title", q).Msg("Title not found")
//
// Always terminate log chains with Msg or Send; an unterminated event is dropped.
package logging
