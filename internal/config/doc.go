// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package config loads service configuration with koanf.
//
// Sources are layered, later sources overriding earlier ones:
//
//  1. Built-in defaults (defaultConfig)
//  2. An optional YAML file, from CONFIG_PATH or the first of DefaultConfigPaths
//  3. Environment variables listed in envMappings
//
// Example config.yaml:
//
//	server:
//	  port: 5000
//	data:
//	  movies_path: /data/tmdb_5000_movies.csv
//	  credits_path: /data/tmdb_5000_credits.csv
//	  strategy: snapshot
//	recommend:
//	  resolve_threshold: 70
//	  suggestion_cutoff: 0.3
//	  search_threshold: 50
//
// The loaded configuration is validated before it is returned; an invalid
// configuration prevents startup.
package config
