// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	API       APIConfig       `koanf:"api"`
	Data      DataConfig      `koanf:"data"`
	Recommend RecommendConfig `koanf:"recommend"`
	Cache     CacheConfig     `koanf:"cache"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`          // Per-request handler timeout
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"` // Graceful shutdown deadline
	Environment     string        `koanf:"environment"`      // "development", "staging", "production"
}

// APIConfig holds API pagination and response settings
type APIConfig struct {
	DefaultPageSize    int `koanf:"default_page_size"`
	MaxPageSize        int `koanf:"max_page_size"`
	DefaultSearchLimit int `koanf:"default_search_limit"`
	MaxSearchLimit     int `koanf:"max_search_limit"`
	MaxRecommendations int `koanf:"max_recommendations"`
}

// DataConfig describes where the catalog comes from and how it is initialized.
//
// Environment Variables:
//   - MOVIES_CSV: path to tmdb_5000_movies.csv
//   - CREDITS_CSV: path to tmdb_5000_credits.csv
//   - SNAPSHOT_DIR: badger directory for the catalog snapshot
//   - INIT_STRATEGY: "snapshot" (default) or "rebuild"
//   - DATA_WATCH: rebuild the index when the CSV files change (default: false)
type DataConfig struct {
	MoviesPath  string `koanf:"movies_path"`
	CreditsPath string `koanf:"credits_path"`
	SnapshotDir string `koanf:"snapshot_dir"`

	// Strategy selects the initialization path: "snapshot" tries the cached
	// snapshot first, "rebuild" always reloads the CSV files.
	// Default: snapshot
	Strategy string `koanf:"strategy"`

	// Watch enables the data watcher.
	// Default: false
	Watch bool `koanf:"watch"`

	// WatchDebounce is the minimum interval between watcher-triggered rebuilds.
	// Default: 10s
	WatchDebounce time.Duration `koanf:"watch_debounce"`

	// WatchFailureThreshold is the number of consecutive failed rebuilds after
	// which the watcher stops rebuilding until WatchCooldown has elapsed.
	// Default: 3
	WatchFailureThreshold uint32 `koanf:"watch_failure_threshold"`

	// WatchCooldown is how long the watcher pauses after tripping.
	// Default: 5m
	WatchCooldown time.Duration `koanf:"watch_cooldown"`
}

// RecommendConfig holds ranking and matching parameters.
//
// Environment Variables:
//   - RECOMMEND_TOP_K: recommendations per lookup (default: 10)
//   - RECOMMEND_RESOLVE_THRESHOLD: fuzzy title resolution score, 0-100 (default: 70)
//   - RECOMMEND_SUGGESTION_CUTOFF: suggestion similarity cutoff, 0-1 (default: 0.3)
//   - RECOMMEND_MAX_SUGGESTIONS: suggestions on a miss (default: 5)
//   - RECOMMEND_SEARCH_THRESHOLD: fuzzy search score, 0-100 (default: 50)
type RecommendConfig struct {
	TopK              int     `koanf:"top_k"`
	ResolveThreshold  int     `koanf:"resolve_threshold"`
	SuggestionCutoff  float64 `koanf:"suggestion_cutoff"`
	MaxSuggestions    int     `koanf:"max_suggestions"`
	SearchThreshold   int     `koanf:"search_threshold"`
	MinSearchQueryLen int     `koanf:"min_search_query_len"`
}

// CacheConfig holds the recommendation result cache settings.
type CacheConfig struct {
	// Capacity is the maximum number of cached lookups. 0 disables caching.
	// Default: 1024
	Capacity int `koanf:"capacity"`

	// TTL bounds how long a cached lookup is served.
	// Default: 30m
	TTL time.Duration `koanf:"ttl"`
}

// SecurityConfig holds CORS and rate limiting settings
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	// Default: false
	Caller bool `koanf:"caller"`
}

// Load loads configuration from defaults, an optional YAML file, and the environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
