// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/reelmatch/config.yaml",
	"/etc/reelmatch/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// Initialization strategies accepted by data.strategy.
const (
	StrategySnapshot = "snapshot"
	StrategyRebuild  = "rebuild"
)

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            5000,
			Host:            "0.0.0.0",
			Timeout:         10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		API: APIConfig{
			DefaultPageSize:    20,
			MaxPageSize:        100,
			DefaultSearchLimit: 10,
			MaxSearchLimit:     50,
			MaxRecommendations: 50,
		},
		Data: DataConfig{
			MoviesPath:            "data/tmdb_5000_movies.csv",
			CreditsPath:           "data/tmdb_5000_credits.csv",
			SnapshotDir:           "data/snapshot",
			Strategy:              StrategySnapshot,
			Watch:                 false,
			WatchDebounce:         10 * time.Second,
			WatchFailureThreshold: 3,
			WatchCooldown:         5 * time.Minute,
		},
		Recommend: RecommendConfig{
			TopK:              10,
			ResolveThreshold:  70,
			SuggestionCutoff:  0.3,
			MaxSuggestions:    5,
			SearchThreshold:   50,
			MinSearchQueryLen: 2,
		},
		Cache: CacheConfig{
			Capacity: 1024,
			TTL:      30 * time.Minute,
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// LoadWithKoanf loads configuration using Koanf v2 with layered sources:
//  1. Defaults: built-in defaults
//  2. Config File: optional YAML config file (if exists)
//  3. Environment Variables: override any mapped setting
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// MOVIES_CSV -> data.movies_path, HTTP_PORT -> server.port
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "" if none exists.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"security.cors_origins",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":        "server.port",
	"http_host":        "server.host",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// API
	"api_default_page_size":    "api.default_page_size",
	"api_max_page_size":        "api.max_page_size",
	"api_default_search_limit": "api.default_search_limit",
	"api_max_search_limit":     "api.max_search_limit",
	"api_max_recommendations":  "api.max_recommendations",

	// Data
	"movies_csv":                   "data.movies_path",
	"credits_csv":                  "data.credits_path",
	"snapshot_dir":                 "data.snapshot_dir",
	"init_strategy":                "data.strategy",
	"data_watch":                   "data.watch",
	"data_watch_debounce":          "data.watch_debounce",
	"data_watch_failure_threshold": "data.watch_failure_threshold",
	"data_watch_cooldown":          "data.watch_cooldown",

	// Recommend
	"recommend_top_k":                "recommend.top_k",
	"recommend_resolve_threshold":    "recommend.resolve_threshold",
	"recommend_suggestion_cutoff":    "recommend.suggestion_cutoff",
	"recommend_max_suggestions":      "recommend.max_suggestions",
	"recommend_search_threshold":     "recommend.search_threshold",
	"recommend_min_search_query_len": "recommend.min_search_query_len",

	// Cache
	"cache_capacity": "cache.capacity",
	"cache_ttl":      "cache.ttl",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",
}

// envTransformFunc transforms environment variable names to koanf config paths.
// Unmapped variables return "" and are skipped.
//
// Examples:
//   - MOVIES_CSV -> data.movies_path
//   - RECOMMEND_RESOLVE_THRESHOLD -> recommend.resolve_threshold
//   - HTTP_PORT -> server.port
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
