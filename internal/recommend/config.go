// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/reelmatch/internal/match"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// TopK is the number of recommendations returned when the caller does
	// not ask for a specific count.
	TopK int `json:"top_k"`

	// MaxK caps the number of recommendations per lookup.
	MaxK int `json:"max_k"`

	// Match contains the title resolution thresholds.
	Match match.Config `json:"match"`

	// Workers is the number of goroutines used to build the similarity
	// matrix. Zero selects runtime.NumCPU().
	Workers int `json:"workers"`

	// Cache contains result caching parameters.
	Cache CacheConfig `json:"cache"`
}

// CacheConfig contains caching parameters for lookup results.
type CacheConfig struct {
	// Capacity is the maximum number of cached lookups.
	Capacity int `json:"capacity"`

	// TTL is how long a cached lookup stays valid.
	TTL time.Duration `json:"ttl"`
}

// DefaultConfig returns a Config with the standard thresholds.
func DefaultConfig() Config {
	return Config{
		TopK:  10,
		MaxK:  50,
		Match: match.DefaultConfig(),
		Cache: CacheConfig{
			Capacity: 1024,
			TTL:      30 * time.Minute,
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.TopK < 1 {
		return fmt.Errorf("top_k must be positive, got %d", c.TopK)
	}
	if c.MaxK < c.TopK {
		return fmt.Errorf("max_k (%d) must be >= top_k (%d)", c.MaxK, c.TopK)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}

	m := c.Match
	if m.ResolveThreshold < 0 || m.ResolveThreshold > 100 {
		return fmt.Errorf("match.resolve_threshold must be in [0, 100], got %d", m.ResolveThreshold)
	}
	if m.SearchThreshold < 0 || m.SearchThreshold > 100 {
		return fmt.Errorf("match.search_threshold must be in [0, 100], got %d", m.SearchThreshold)
	}
	if m.SuggestionCutoff < 0 || m.SuggestionCutoff > 1 {
		return fmt.Errorf("match.suggestion_cutoff must be in [0, 1], got %f", m.SuggestionCutoff)
	}
	if m.MaxSuggestions < 0 {
		return fmt.Errorf("match.max_suggestions must be non-negative, got %d", m.MaxSuggestions)
	}
	if m.MinQueryLength < 1 {
		return fmt.Errorf("match.min_query_length must be positive, got %d", m.MinQueryLength)
	}

	if c.Cache.Capacity < 0 {
		return fmt.Errorf("cache.capacity must be non-negative, got %d", c.Cache.Capacity)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must be non-negative, got %v", c.Cache.TTL)
	}

	return nil
}
