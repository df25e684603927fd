// Reelmatch - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateAPI(); err != nil {
		return err
	}

	if err := c.validateData(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateCache(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %v", c.Server.ShutdownTimeout)
	}
	return nil
}

func (c *Config) validateAPI() error {
	if c.API.MaxPageSize < 1 {
		return fmt.Errorf("API_MAX_PAGE_SIZE must be at least 1, got %d", c.API.MaxPageSize)
	}
	if c.API.DefaultPageSize < 1 || c.API.DefaultPageSize > c.API.MaxPageSize {
		return fmt.Errorf("API_DEFAULT_PAGE_SIZE must be between 1 and %d, got %d",
			c.API.MaxPageSize, c.API.DefaultPageSize)
	}
	if c.API.MaxSearchLimit < 1 {
		return fmt.Errorf("API_MAX_SEARCH_LIMIT must be at least 1, got %d", c.API.MaxSearchLimit)
	}
	if c.API.DefaultSearchLimit < 1 || c.API.DefaultSearchLimit > c.API.MaxSearchLimit {
		return fmt.Errorf("API_DEFAULT_SEARCH_LIMIT must be between 1 and %d, got %d",
			c.API.MaxSearchLimit, c.API.DefaultSearchLimit)
	}
	if c.API.MaxRecommendations < 1 {
		return fmt.Errorf("API_MAX_RECOMMENDATIONS must be at least 1, got %d", c.API.MaxRecommendations)
	}
	return nil
}

// validateData validates catalog sources and the initialization strategy
func (c *Config) validateData() error {
	if strings.TrimSpace(c.Data.MoviesPath) == "" {
		return fmt.Errorf("MOVIES_CSV is required")
	}
	if strings.TrimSpace(c.Data.CreditsPath) == "" {
		return fmt.Errorf("CREDITS_CSV is required")
	}

	switch c.Data.Strategy {
	case StrategySnapshot:
		if strings.TrimSpace(c.Data.SnapshotDir) == "" {
			return fmt.Errorf("SNAPSHOT_DIR is required when INIT_STRATEGY=%s", StrategySnapshot)
		}
	case StrategyRebuild:
	default:
		return fmt.Errorf("INIT_STRATEGY must be one of: %s, %s", StrategySnapshot, StrategyRebuild)
	}

	if c.Data.Watch {
		if c.Data.WatchDebounce <= 0 {
			return fmt.Errorf("DATA_WATCH_DEBOUNCE must be positive when DATA_WATCH=true")
		}
		if c.Data.WatchFailureThreshold == 0 {
			return fmt.Errorf("DATA_WATCH_FAILURE_THRESHOLD must be at least 1 when DATA_WATCH=true")
		}
		if c.Data.WatchCooldown <= 0 {
			return fmt.Errorf("DATA_WATCH_COOLDOWN must be positive when DATA_WATCH=true")
		}
	}
	return nil
}

// validateRecommend validates matching thresholds and ranking size
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.TopK < 1 {
		return fmt.Errorf("RECOMMEND_TOP_K must be at least 1, got %d", r.TopK)
	}
	if r.TopK > c.API.MaxRecommendations {
		return fmt.Errorf("RECOMMEND_TOP_K must not exceed API_MAX_RECOMMENDATIONS (%d), got %d",
			c.API.MaxRecommendations, r.TopK)
	}
	if r.ResolveThreshold < 0 || r.ResolveThreshold > 100 {
		return fmt.Errorf("RECOMMEND_RESOLVE_THRESHOLD must be between 0 and 100, got %d", r.ResolveThreshold)
	}
	if r.SuggestionCutoff < 0 || r.SuggestionCutoff > 1 {
		return fmt.Errorf("RECOMMEND_SUGGESTION_CUTOFF must be between 0 and 1, got %g", r.SuggestionCutoff)
	}
	if r.MaxSuggestions < 0 {
		return fmt.Errorf("RECOMMEND_MAX_SUGGESTIONS must be non-negative, got %d", r.MaxSuggestions)
	}
	if r.SearchThreshold < 0 || r.SearchThreshold > 100 {
		return fmt.Errorf("RECOMMEND_SEARCH_THRESHOLD must be between 0 and 100, got %d", r.SearchThreshold)
	}
	if r.MinSearchQueryLen < 1 {
		return fmt.Errorf("RECOMMEND_MIN_SEARCH_QUERY_LEN must be at least 1, got %d", r.MinSearchQueryLen)
	}
	return nil
}

func (c *Config) validateCache() error {
	if c.Cache.Capacity < 0 {
		return fmt.Errorf("CACHE_CAPACITY must be non-negative, got %d", c.Cache.Capacity)
	}
	if c.Cache.Capacity > 0 && c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive when caching is enabled")
	}
	return nil
}

// validateSecurity validates CORS and rate limiting
func (c *Config) validateSecurity() error {
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("RATE_LIMIT_WINDOW must be positive")
		}
	}

	if c.Server.Environment == "production" {
		for _, origin := range c.Security.CORSOrigins {
			if origin == "*" {
				return fmt.Errorf("CORS_ORIGINS must not contain '*' when ENVIRONMENT=production")
			}
		}
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
