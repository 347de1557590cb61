// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/tomtom215/reelmatch/internal/logging"
)

// Bounds shared by the validators below.
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour

	maxRecommendations = 100
	maxCacheSize       = 1 << 20
)

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that every section holds usable values.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateCatalog,
		c.validateRecommend,
		c.validateOracle,
		c.validateSecurity,
		c.validateLogging,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	return nil
}

// validateRecommend applies the same bounds as recommend.Config.Validate,
// reported by env var name.
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.NumRecommendations < 1 || r.NumRecommendations > maxRecommendations {
		return fmt.Errorf("RECOMMEND_NUM must be between 1 and %d", maxRecommendations)
	}
	if math.IsNaN(r.MinGenreOverlap) || r.MinGenreOverlap < 0 || r.MinGenreOverlap > 1 {
		return fmt.Errorf("RECOMMEND_MIN_GENRE_OVERLAP must be between 0 and 1")
	}
	if math.IsNaN(r.HighRatingThreshold) || r.HighRatingThreshold < 0 {
		return fmt.Errorf("RECOMMEND_HIGH_RATING must be non-negative")
	}
	if r.CacheEnabled && (r.CacheSize < 1 || r.CacheSize > maxCacheSize) {
		return fmt.Errorf("RECOMMEND_CACHE_SIZE must be between 1 and %d when the cache is enabled", maxCacheSize)
	}
	if r.CacheTTL < 0 {
		return fmt.Errorf("RECOMMEND_CACHE_TTL must not be negative")
	}
	return nil
}

// validateOracle validates oracle settings only when an oracle URL is set.
func (c *Config) validateOracle() error {
	if !c.Oracle.Enabled() {
		return nil
	}
	if err := validateHTTPURL(c.Oracle.URL, "ORACLE_URL"); err != nil {
		return fmt.Errorf("ORACLE_URL is invalid: %w", err)
	}
	if c.Oracle.Timeout <= 0 {
		return fmt.Errorf("ORACLE_TIMEOUT must be positive")
	}
	if c.Oracle.RequestsPerSecond < 0 {
		return fmt.Errorf("ORACLE_RPS must not be negative (0 disables throttling)")
	}
	if c.Oracle.RequestsPerSecond > 0 && c.Oracle.Burst < 1 {
		return fmt.Errorf("ORACLE_BURST must be at least 1 when ORACLE_RPS is set")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin (use * to allow all)")
	}
	return c.validateRateLimits()
}

func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error, fatal, panic, disabled")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
