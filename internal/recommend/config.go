// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"time"
)

// MaxRecommendations caps NumRecommendations for a single query.
const MaxRecommendations = 100

// Config contains the engine defaults and memoization settings.
type Config struct {
	// NumRecommendations is the default maximum list length.
	// Default: 10.
	NumRecommendations int `json:"num_recommendations"`

	// MinGenreOverlap is the default minimum fraction of the input's genres a
	// candidate must share to be considered.
	// Default: 0.5.
	MinGenreOverlap float64 `json:"min_genre_overlap"`

	// HighRatingThreshold is the rating at or above which the reason mentions
	// a high rating.
	// Default: 7.0.
	HighRatingThreshold float64 `json:"high_rating_threshold"`

	// Cache controls memoization of ranked lists.
	Cache CacheConfig `json:"cache"`
}

// CacheConfig contains memoization parameters.
type CacheConfig struct {
	// Enabled turns the memo cache on.
	// Default: true.
	Enabled bool `json:"enabled"`

	// MaxEntries bounds the number of memoized queries.
	// Default: 1024.
	MaxEntries int `json:"max_entries"`

	// TTL expires entries after the given duration. Zero keeps entries until
	// evicted, which is safe because the catalog never changes.
	// Default: 0.
	TTL time.Duration `json:"ttl"`
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() *Config {
	return &Config{
		NumRecommendations:  10,
		MinGenreOverlap:     0.5,
		HighRatingThreshold: 7.0,
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 1024,
			TTL:        0,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if err := c.Query().Validate(); err != nil {
		return err
	}
	if c.Cache.Enabled && c.Cache.MaxEntries < 1 {
		return fmt.Errorf("cache.max_entries must be positive when cache is enabled, got %d", c.Cache.MaxEntries)
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must be non-negative, got %v", c.Cache.TTL)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// Query returns the default per-query parameters.
func (c *Config) Query() Query {
	return Query{
		NumRecommendations:  c.NumRecommendations,
		MinGenreOverlap:     c.MinGenreOverlap,
		HighRatingThreshold: c.HighRatingThreshold,
	}
}
