// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig().Validate() error = %v", err)
	}
	q := cfg.Query()
	if q.NumRecommendations != 10 || q.MinGenreOverlap != 0.5 || q.HighRatingThreshold != 7.0 {
		t.Errorf("Query() = %+v", q)
	}
	if q != DefaultQuery() {
		t.Errorf("DefaultQuery() = %+v, want %+v", DefaultQuery(), q)
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"zero count", func(c *Config) { c.NumRecommendations = 0 }, true},
		{"count above max", func(c *Config) { c.NumRecommendations = MaxRecommendations + 1 }, true},
		{"count at max", func(c *Config) { c.NumRecommendations = MaxRecommendations }, false},
		{"overlap above one", func(c *Config) { c.MinGenreOverlap = 1.5 }, true},
		{"overlap NaN", func(c *Config) { c.MinGenreOverlap = math.NaN() }, true},
		{"overlap zero", func(c *Config) { c.MinGenreOverlap = 0 }, false},
		{"negative threshold", func(c *Config) { c.HighRatingThreshold = -1 }, true},
		{"cache without entries", func(c *Config) { c.Cache.MaxEntries = 0 }, true},
		{"disabled cache without entries", func(c *Config) { c.Cache.Enabled = false; c.Cache.MaxEntries = 0 }, false},
		{"negative ttl", func(c *Config) { c.Cache.TTL = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestQuery_ValidateWrapsSentinel(t *testing.T) {
	t.Parallel()

	err := Query{NumRecommendations: -1}.Validate()
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("error = %v, want ErrInvalidRequest", err)
	}
}

func TestConfig_Clone(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	clone := cfg.Clone()
	clone.NumRecommendations = 3
	clone.Cache.MaxEntries = 1
	if cfg.NumRecommendations != 10 || cfg.Cache.MaxEntries != 1024 {
		t.Errorf("Clone shares state with original: %+v", cfg)
	}
}

func TestQuery_CacheKeyDistinguishesParameters(t *testing.T) {
	t.Parallel()

	base := DefaultQuery()
	keys := map[string]bool{base.cacheKey("Alien"): true}
	variants := []Query{
		{NumRecommendations: 5, MinGenreOverlap: 0.5, HighRatingThreshold: 7},
		{NumRecommendations: 10, MinGenreOverlap: 0.25, HighRatingThreshold: 7},
		{NumRecommendations: 10, MinGenreOverlap: 0.5, HighRatingThreshold: 8},
	}
	for _, v := range variants {
		k := v.cacheKey("Alien")
		if keys[k] {
			t.Errorf("cacheKey collision for %+v", v)
		}
		keys[k] = true
	}
	if base.cacheKey("Alien") == base.cacheKey("Aliens") {
		t.Error("cacheKey ignores title")
	}
}
