// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "HTTP_PORT"},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, "HTTP_TIMEOUT"},
		{"zero request timeout", func(c *Config) { c.Server.RequestTimeout = 0 }, "REQUEST_TIMEOUT"},
		{"negative shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = -time.Second }, "SHUTDOWN_TIMEOUT"},
		{"blank catalog path", func(c *Config) { c.Catalog.Path = "  " }, "CATALOG_PATH"},
		{"zero recommendations", func(c *Config) { c.Recommend.NumRecommendations = 0 }, "RECOMMEND_NUM"},
		{"too many recommendations", func(c *Config) { c.Recommend.NumRecommendations = 101 }, "RECOMMEND_NUM"},
		{"overlap above one", func(c *Config) { c.Recommend.MinGenreOverlap = 1.01 }, "RECOMMEND_MIN_GENRE_OVERLAP"},
		{"overlap NaN", func(c *Config) { c.Recommend.MinGenreOverlap = math.NaN() }, "RECOMMEND_MIN_GENRE_OVERLAP"},
		{"overlap bounds inclusive", func(c *Config) { c.Recommend.MinGenreOverlap = 1 }, ""},
		{"negative high rating", func(c *Config) { c.Recommend.HighRatingThreshold = -1 }, "RECOMMEND_HIGH_RATING"},
		{"cache size zero", func(c *Config) { c.Recommend.CacheSize = 0 }, "RECOMMEND_CACHE_SIZE"},
		{"cache size ignored when disabled", func(c *Config) {
			c.Recommend.CacheEnabled = false
			c.Recommend.CacheSize = 0
		}, ""},
		{"negative cache ttl", func(c *Config) { c.Recommend.CacheTTL = -time.Second }, "RECOMMEND_CACHE_TTL"},
		{"oracle valid", func(c *Config) { c.Oracle.URL = "https://oracle.example.com/" }, ""},
		{"oracle bad scheme", func(c *Config) { c.Oracle.URL = "ftp://oracle.example.com" }, "ORACLE_URL"},
		{"oracle with path", func(c *Config) { c.Oracle.URL = "http://oracle.example.com/v1" }, "ORACLE_URL"},
		{"oracle with query", func(c *Config) { c.Oracle.URL = "http://oracle.example.com?x=1" }, "ORACLE_URL"},
		{"oracle zero timeout", func(c *Config) {
			c.Oracle.URL = "http://oracle:9000"
			c.Oracle.Timeout = 0
		}, "ORACLE_TIMEOUT"},
		{"oracle negative rps", func(c *Config) {
			c.Oracle.URL = "http://oracle:9000"
			c.Oracle.RequestsPerSecond = -1
		}, "ORACLE_RPS"},
		{"oracle zero burst", func(c *Config) {
			c.Oracle.URL = "http://oracle:9000"
			c.Oracle.Burst = 0
		}, "ORACLE_BURST"},
		{"oracle settings ignored when disabled", func(c *Config) { c.Oracle.Timeout = 0 }, ""},
		{"no cors origins", func(c *Config) { c.Security.CORSOrigins = nil }, "CORS_ORIGINS"},
		{"rate limit zero", func(c *Config) { c.Security.RateLimitReqs = 0 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit window too short", func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, "RATE_LIMIT_WINDOW"},
		{"rate limit ignored when disabled", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"log level accepted by logger", func(c *Config) { c.Logging.Level = "WARNING" }, ""},
		{"disabled log level", func(c *Config) { c.Logging.Level = "disabled" }, ""},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
		{"empty log format", func(c *Config) { c.Logging.Format = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := defaultConfig()
			tt.modify(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error mentioning %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want it to mention %s", err, tt.wantErr)
			}
		})
	}
}

func TestServerConfigAddr(t *testing.T) {
	t.Parallel()

	tests := []struct {
		host string
		port int
		want string
	}{
		{"0.0.0.0", 8080, "0.0.0.0:8080"},
		{"", 3000, ":3000"},
		{"::1", 8080, "[::1]:8080"},
	}
	for _, tt := range tests {
		if got := (ServerConfig{Host: tt.host, Port: tt.port}).Addr(); got != tt.want {
			t.Errorf("Addr(%q, %d) = %q, want %q", tt.host, tt.port, got, tt.want)
		}
	}
}

func TestConfigString(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()
	cfg.Oracle.URL = "http://oracle:9000"
	got := cfg.String()
	for _, want := range []string{"addr=0.0.0.0:8080", "catalog=data/movies.csv", "oracle=true", "encoder_persistent=false"} {
		if !strings.Contains(got, want) {
			t.Errorf("String() = %q, missing %q", got, want)
		}
	}
}
