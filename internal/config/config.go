// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from defaults, an
// optional config file, and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
	Encoder   EncoderConfig   `koanf:"encoder"`
	Oracle    OracleConfig    `koanf:"oracle"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`

	// Timeout bounds reading a request and writing a response.
	// Default: 30s
	Timeout time.Duration `koanf:"timeout"`

	// RequestTimeout bounds a single handler, including the candidate scan.
	// Default: 10s
	RequestTimeout time.Duration `koanf:"request_timeout"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	// Default: 10s
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// CatalogConfig locates the movie catalog CSV.
type CatalogConfig struct {
	Path string `koanf:"path"`
}

// RecommendConfig holds the engine defaults applied when a request leaves a
// parameter unset.
type RecommendConfig struct {
	NumRecommendations  int     `koanf:"num_recommendations"`
	MinGenreOverlap     float64 `koanf:"min_genre_overlap"`
	HighRatingThreshold float64 `koanf:"high_rating_threshold"`

	CacheEnabled bool `koanf:"cache_enabled"`
	CacheSize    int  `koanf:"cache_size"`

	// CacheTTL expires memoized rankings. Zero keeps them until evicted.
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// EncoderConfig controls persistence of the id encoder state.
type EncoderConfig struct {
	// StorePath is a BadgerDB directory. Empty keeps ids in memory only.
	StorePath string `koanf:"store_path"`
}

// Persistent reports whether encoder ids survive restarts.
func (e EncoderConfig) Persistent() bool {
	return e.StorePath != ""
}

// OracleConfig configures the optional remote scoring oracle.
type OracleConfig struct {
	// URL is the oracle base URL. Empty disables the oracle.
	URL string `koanf:"url"`

	Timeout           time.Duration `koanf:"timeout"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	Burst             int           `koanf:"burst"`
}

// Enabled reports whether an oracle URL is configured.
func (o OracleConfig) Enabled() bool {
	return o.URL != ""
}

// SecurityConfig holds CORS and rate limiting settings for the JSON API.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging configuration.
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

// Load reads configuration from all sources in priority order:
//  1. Built-in defaults
//  2. Config file (config.yaml if exists, or path specified in CONFIG_PATH env var)
//  3. Environment variables
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}

// String summarizes the effective configuration for startup logs.
func (c *Config) String() string {
	return fmt.Sprintf("addr=%s catalog=%s oracle=%t encoder_persistent=%t",
		c.Server.Addr(), c.Catalog.Path, c.Oracle.Enabled(), c.Encoder.Persistent())
}
