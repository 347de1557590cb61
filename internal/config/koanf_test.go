// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Server.RequestTimeout != 10*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want 10s", cfg.Server.RequestTimeout)
	}
	if cfg.Catalog.Path != "data/movies.csv" {
		t.Errorf("Catalog.Path = %q, want data/movies.csv", cfg.Catalog.Path)
	}
	if cfg.Recommend.NumRecommendations != 10 {
		t.Errorf("Recommend.NumRecommendations = %d, want 10", cfg.Recommend.NumRecommendations)
	}
	if cfg.Recommend.MinGenreOverlap != 0.5 {
		t.Errorf("Recommend.MinGenreOverlap = %v, want 0.5", cfg.Recommend.MinGenreOverlap)
	}
	if cfg.Recommend.HighRatingThreshold != 7.0 {
		t.Errorf("Recommend.HighRatingThreshold = %v, want 7.0", cfg.Recommend.HighRatingThreshold)
	}
	if !cfg.Recommend.CacheEnabled || cfg.Recommend.CacheSize != 1024 {
		t.Errorf("Recommend cache = %v/%d, want true/1024", cfg.Recommend.CacheEnabled, cfg.Recommend.CacheSize)
	}
	if cfg.Encoder.Persistent() {
		t.Error("Encoder should be in-memory by default")
	}
	if cfg.Oracle.Enabled() {
		t.Error("Oracle should be disabled by default")
	}
	if cfg.Oracle.Timeout != 2*time.Second || cfg.Oracle.RequestsPerSecond != 50 || cfg.Oracle.Burst != 10 {
		t.Errorf("Oracle = %+v, want 2s/50/10", cfg.Oracle)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Security.RateLimitReqs != 100 || cfg.Security.RateLimitWindow != time.Minute {
		t.Errorf("rate limit = %d/%v, want 100/1m", cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json", cfg.Logging)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() = %v", err)
	}
}

// TestEnvTransformFunc verifies environment variable name transformations
func TestEnvTransformFunc(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"REQUEST_TIMEOUT", "server.request_timeout"},
		{"CATALOG_PATH", "catalog.path"},
		{"RECOMMEND_NUM", "recommend.num_recommendations"},
		{"RECOMMEND_MIN_GENRE_OVERLAP", "recommend.min_genre_overlap"},
		{"RECOMMEND_HIGH_RATING", "recommend.high_rating_threshold"},
		{"RECOMMEND_CACHE_TTL", "recommend.cache_ttl"},
		{"ENCODER_STORE_PATH", "encoder.store_path"},
		{"ORACLE_URL", "oracle.url"},
		{"ORACLE_RPS", "oracle.requests_per_second"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"log_format", "logging.format"},

		// Unmapped variables are skipped
		{"PATH", ""},
		{"HOME", ""},
		{"RECOMMEND", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := envTransformFunc(tt.input); got != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

// isolateConfigFile points CONFIG_PATH at a missing file and runs the test
// from an empty directory so no stray config.yaml is picked up.
func isolateConfigFile(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(ConfigPathEnvVar, filepath.Join(dir, "missing.yaml"))
	return dir
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolateConfigFile(t)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if !reflect.DeepEqual(cfg, defaultConfig()) {
		t.Errorf("LoadWithKoanf() = %+v, want defaults", cfg)
	}
}

func TestLoadWithKoanf_EnvOverrides(t *testing.T) {
	isolateConfigFile(t)

	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REQUEST_TIMEOUT", "3s")
	t.Setenv("CATALOG_PATH", "/srv/movies.csv")
	t.Setenv("RECOMMEND_NUM", "25")
	t.Setenv("RECOMMEND_MIN_GENRE_OVERLAP", "0.25")
	t.Setenv("RECOMMEND_CACHE_ENABLED", "false")
	t.Setenv("ORACLE_URL", "http://oracle.internal:9000")
	t.Setenv("ORACLE_RPS", "0")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("DISABLE_RATE_LIMIT", "true")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Server.RequestTimeout != 3*time.Second {
		t.Errorf("Server.RequestTimeout = %v, want 3s", cfg.Server.RequestTimeout)
	}
	if cfg.Catalog.Path != "/srv/movies.csv" {
		t.Errorf("Catalog.Path = %q", cfg.Catalog.Path)
	}
	if cfg.Recommend.NumRecommendations != 25 || cfg.Recommend.MinGenreOverlap != 0.25 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if cfg.Recommend.CacheEnabled {
		t.Error("Recommend.CacheEnabled = true, want false")
	}
	if !cfg.Oracle.Enabled() || cfg.Oracle.RequestsPerSecond != 0 {
		t.Errorf("Oracle = %+v", cfg.Oracle)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if !cfg.Security.RateLimitDisabled {
		t.Error("RateLimitDisabled = false, want true")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	dir := isolateConfigFile(t)

	path := filepath.Join(dir, "reelmatch.yaml")
	content := `
server:
  port: 7070
  shutdown_timeout: 20s
recommend:
  num_recommendations: 5
  high_rating_threshold: 8.5
security:
  cors_origins:
    - https://movies.example.com
logging:
  format: console
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	// env still wins over the file
	t.Setenv("RECOMMEND_NUM", "7")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want 7070", cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout != 20*time.Second {
		t.Errorf("Server.ShutdownTimeout = %v, want 20s", cfg.Server.ShutdownTimeout)
	}
	if cfg.Recommend.NumRecommendations != 7 {
		t.Errorf("Recommend.NumRecommendations = %d, want 7 (env override)", cfg.Recommend.NumRecommendations)
	}
	if cfg.Recommend.HighRatingThreshold != 8.5 {
		t.Errorf("Recommend.HighRatingThreshold = %v, want 8.5", cfg.Recommend.HighRatingThreshold)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"https://movies.example.com"}) {
		t.Errorf("CORSOrigins = %v", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
	// untouched keys keep their defaults
	if cfg.Catalog.Path != "data/movies.csv" {
		t.Errorf("Catalog.Path = %q, want default", cfg.Catalog.Path)
	}
}

func TestLoadWithKoanf_InvalidEnv(t *testing.T) {
	isolateConfigFile(t)
	t.Setenv("RECOMMEND_MIN_GENRE_OVERLAP", "1.5")

	_, err := LoadWithKoanf()
	if err == nil {
		t.Fatal("LoadWithKoanf() error = nil, want validation error")
	}
	if !strings.Contains(err.Error(), "RECOMMEND_MIN_GENRE_OVERLAP") {
		t.Errorf("error = %v, want it to name RECOMMEND_MIN_GENRE_OVERLAP", err)
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := isolateConfigFile(t)

	if got := findConfigFile(); got != "" {
		t.Errorf("findConfigFile() = %q, want empty", got)
	}

	if err := os.WriteFile(filepath.Join(dir, "config.yml"), []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	if got := findConfigFile(); got != "config.yml" {
		t.Errorf("findConfigFile() = %q, want config.yml", got)
	}

	explicit := filepath.Join(dir, "explicit.yaml")
	if err := os.WriteFile(explicit, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv(ConfigPathEnvVar, explicit)
	if got := findConfigFile(); got != explicit {
		t.Errorf("findConfigFile() = %q, want %q", got, explicit)
	}
}
