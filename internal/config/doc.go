// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package config provides centralized configuration management for Reelmatch.

Configuration is layered with Koanf v2: struct defaults, then an optional YAML
file, then environment variables. Only the variables listed below are read;
anything else in the environment is ignored.

# Config File

The file is read from CONFIG_PATH if set and present, otherwise from the first
of config.yaml, config.yml, /etc/reelmatch/config.yaml. Keys use the koanf
struct tags:

	server:
	  port: 8080
	  request_timeout: 10s
	catalog:
	  path: /data/movies.csv
	recommend:
	  num_recommendations: 10
	  min_genre_overlap: 0.5
	security:
	  cors_origins: ["https://movies.example.com"]

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - REQUEST_TIMEOUT: Per-request handler timeout (default: 10s)
  - SHUTDOWN_TIMEOUT: Graceful shutdown bound (default: 10s)

Catalog and engine:
  - CATALOG_PATH: Movie CSV (default: data/movies.csv)
  - RECOMMEND_NUM: Default list length, 1..100 (default: 10)
  - RECOMMEND_MIN_GENRE_OVERLAP: Default overlap threshold, 0..1 (default: 0.5)
  - RECOMMEND_HIGH_RATING: High rating threshold (default: 7.0)
  - RECOMMEND_CACHE_ENABLED: Memoize ranked lists (default: true)
  - RECOMMEND_CACHE_SIZE: Memo capacity (default: 1024)
  - RECOMMEND_CACHE_TTL: Memo expiry, 0 for none (default: 0)
  - ENCODER_STORE_PATH: BadgerDB directory for stable ids (default: in-memory)

Scoring oracle:
  - ORACLE_URL: Base URL; empty disables the oracle
  - ORACLE_TIMEOUT: Per-call timeout (default: 2s)
  - ORACLE_RPS: Outbound rate, 0 for unlimited (default: 50)
  - ORACLE_BURST: Rate limiter burst (default: 10)

Security:
  - CORS_ORIGINS: Comma-separated origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per client (default: 100)
  - RATE_LIMIT_WINDOW: Rate limit window (default: 1m)
  - DISABLE_RATE_LIMIT: Turn off API rate limiting (default: false)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error, fatal, panic, disabled (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include caller file:line (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	srv := &http.Server{Addr: cfg.Server.Addr()}

# Validation

Load validates every section and names the offending variable in the error.
Oracle settings are only validated when ORACLE_URL is set, and rate limit
bounds are skipped when DISABLE_RATE_LIMIT is true.

# Thread Safety

Config is immutable after Load() and safe for concurrent reads.
*/
package config
