// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package main is the entry point for the Reelmatch server.

Reelmatch loads a movie catalog from CSV once at startup and serves
content-based recommendations and catalog analytics over HTTP.

# Application Architecture

	RootSupervisor ("reelmatch")
	├── MaintenanceSupervisor ("maintenance-layer")
	│   └── Cache sweeper (when RECOMMEND_CACHE_TTL > 0)
	└── APISupervisor ("api-layer")
	    └── HTTP server

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config file and environment
 2. Logging: zerolog with JSON or console output
 3. Catalog: CSV load, dropped rows counted per reason
 4. Encoder: in memory, or persisted in BadgerDB when ENCODER_STORE_PATH is set
 5. Oracle: optional remote scorer behind a circuit breaker (ORACLE_URL)
 6. Engine: recommendation engine with memoization
 7. HTTP: chi router with the form pages, JSON API and /metrics
 8. Supervisor tree: suture v4

A catalog that cannot be read is fatal. Everything after startup is
served from memory.

# Configuration

Priority: environment variables > config file > defaults.

	# Server
	HTTP_HOST=0.0.0.0
	HTTP_PORT=8080
	HTTP_TIMEOUT=30s             # read/write timeout
	REQUEST_TIMEOUT=10s          # per-handler deadline
	SHUTDOWN_TIMEOUT=10s

	# Catalog and engine
	CATALOG_PATH=data/movies.csv
	RECOMMEND_NUM=10
	RECOMMEND_MIN_GENRE_OVERLAP=0.5
	RECOMMEND_HIGH_RATING=7.0
	RECOMMEND_CACHE_ENABLED=true
	RECOMMEND_CACHE_SIZE=1024
	RECOMMEND_CACHE_TTL=0

	# Optional
	ENCODER_STORE_PATH=          # BadgerDB directory
	ORACLE_URL=                  # remote scoring oracle
	ORACLE_TIMEOUT=2s
	ORACLE_RPS=50
	ORACLE_BURST=10

	# Security
	CORS_ORIGINS=*
	RATE_LIMIT_REQUESTS=100
	RATE_LIMIT_WINDOW=1m
	DISABLE_RATE_LIMIT=false

	# Logging
	LOG_LEVEL=info
	LOG_FORMAT=json
	LOG_CALLER=false

A YAML file with the same keys is read from CONFIG_PATH or ./config.yaml.

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops
accepting connections and drains in-flight requests within
SHUTDOWN_TIMEOUT, then the encoder store is closed.

# Example Usage

	export CATALOG_PATH=./movies.csv
	export LOG_FORMAT=console
	./reelmatch

	curl 'http://localhost:8080/api/v1/recommendations?title=Alien&n=5'
*/
package main
