// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered with promauto at package init and exposed by the
API router at /metrics in Prometheus text format:

	curl http://localhost:8080/metrics

# Available Metrics

API Metrics:
  - reelmatch_api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - reelmatch_api_request_duration_seconds: Request latency (histogram)
  - reelmatch_api_active_requests: In-flight requests (gauge)
  - reelmatch_api_rate_limit_hits_total: Requests rejected by httprate

Recommendation Metrics:
  - reelmatch_recommendations_total: Queries by outcome
    Labels: outcome (found, unknown, invalid, error)
  - reelmatch_recommendation_duration_seconds: Ranking latency
  - reelmatch_recommendation_results: Result list length
  - reelmatch_recommend_cache_hits_total / _misses_total: Memo efficiency
  - reelmatch_recommend_oracle_errors_total: Missing predictions

Catalog Metrics:
  - reelmatch_catalog_movies: Movies loaded (gauge)
  - reelmatch_catalog_rows_dropped_total: Rows excluded at load
    Labels: reason (incomplete, malformed_numeric, duplicate_title)

Oracle Metrics:
  - reelmatch_oracle_requests_total: Calls by result
    Labels: result (success, failure, rejected, throttled)
  - reelmatch_oracle_request_duration_seconds: Call latency
  - reelmatch_circuit_breaker_state: 0=closed, 1=half-open, 2=open
  - reelmatch_circuit_breaker_consecutive_failures
  - reelmatch_circuit_breaker_transitions_total
    Labels: name, from, to

# Usage

	start := time.Now()
	// ... handle request ...
	metrics.RecordAPIRequest(r.Method, route, "200", time.Since(start))

The recommendation engine is wired through RecommendRecorder, which
satisfies recommend.Recorder without the engine importing Prometheus.

# Thread Safety

All functions are safe for concurrent use. Prometheus collectors use
atomic operations internally.
*/
package metrics
