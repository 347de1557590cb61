// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

// RecommendRecorder forwards recommendation engine measurements to the
// package-level Prometheus collectors.
type RecommendRecorder struct{}

// RecordRecommendation records one query outcome. Duration and result
// size are only observed for queries that ran the ranking.
func (RecommendRecorder) RecordRecommendation(outcome string, seconds float64, results int) {
	RecommendationsTotal.WithLabelValues(outcome).Inc()
	if outcome == "found" {
		RecommendationDuration.Observe(seconds)
		RecommendationResults.Observe(float64(results))
	}
}

// RecordCacheLookup records a memo hit or miss.
func (RecommendRecorder) RecordCacheLookup(hit bool) {
	if hit {
		RecommendCacheHits.Inc()
	} else {
		RecommendCacheMisses.Inc()
	}
}

// RecordOracleError counts a result whose prediction failed.
func (RecommendRecorder) RecordOracleError() {
	RecommendOracleErrors.Inc()
}
