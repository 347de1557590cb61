// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend ranks catalog movies by similarity to an input title and
// explains each pick in plain language.
//
// # Scoring
//
// Every catalog movie other than the input is a candidate. For each one the
// engine derives, into a per-query value that never touches the catalog:
//
//	genre_overlap  = |candidate.genres ∩ input.genres| / |input.genres|
//	same_year      = candidate.year == input.year
//	director_match = candidate.director == input.director
//	score          = 0.4*genre_overlap + 0.3*same_year + 0.2*director_match + 0.1*rating/10
//
// Candidates below MinGenreOverlap are discarded before sorting, even when a
// shared director or year would have earned them points. Survivors are
// stably sorted by score, then rating, then overlap (all descending) and the
// first NumRecommendations are kept.
//
// # Explanations
//
// Each result carries a reason assembled from fixed clauses: the genre match
// percentage (truncated, never rounded), then same year, high rating and same
// director when they apply, in that order.
//
// # Usage
//
//	engine, err := recommend.NewEngine(cat, recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//	results := engine.GetRecommendations("Inception", recommend.DefaultQuery())
//
// An unknown title yields an empty list, not an error.
//
// # Scoring Oracle
//
// An optional Oracle (for example an external rating model) may be attached
// with WithOracle. Its prediction is reported on each Result but takes no
// part in filtering or ordering.
//
// # Thread Safety
//
// The engine is safe for concurrent use. The catalog is read-only; the memo
// cache and counters are the only shared mutable state.
package recommend
