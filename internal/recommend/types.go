// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

var (
	// ErrInvalidRequest is returned for out-of-range query parameters.
	ErrInvalidRequest = errors.New("invalid recommendation request")

	// ErrNilCatalog is returned by NewEngine when no catalog is supplied.
	ErrNilCatalog = errors.New("recommend: catalog is required")
)

// Query holds the tunable parameters of one ranking.
type Query struct {
	NumRecommendations  int     `json:"num_recommendations"`
	MinGenreOverlap     float64 `json:"min_genre_overlap"`
	HighRatingThreshold float64 `json:"high_rating_threshold"`
}

// DefaultQuery returns the standard parameters: 10 results, at least half
// the genres shared, and 7.0 as the high-rating mark.
func DefaultQuery() Query {
	return DefaultConfig().Query()
}

// Validate checks that the parameters are in the range Recommend accepts.
// GetRecommendations does not call it.
func (q Query) Validate() error {
	if q.NumRecommendations < 1 || q.NumRecommendations > MaxRecommendations {
		return fmt.Errorf("%w: num_recommendations must be in [1, %d], got %d",
			ErrInvalidRequest, MaxRecommendations, q.NumRecommendations)
	}
	if math.IsNaN(q.MinGenreOverlap) || q.MinGenreOverlap < 0 || q.MinGenreOverlap > 1 {
		return fmt.Errorf("%w: min_genre_overlap must be in [0, 1], got %v", ErrInvalidRequest, q.MinGenreOverlap)
	}
	if math.IsNaN(q.HighRatingThreshold) || q.HighRatingThreshold < 0 {
		return fmt.Errorf("%w: high_rating_threshold must be non-negative, got %v", ErrInvalidRequest, q.HighRatingThreshold)
	}
	return nil
}

// cacheKey identifies a memoized ranking.
func (q Query) cacheKey(title string) string {
	return strconv.Quote(title) + ":" +
		strconv.Itoa(q.NumRecommendations) + ":" +
		strconv.FormatFloat(q.MinGenreOverlap, 'g', -1, 64) + ":" +
		strconv.FormatFloat(q.HighRatingThreshold, 'g', -1, 64)
}

// Result is one recommended movie.
type Result struct {
	Movie catalog.Movie `json:"movie"`

	// GenreOverlap is the fraction of the input's genres this movie shares, in [0, 1].
	GenreOverlap  float64 `json:"genre_overlap"`
	SameYear      bool    `json:"same_year"`
	DirectorMatch bool    `json:"director_match"`
	HighRating    bool    `json:"high_rating"`

	// Score is the weighted composite used for ordering.
	Score float64 `json:"score"`

	// Revenue is the movie's revenue formatted for display.
	Revenue string `json:"revenue"`

	// Reason explains the recommendation.
	Reason string `json:"reason"`

	// Predicted is the oracle's rating estimate when an oracle is
	// configured. It does not influence ranking.
	Predicted *float64 `json:"predicted_rating,omitempty"`
}

// OverlapPercent returns the genre overlap as a truncated whole percentage.
func (r Result) OverlapPercent() int {
	return int(r.GenreOverlap * 100)
}

// Request is the hosting-layer input to Engine.Recommend. Nil parameters
// fall back to the engine defaults.
type Request struct {
	Title               string   `json:"title"`
	NumRecommendations  *int     `json:"num_recommendations,omitempty"`
	MinGenreOverlap     *float64 `json:"min_genre_overlap,omitempty"`
	HighRatingThreshold *float64 `json:"high_rating_threshold,omitempty"`
	RequestID           string   `json:"request_id,omitempty"`
}

// Response is the output of Engine.Recommend.
type Response struct {
	// Title echoes the requested title.
	Title string `json:"title"`

	// Found reports whether the title exists in the catalog. An unknown
	// title yields Found=false and no items.
	Found bool `json:"found"`

	Items []Result `json:"items"`

	// Query holds the parameters actually applied.
	Query Query `json:"query"`

	// Candidates is the number of movies scored (catalog size minus the input).
	Candidates int `json:"candidates"`

	// Eligible is the number of candidates that passed the overlap filter.
	Eligible int `json:"eligible"`

	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains information about a recommendation response.
type ResponseMetadata struct {
	RequestID   string    `json:"request_id,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
	LatencyMS   int64     `json:"latency_ms"`
	CacheHit    bool      `json:"cache_hit"`
}

// Stats is a snapshot of engine counters.
type Stats struct {
	Requests     int64 `json:"requests"`
	UnknownTitle int64 `json:"unknown_title"`
	CacheHits    int64 `json:"cache_hits"`
	CacheMisses  int64 `json:"cache_misses"`
	CacheSize    int   `json:"cache_size"`
	OracleErrors int64 `json:"oracle_errors"`
	CatalogSize  int   `json:"catalog_size"`
}
