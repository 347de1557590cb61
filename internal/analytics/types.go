// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package analytics

import (
	"math"
	"strconv"
)

// GenreCount is the number of movies tagged with a genre.
type GenreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

// GenreRevenue is the mean revenue of movies sharing a genre combination.
type GenreRevenue struct {
	Genres      string  `json:"genres"`
	MeanRevenue float64 `json:"mean_revenue"`
	Movies      int     `json:"movies"`
}

// DirectorRevenue is the total revenue of a director's movies.
type DirectorRevenue struct {
	Director     string  `json:"director"`
	TotalRevenue float64 `json:"total_revenue"`
	Movies       int     `json:"movies"`
}

// YearStats aggregates the movies released in one year.
type YearStats struct {
	Year         int     `json:"year"`
	MeanRating   float64 `json:"mean_rating"`
	TotalRevenue float64 `json:"total_revenue"`
	Movies       int     `json:"movies"`
}

// YearTop is the leading movie of a year by some measure.
type YearTop struct {
	Year    int     `json:"year"`
	Title   string  `json:"title"`
	Rating  float64 `json:"rating"`
	Revenue float64 `json:"revenue"`
}

// Coefficient is a correlation value. NaN, produced when a variable has no
// variance, encodes as JSON null.
type Coefficient float64

// MarshalJSON implements json.Marshaler.
func (c Coefficient) MarshalJSON() ([]byte, error) {
	f := float64(c)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, f, 'f', -1, 64), nil
}

// CorrelationMatrix holds pairwise Pearson coefficients. Values[i][j]
// correlates Variables[i] with Variables[j].
type CorrelationMatrix struct {
	Variables []string        `json:"variables"`
	Values    [][]Coefficient `json:"values"`
}

// Get returns the coefficient for two named variables.
func (m CorrelationMatrix) Get(a, b string) (float64, bool) {
	i, j := -1, -1
	for k, v := range m.Variables {
		if v == a {
			i = k
		}
		if v == b {
			j = k
		}
	}
	if i < 0 || j < 0 {
		return 0, false
	}
	return float64(m.Values[i][j]), true
}

// DurationBucket summarizes ratings for a runtime band.
type DurationBucket struct {
	Label      string  `json:"label"`
	Movies     int     `json:"movies"`
	MeanRating float64 `json:"mean_rating"`
	MinRating  float64 `json:"min_rating"`
	MaxRating  float64 `json:"max_rating"`
}

// CatalogSummary holds catalog-wide totals.
type CatalogSummary struct {
	Movies       int     `json:"movies"`
	Genres       int     `json:"genres"`
	Directors    int     `json:"directors"`
	FirstYear    int     `json:"first_year"`
	LastYear     int     `json:"last_year"`
	MeanRating   float64 `json:"mean_rating"`
	TotalRevenue float64 `json:"total_revenue"`
}

// Report bundles every analytics view.
type Report struct {
	Summary         CatalogSummary    `json:"summary"`
	Genres          []GenreCount      `json:"genres"`
	GenreRevenue    []GenreRevenue    `json:"genre_revenue"`
	Directors       []DirectorRevenue `json:"directors"`
	Yearly          []YearStats       `json:"yearly"`
	TopRated        []YearTop         `json:"top_rated"`
	TopRevenue      []YearTop         `json:"top_revenue"`
	Correlation     CorrelationMatrix `json:"correlation"`
	DurationBuckets []DurationBucket  `json:"duration_buckets"`
}
