// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"sort"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// Score weights. They sum to 1 so the composite stays in [0, 1] for
// ratings on a 0-10 scale.
const (
	WeightGenreOverlap  = 0.4
	WeightSameYear      = 0.3
	WeightDirectorMatch = 0.2
	WeightRating        = 0.1

	// RatingScale normalizes ratings to [0, 1].
	RatingScale = 10.0
)

// GenreOverlap returns the fraction of input's genres that candidate shares.
// An input with no genres uses a denominator of 1, which yields 0.
func GenreOverlap(input, candidate catalog.GenreSet) float64 {
	denom := input.Len()
	if denom == 0 {
		denom = 1
	}
	return float64(input.Intersect(candidate)) / float64(denom)
}

// Score computes the composite similarity of candidate to input given a
// precomputed genre overlap.
func Score(overlap float64, sameYear, directorMatch bool, rating float64) float64 {
	return WeightGenreOverlap*overlap +
		WeightSameYear*indicator(sameYear) +
		WeightDirectorMatch*indicator(directorMatch) +
		WeightRating*(rating/RatingScale)
}

func indicator(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// evaluate scores one candidate against the input. ok is false when the
// candidate falls below the overlap threshold.
func evaluate(input, candidate *catalog.Movie, q Query) (Result, bool) {
	overlap := GenreOverlap(input.Genres, candidate.Genres)
	if overlap < q.MinGenreOverlap {
		return Result{}, false
	}

	sameYear := candidate.Year == input.Year
	directorMatch := candidate.Director == input.Director
	highRating := candidate.Rating >= q.HighRatingThreshold

	r := Result{
		Movie:         *candidate,
		GenreOverlap:  overlap,
		SameYear:      sameYear,
		DirectorMatch: directorMatch,
		HighRating:    highRating,
		Score:         Score(overlap, sameYear, directorMatch, candidate.Rating),
		Revenue:       FormatRevenue(candidate.Revenue),
	}
	r.Reason = Reason(input, &r)
	return r, true
}

// sortResults orders results by score, rating, then overlap, all
// descending. Remaining ties keep their catalog order.
func sortResults(results []Result) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := &results[i], &results[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.Movie.Rating != b.Movie.Rating {
			return a.Movie.Rating > b.Movie.Rating
		}
		return a.GenreOverlap > b.GenreOverlap
	})
}

// Rank scores every movie in cat against input and returns the top
// q.NumRecommendations. The input itself, matched by exact title, is never
// returned. Rank does not validate q; a non-positive count yields nil.
func Rank(cat *catalog.Catalog, input catalog.Movie, q Query) []Result {
	results, _, _ := rank(cat, &input, q, nil)
	return results
}

// rank returns the truncated ranking along with the number of candidates
// scored and the number that passed the filter. check, when non-nil, is
// polled periodically and aborts the scan when it returns false.
func rank(cat *catalog.Catalog, input *catalog.Movie, q Query, check func() bool) ([]Result, int, int) {
	if q.NumRecommendations <= 0 {
		return nil, 0, 0
	}

	var (
		eligible   []Result
		candidates int
		aborted    bool
	)
	cat.Each(func(m catalog.Movie) bool {
		if m.Title == input.Title {
			return true
		}
		candidates++
		if check != nil && candidates%checkInterval == 0 && !check() {
			aborted = true
			return false
		}
		if r, ok := evaluate(input, &m, q); ok {
			eligible = append(eligible, r)
		}
		return true
	})
	if aborted {
		return nil, candidates, len(eligible)
	}

	total := len(eligible)
	sortResults(eligible)
	if len(eligible) > q.NumRecommendations {
		eligible = eligible[:q.NumRecommendations]
	}
	return eligible, candidates, total
}

// checkInterval is how many candidates are scored between cancellation checks.
const checkInterval = 1024
