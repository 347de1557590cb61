// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"strconv"
	"strings"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// Reason builds the explanation for a scored result. Clauses appear in a
// fixed order: genre match, same year, high rating, same director.
func Reason(input *catalog.Movie, r *Result) string {
	var b strings.Builder
	b.Grow(160)

	b.WriteString("Recommended because it shares ")
	b.WriteString(strconv.Itoa(r.OverlapPercent()))
	b.WriteString("% genre match with '")
	b.WriteString(input.Title)
	b.WriteString("'.")

	if r.SameYear {
		b.WriteString(" It was released in the same year (")
		b.WriteString(strconv.Itoa(input.Year))
		b.WriteString(").")
	}
	if r.HighRating {
		b.WriteString(" Also, it has a high rating of ")
		b.WriteString(FormatRating(r.Movie.Rating))
		b.WriteString(".")
	}
	if r.DirectorMatch {
		b.WriteString(" Moreover, it was directed by the same director (")
		b.WriteString(input.Director)
		b.WriteString(").")
	}
	return b.String()
}

// FormatRating renders a rating in its shortest exact decimal form, always
// keeping one fractional digit: 8.1 becomes "8.1" and 9 becomes "9.0".
func FormatRating(rating float64) string {
	s := strconv.FormatFloat(rating, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}
