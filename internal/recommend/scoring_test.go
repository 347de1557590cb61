// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"math"
	"testing"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

func movie(title, director string, year int, rating float64, genres ...string) catalog.Movie {
	set := catalog.NewGenreSet(genres...)
	return catalog.Movie{
		Title:     title,
		Director:  director,
		Year:      year,
		Rating:    rating,
		Genres:    set,
		RawGenres: set.String(),
	}
}

func TestGenreOverlap(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     catalog.GenreSet
		candidate catalog.GenreSet
		want      float64
	}{
		{"identical", catalog.NewGenreSet("Action", "Drama"), catalog.NewGenreSet("Drama", "Action"), 1},
		{"half", catalog.NewGenreSet("Action", "Drama"), catalog.NewGenreSet("Action"), 0.5},
		{"superset candidate", catalog.NewGenreSet("Action"), catalog.NewGenreSet("Action", "Drama", "War"), 1},
		{"disjoint", catalog.NewGenreSet("Comedy"), catalog.NewGenreSet("Horror"), 0},
		{"empty input", catalog.GenreSet{}, catalog.NewGenreSet("Horror"), 0},
		{"three quarters", catalog.NewGenreSet("A", "B", "C", "D"), catalog.NewGenreSet("A", "B", "C"), 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := GenreOverlap(tt.input, tt.candidate); got != tt.want {
				t.Errorf("GenreOverlap() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScore(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		overlap       float64
		sameYear      bool
		directorMatch bool
		rating        float64
		want          float64
	}{
		{"all zero", 0, false, false, 0, 0},
		{"all max", 1, true, true, 10, 1},
		{"overlap only", 0.5, false, false, 0, 0.2},
		{"year only", 0, true, false, 0, 0.3},
		{"director only", 0, false, true, 0, 0.2},
		{"rating only", 0, false, false, 5, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Score(tt.overlap, tt.sameYear, tt.directorMatch, tt.rating)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Score() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRank_FilterBeforeRanking(t *testing.T) {
	t.Parallel()

	cat := catalog.New([]catalog.Movie{
		movie("A", "X", 2000, 9, "Action", "Drama"),
		movie("B", "Y", 2000, 5, "Action"),
		movie("C", "X", 1990, 7, "Comedy"),
	})
	input, _ := cat.Lookup("A")

	q := DefaultQuery()
	q.MinGenreOverlap = 0.5
	results := Rank(cat, input, q)

	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1: %+v", len(results), results)
	}
	got := results[0]
	if got.Movie.Title != "B" {
		t.Errorf("Title = %q, want B", got.Movie.Title)
	}
	if got.GenreOverlap != 0.5 {
		t.Errorf("GenreOverlap = %v, want 0.5", got.GenreOverlap)
	}
	if math.Abs(got.Score-0.55) > 1e-9 {
		t.Errorf("Score = %v, want 0.55", got.Score)
	}
	if !got.SameYear || got.DirectorMatch || got.HighRating {
		t.Errorf("flags = year:%v director:%v high:%v", got.SameYear, got.DirectorMatch, got.HighRating)
	}

	q.MinGenreOverlap = 0
	results = Rank(cat, input, q)
	if len(results) != 2 {
		t.Fatalf("with no threshold len(results) = %d, want 2", len(results))
	}
}

func TestRank_FullTiesKeepCatalogOrder(t *testing.T) {
	t.Parallel()

	cat := catalog.New([]catalog.Movie{
		movie("Input", "D", 2010, 6, "A", "B"),
		movie("First", "G", 2003, 5.0, "A"),
		movie("Second", "H", 2004, 5.0, "A"),
		movie("Third", "I", 2005, 5.0, "A"),
		movie("Best", "D", 2010, 1, "A", "B"),
	})
	input, _ := cat.Lookup("Input")

	results := Rank(cat, input, DefaultQuery())

	want := []string{"Best", "First", "Second", "Third"}
	if len(results) != len(want) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(want))
	}
	for i, r := range results {
		if r.Movie.Title != want[i] {
			t.Errorf("results[%d] = %q, want %q", i, r.Movie.Title, want[i])
		}
	}
}

func TestSortResults_TieBreakKeys(t *testing.T) {
	t.Parallel()

	mk := func(title string, score, rating, overlap float64) Result {
		return Result{
			Movie:        catalog.Movie{Title: title, Rating: rating},
			Score:        score,
			GenreOverlap: overlap,
		}
	}
	results := []Result{
		mk("low-score", 0.2, 9, 1),
		mk("tie-low-rating", 0.5, 6, 1),
		mk("tie-high-rating-low-overlap", 0.5, 8, 0.5),
		mk("tie-high-rating-high-overlap", 0.5, 8, 1),
		mk("tie-high-rating-low-overlap-2", 0.5, 8, 0.5),
		mk("top", 0.9, 1, 0.5),
	}

	sortResults(results)

	want := []string{
		"top",
		"tie-high-rating-high-overlap",
		"tie-high-rating-low-overlap",
		"tie-high-rating-low-overlap-2",
		"tie-low-rating",
		"low-score",
	}
	for i, r := range results {
		if r.Movie.Title != want[i] {
			t.Errorf("results[%d] = %q, want %q", i, r.Movie.Title, want[i])
		}
	}
}

func TestRank_Properties(t *testing.T) {
	t.Parallel()

	var movies []catalog.Movie
	genres := []string{"Action", "Drama", "Comedy", "Horror", "Sci-Fi"}
	directors := []string{"X", "Y", "Z"}
	for i := 0; i < 60; i++ {
		g := []string{genres[i%len(genres)]}
		if i%3 == 0 {
			g = append(g, genres[(i+1)%len(genres)])
		}
		if i%7 == 0 {
			g = append(g, genres[(i+2)%len(genres)])
		}
		movies = append(movies, movie(
			"Movie "+string(rune('A'+i%26))+string(rune('a'+i/26)),
			directors[i%len(directors)],
			2000+i%5,
			float64(i%11),
			g...,
		))
	}
	cat := catalog.New(movies)

	for _, minOverlap := range []float64{0, 0.3, 0.5, 1} {
		for _, n := range []int{1, 5, 10, 100} {
			q := Query{NumRecommendations: n, MinGenreOverlap: minOverlap, HighRatingThreshold: 7}
			cat.Each(func(input catalog.Movie) bool {
				results := Rank(cat, input, q)
				if len(results) > n {
					t.Fatalf("len = %d > n = %d", len(results), n)
				}
				for i, r := range results {
					if r.Movie.Title == input.Title {
						t.Fatalf("input %q returned in its own results", input.Title)
					}
					if r.GenreOverlap < 0 || r.GenreOverlap > 1 {
						t.Fatalf("overlap %v out of range", r.GenreOverlap)
					}
					if r.Score < 0 || r.Score > 1 {
						t.Fatalf("score %v out of range", r.Score)
					}
					if r.GenreOverlap < minOverlap {
						t.Fatalf("overlap %v below threshold %v", r.GenreOverlap, minOverlap)
					}
					if i > 0 && less(&results[i-1], &r) {
						t.Fatalf("results not ordered at %d: %+v then %+v", i, results[i-1], r)
					}
				}
				return true
			})
		}
	}
}

// less reports whether a sorts strictly before b is violated, i.e. a < b
// lexicographically on (score, rating, overlap).
func less(a, b *Result) bool {
	if a.Score != b.Score {
		return a.Score < b.Score
	}
	if a.Movie.Rating != b.Movie.Rating {
		return a.Movie.Rating < b.Movie.Rating
	}
	return a.GenreOverlap < b.GenreOverlap
}

func TestRank_NonPositiveCount(t *testing.T) {
	t.Parallel()

	cat := catalog.New([]catalog.Movie{
		movie("A", "X", 2000, 9, "Action"),
		movie("B", "X", 2000, 9, "Action"),
	})
	input, _ := cat.Lookup("A")
	if got := Rank(cat, input, Query{NumRecommendations: 0}); len(got) != 0 {
		t.Errorf("Rank(n=0) = %v, want empty", got)
	}
}

func TestRank_DoesNotMutateCatalog(t *testing.T) {
	t.Parallel()

	cat := catalog.New([]catalog.Movie{
		movie("A", "X", 2000, 9, "Action"),
		movie("B", "X", 2000, 9, "Action"),
	})
	before := cat.Movies()
	input, _ := cat.Lookup("A")
	results := Rank(cat, input, DefaultQuery())
	results[0].Movie.Title = "changed"

	after := cat.Movies()
	for i := range before {
		if before[i].Title != after[i].Title {
			t.Fatalf("catalog mutated: %q != %q", before[i].Title, after[i].Title)
		}
	}
}
