// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package analytics

import (
	"math"
	"sort"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// Correlation variable names.
const (
	VarRating   = "rating"
	VarRevenue  = "revenue"
	VarDuration = "duration"
	VarYear     = "year"
)

// Duration bucket labels. Bands are right-inclusive: (0,90], (90,120],
// (120,150], (150,300].
var durationBands = []struct {
	label    string
	low, max int
}{
	{"<90 min", 0, 90},
	{"90-120 min", 90, 120},
	{"120-150 min", 120, 150},
	{">150 min", 150, 300},
}

// truncate returns at most limit items; limit <= 0 means no limit.
func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}

// GenreFrequency counts the movies tagged with each genre, most common first.
// Equal counts are ordered by genre name.
func GenreFrequency(cat *catalog.Catalog, limit int) []GenreCount {
	counts := make(map[string]int)
	cat.Each(func(m catalog.Movie) bool {
		for _, g := range m.Genres.Sorted() {
			counts[g]++
		}
		return true
	})

	out := make([]GenreCount, 0, len(counts))
	for g, n := range counts {
		out = append(out, GenreCount{Genre: g, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Genre < out[j].Genre
	})
	return truncate(out, limit)
}

// RevenueByGenre averages revenue per genre combination as written in the
// source, highest first.
func RevenueByGenre(cat *catalog.Catalog, limit int) []GenreRevenue {
	type acc struct {
		sum float64
		n   int
	}
	groups := make(map[string]*acc)
	cat.Each(func(m catalog.Movie) bool {
		a := groups[m.RawGenres]
		if a == nil {
			a = &acc{}
			groups[m.RawGenres] = a
		}
		a.sum += m.Revenue
		a.n++
		return true
	})

	out := make([]GenreRevenue, 0, len(groups))
	for g, a := range groups {
		out = append(out, GenreRevenue{Genres: g, MeanRevenue: a.sum / float64(a.n), Movies: a.n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].MeanRevenue != out[j].MeanRevenue {
			return out[i].MeanRevenue > out[j].MeanRevenue
		}
		return out[i].Genres < out[j].Genres
	})
	return truncate(out, limit)
}

// TopDirectorsByRevenue sums revenue per director, highest first.
func TopDirectorsByRevenue(cat *catalog.Catalog, limit int) []DirectorRevenue {
	totals := make(map[string]*DirectorRevenue)
	cat.Each(func(m catalog.Movie) bool {
		d := totals[m.Director]
		if d == nil {
			d = &DirectorRevenue{Director: m.Director}
			totals[m.Director] = d
		}
		d.TotalRevenue += m.Revenue
		d.Movies++
		return true
	})

	out := make([]DirectorRevenue, 0, len(totals))
	for _, d := range totals {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalRevenue != out[j].TotalRevenue {
			return out[i].TotalRevenue > out[j].TotalRevenue
		}
		return out[i].Director < out[j].Director
	})
	return truncate(out, limit)
}

// YearlyPerformance reports mean rating and total revenue per release year,
// oldest first.
func YearlyPerformance(cat *catalog.Catalog) []YearStats {
	years := make(map[int]*YearStats)
	ratingSums := make(map[int]float64)
	cat.Each(func(m catalog.Movie) bool {
		y := years[m.Year]
		if y == nil {
			y = &YearStats{Year: m.Year}
			years[m.Year] = y
		}
		y.Movies++
		y.TotalRevenue += m.Revenue
		ratingSums[m.Year] += m.Rating
		return true
	})

	out := make([]YearStats, 0, len(years))
	for year, y := range years {
		y.MeanRating = ratingSums[year] / float64(y.Movies)
		out = append(out, *y)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// TopByRatingPerYear returns the highest-rated movie of each year. The
// first movie in load order wins ties.
func TopByRatingPerYear(cat *catalog.Catalog) []YearTop {
	return topPerYear(cat, func(m *catalog.Movie) float64 { return m.Rating })
}

// TopByRevenuePerYear returns the highest-grossing movie of each year. The
// first movie in load order wins ties.
func TopByRevenuePerYear(cat *catalog.Catalog) []YearTop {
	return topPerYear(cat, func(m *catalog.Movie) float64 { return m.Revenue })
}

func topPerYear(cat *catalog.Catalog, key func(*catalog.Movie) float64) []YearTop {
	best := make(map[int]catalog.Movie)
	cat.Each(func(m catalog.Movie) bool {
		cur, ok := best[m.Year]
		if !ok || key(&m) > key(&cur) {
			best[m.Year] = m
		}
		return true
	})

	out := make([]YearTop, 0, len(best))
	for year, m := range best {
		out = append(out, YearTop{Year: year, Title: m.Title, Rating: m.Rating, Revenue: m.Revenue})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// Correlation computes the Pearson correlation matrix of rating, revenue,
// duration and year. Pairs involving duration skip movies without one.
func Correlation(cat *catalog.Catalog) CorrelationMatrix {
	vars := []string{VarRating, VarRevenue, VarDuration, VarYear}
	values := func(m *catalog.Movie) [4]float64 {
		return [4]float64{m.Rating, m.Revenue, float64(m.Duration), float64(m.Year)}
	}
	const durationIdx = 2

	movies := cat.Movies()
	matrix := make([][]Coefficient, len(vars))
	for i := range vars {
		matrix[i] = make([]Coefficient, len(vars))
	}

	for i := range vars {
		for j := i; j < len(vars); j++ {
			var xs, ys []float64
			for k := range movies {
				if (i == durationIdx || j == durationIdx) && movies[k].Duration == 0 {
					continue
				}
				v := values(&movies[k])
				xs = append(xs, v[i])
				ys = append(ys, v[j])
			}
			r := Coefficient(pearson(xs, ys))
			matrix[i][j] = r
			matrix[j][i] = r
		}
	}
	return CorrelationMatrix{Variables: vars, Values: matrix}
}

// pearson returns the sample correlation of xs and ys, or NaN when either
// has zero variance or fewer than two points exist.
func pearson(xs, ys []float64) float64 {
	n := len(xs)
	if n < 2 {
		return math.NaN()
	}
	var mx, my float64
	for i := range xs {
		mx += xs[i]
		my += ys[i]
	}
	mx /= float64(n)
	my /= float64(n)

	var sxy, sxx, syy float64
	for i := range xs {
		dx, dy := xs[i]-mx, ys[i]-my
		sxy += dx * dy
		sxx += dx * dx
		syy += dy * dy
	}
	if sxx == 0 || syy == 0 {
		return math.NaN()
	}
	return sxy / math.Sqrt(sxx*syy)
}

// DurationBuckets groups ratings into runtime bands. Movies with no
// duration or one above 300 minutes fall outside every band.
func DurationBuckets(cat *catalog.Catalog) []DurationBucket {
	out := make([]DurationBucket, len(durationBands))
	sums := make([]float64, len(durationBands))
	for i, b := range durationBands {
		out[i].Label = b.label
	}

	cat.Each(func(m catalog.Movie) bool {
		for i, b := range durationBands {
			if m.Duration > b.low && m.Duration <= b.max {
				bucket := &out[i]
				if bucket.Movies == 0 || m.Rating < bucket.MinRating {
					bucket.MinRating = m.Rating
				}
				if bucket.Movies == 0 || m.Rating > bucket.MaxRating {
					bucket.MaxRating = m.Rating
				}
				bucket.Movies++
				sums[i] += m.Rating
				break
			}
		}
		return true
	})

	for i := range out {
		if out[i].Movies > 0 {
			out[i].MeanRating = sums[i] / float64(out[i].Movies)
		}
	}
	return out
}

// Summary returns catalog-wide totals.
func Summary(cat *catalog.Catalog) CatalogSummary {
	var (
		s         CatalogSummary
		ratingSum float64
	)
	genres := make(map[string]struct{})
	directors := make(map[string]struct{})

	cat.Each(func(m catalog.Movie) bool {
		if s.Movies == 0 || m.Year < s.FirstYear {
			s.FirstYear = m.Year
		}
		if s.Movies == 0 || m.Year > s.LastYear {
			s.LastYear = m.Year
		}
		s.Movies++
		ratingSum += m.Rating
		s.TotalRevenue += m.Revenue
		directors[m.Director] = struct{}{}
		for _, g := range m.Genres.Sorted() {
			genres[g] = struct{}{}
		}
		return true
	})

	s.Genres = len(genres)
	s.Directors = len(directors)
	if s.Movies > 0 {
		s.MeanRating = ratingSum / float64(s.Movies)
	}
	return s
}
