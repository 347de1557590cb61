// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package analytics computes descriptive statistics over the movie catalog.

Every function is pure: it reads a *catalog.Catalog and returns plain
values ready for JSON encoding. Results are deterministic, with ties
broken by name or load order as documented on each function.

# Available Reports

  - GenreFrequency: movies per individual genre
  - RevenueByGenre: mean revenue per genre combination
  - TopDirectorsByRevenue: summed revenue per director
  - YearlyPerformance: mean rating and total revenue per year
  - TopByRatingPerYear / TopByRevenuePerYear: the leading movie of each year
  - Correlation: Pearson coefficients between rating, revenue, duration and year
  - DurationBuckets: rating distribution by runtime band
  - Summary: catalog-wide totals

Snapshot computes all of them concurrently with errgroup for the
dashboard endpoint.
*/
package analytics
