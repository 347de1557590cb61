// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package analytics

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/reelmatch/internal/catalog"
)

// ErrNilCatalog is returned by Snapshot when no catalog is supplied.
var ErrNilCatalog = errors.New("analytics: catalog is required")

// Snapshot computes every report concurrently. limit applies to the ranked
// lists (genres, genre revenue, directors).
func Snapshot(ctx context.Context, cat *catalog.Catalog, limit int) (*Report, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}

	var r Report
	g, ctx := errgroup.WithContext(ctx)

	// Each task writes a distinct field of r.
	tasks := []func(){
		func() { r.Summary = Summary(cat) },
		func() { r.Genres = GenreFrequency(cat, limit) },
		func() { r.GenreRevenue = RevenueByGenre(cat, limit) },
		func() { r.Directors = TopDirectorsByRevenue(cat, limit) },
		func() { r.Yearly = YearlyPerformance(cat) },
		func() { r.TopRated = TopByRatingPerYear(cat) },
		func() { r.TopRevenue = TopByRevenuePerYear(cat) },
		func() { r.Correlation = Correlation(cat) },
		func() { r.DurationBuckets = DurationBuckets(cat) },
	}
	for _, task := range tasks {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			task()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &r, nil
}
