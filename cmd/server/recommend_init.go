// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/oracle"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// RecommendComponents holds everything built from the catalog.
type RecommendComponents struct {
	Catalog *catalog.Catalog
	Engine  *recommend.Engine

	// Oracle is nil when no oracle URL is configured.
	Oracle *oracle.HTTPOracle

	// closers release resources in reverse order of acquisition.
	closers []io.Closer
}

// Close releases the encoder store, if any.
func (c *RecommendComponents) Close() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// initRecommend loads the catalog and builds the engine with its optional
// encoder store and oracle.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*RecommendComponents, error) {
	cat, stats, err := catalog.LoadFile(cfg.Catalog.Path)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	metrics.RecordCatalogLoad(stats.Loaded, dropReasons(stats))
	logger.Info().
		Str("path", cfg.Catalog.Path).
		Int("rows", stats.Rows).
		Int("loaded", stats.Loaded).
		Int("dropped", stats.Dropped()).
		Msg("catalog loaded")

	rc := &RecommendComponents{Catalog: cat}
	opts := []recommend.Option{recommend.WithRecorder(metrics.RecommendRecorder{})}

	if cfg.Oracle.Enabled() {
		enc, err := initEncoder(ctx, cfg.Encoder, cat, rc)
		if err != nil {
			_ = rc.Close()
			return nil, err
		}

		o, err := oracle.New(buildOracleConfig(cfg.Oracle), logger)
		if err != nil {
			_ = rc.Close()
			return nil, fmt.Errorf("create oracle: %w", err)
		}
		rc.Oracle = o
		opts = append(opts, recommend.WithOracle(o, enc))
		logger.Info().Str("url", cfg.Oracle.URL).Int("movies", enc.NumMovies()).Msg("scoring oracle enabled")
	}

	if !cfg.Oracle.Enabled() && cfg.Encoder.Persistent() {
		logger.Warn().Str("path", cfg.Encoder.StorePath).Msg("encoder store ignored: no oracle configured")
	}

	engine, err := recommend.NewEngine(cat, buildEngineConfig(cfg.Recommend), logger, opts...)
	if err != nil {
		_ = rc.Close()
		return nil, fmt.Errorf("create engine: %w", err)
	}
	rc.Engine = engine
	return rc, nil
}

// initEncoder builds the id encoder, reusing ids persisted in BadgerDB when
// a store path is configured.
func initEncoder(ctx context.Context, ec config.EncoderConfig, cat *catalog.Catalog, rc *RecommendComponents) (*catalog.Encoder, error) {
	if !ec.Persistent() {
		return catalog.NewEncoder(cat), nil
	}

	store, err := catalog.OpenBadgerEncoderStore(ec.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open encoder store: %w", err)
	}
	rc.closers = append(rc.closers, store)

	enc, err := catalog.NewEncoderWithStore(ctx, cat, store)
	if err != nil {
		return nil, fmt.Errorf("load encoder state: %w", err)
	}
	return enc, nil
}

func buildEngineConfig(rc config.RecommendConfig) *recommend.Config {
	return &recommend.Config{
		NumRecommendations:  rc.NumRecommendations,
		MinGenreOverlap:     rc.MinGenreOverlap,
		HighRatingThreshold: rc.HighRatingThreshold,
		Cache: recommend.CacheConfig{
			Enabled:    rc.CacheEnabled,
			MaxEntries: rc.CacheSize,
			TTL:        rc.CacheTTL,
		},
	}
}

func buildOracleConfig(oc config.OracleConfig) oracle.Config {
	return oracle.Config{
		BaseURL:           oc.URL,
		Timeout:           oc.Timeout,
		RequestsPerSecond: oc.RequestsPerSecond,
		Burst:             oc.Burst,
	}
}

func dropReasons(stats catalog.LoadStats) map[string]int {
	byReason := stats.ByReason()
	out := make(map[string]int, len(byReason))
	for reason, n := range byReason {
		out[string(reason)] = n
	}
	return out
}
