// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/catalog"
)

// Note: This package depends only on catalog and cache. Prometheus
// integration is injected through the Recorder interface.

// Engine ranks catalog movies against an input title. It is safe for
// concurrent use.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	catalog *catalog.Catalog

	// memo holds ranked lists keyed by title and query parameters.
	memo *cache.LRU[ranking]

	oracle   Oracle
	encoder  *catalog.Encoder
	recorder Recorder

	requestCount atomic.Int64
	unknownCount atomic.Int64
	cacheHits    atomic.Int64
	cacheMisses  atomic.Int64
	oracleErrors atomic.Int64
}

// ranking is the memoized outcome of one query.
type ranking struct {
	items      []Result
	candidates int
	eligible   int
}

// Option configures optional engine collaborators.
type Option func(*Engine)

// WithOracle attaches a rating oracle. The encoder maps titles and raw genre
// strings to the ids the oracle expects.
func WithOracle(o Oracle, enc *catalog.Encoder) Option {
	return func(e *Engine) {
		e.oracle = o
		e.encoder = enc
	}
}

// WithRecorder sets the metrics recorder.
func WithRecorder(r Recorder) Option {
	return func(e *Engine) {
		if r != nil {
			e.recorder = r
		}
	}
}

// NewEngine creates a recommendation engine over cat.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cat *catalog.Catalog, cfg *Config, logger zerolog.Logger, opts ...Option) (*Engine, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	e := &Engine{
		config:   cfg.Clone(),
		logger:   logger.With().Str("component", "recommend").Logger(),
		catalog:  cat,
		recorder: nopRecorder{},
	}
	if cfg.Cache.Enabled {
		e.memo = cache.NewLRU[ranking](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.oracle != nil && e.encoder == nil {
		e.encoder = catalog.NewEncoder(cat)
	}

	e.logger.Info().
		Int("catalog_size", cat.Len()).
		Bool("cache_enabled", cfg.Cache.Enabled).
		Bool("oracle", e.oracle != nil).
		Msg("recommendation engine ready")

	return e, nil
}

// Catalog returns the catalog the engine ranks against.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// GetRecommendations returns up to q.NumRecommendations movies similar to
// title. An empty list means the title is unknown or nothing matched.
// Parameters are not range-checked: a negative count is treated as zero, a
// negative MinGenreOverlap filters nothing, and a negative threshold marks
// every candidate as highly rated.
//
//nolint:gocritic // hugeParam: q passed by value for immutability
func (e *Engine) GetRecommendations(title string, q Query) []Result {
	if q.NumRecommendations < 0 {
		q.NumRecommendations = 0
	}
	resp, err := e.recommend(context.Background(), title, q, "")
	if err != nil || resp == nil {
		return []Result{}
	}
	return resp.Items
}

// Recommend resolves request defaults, validates them, and ranks. An
// unknown title is not an error: the response has Found=false.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	q := e.config.Query()
	if req.NumRecommendations != nil {
		q.NumRecommendations = *req.NumRecommendations
	}
	if req.MinGenreOverlap != nil {
		q.MinGenreOverlap = *req.MinGenreOverlap
	}
	if req.HighRatingThreshold != nil {
		q.HighRatingThreshold = *req.HighRatingThreshold
	}
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	if strings.TrimSpace(req.Title) == "" {
		e.recorder.RecordRecommendation(OutcomeInvalid, 0, 0)
		return nil, fmt.Errorf("%w: title is required", ErrInvalidRequest)
	}
	if err := q.Validate(); err != nil {
		e.recorder.RecordRecommendation(OutcomeInvalid, 0, 0)
		return nil, err
	}
	return e.recommend(ctx, req.Title, q, req.RequestID)
}

//nolint:gocritic // hugeParam: q passed by value for immutability
func (e *Engine) recommend(ctx context.Context, title string, q Query, requestID string) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	logger := e.logger.With().Str("title", title).Logger()
	if requestID != "" {
		logger = logger.With().Str("request_id", requestID).Logger()
	}

	resp := &Response{
		Title: title,
		Items: []Result{},
		Query: q,
		Metadata: ResponseMetadata{
			RequestID:   requestID,
			GeneratedAt: start.UTC(),
		},
	}

	input, ok := e.catalog.Lookup(title)
	if !ok {
		e.unknownCount.Add(1)
		e.recorder.RecordRecommendation(OutcomeUnknown, time.Since(start).Seconds(), 0)
		logger.Debug().Msg("title not in catalog")
		resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
		return resp, nil
	}
	resp.Found = true

	r, hit, err := e.lookupOrRank(ctx, &input, q)
	if err != nil {
		e.recorder.RecordRecommendation(OutcomeError, time.Since(start).Seconds(), 0)
		return nil, err
	}

	resp.Items = r.items
	resp.Candidates = r.candidates
	resp.Eligible = r.eligible
	resp.Metadata.CacheHit = hit

	if e.oracle != nil {
		e.annotate(ctx, resp.Items, logger)
	}

	resp.Metadata.LatencyMS = time.Since(start).Milliseconds()
	e.recorder.RecordRecommendation(OutcomeFound, time.Since(start).Seconds(), len(resp.Items))

	logger.Debug().
		Int("candidates", resp.Candidates).
		Int("eligible", resp.Eligible).
		Int("returned", len(resp.Items)).
		Bool("cache_hit", hit).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// lookupOrRank serves from the memo when possible. The returned items are
// always a private copy.
//
//nolint:gocritic // hugeParam: q passed by value for immutability
func (e *Engine) lookupOrRank(ctx context.Context, input *catalog.Movie, q Query) (ranking, bool, error) {
	key := q.cacheKey(input.Title)
	if e.memo != nil {
		if cached, ok := e.memo.Get(key); ok {
			e.cacheHits.Add(1)
			e.recorder.RecordCacheLookup(true)
			cached.items = copyResults(cached.items)
			return cached, true, nil
		}
		e.cacheMisses.Add(1)
		e.recorder.RecordCacheLookup(false)
	}

	check := func() bool { return ctx.Err() == nil }
	items, candidates, eligible := rank(e.catalog, input, q, check)
	if err := ctx.Err(); err != nil {
		return ranking{}, false, fmt.Errorf("rank candidates: %w", err)
	}
	if items == nil {
		items = []Result{}
	}

	r := ranking{items: items, candidates: candidates, eligible: eligible}
	if e.memo != nil {
		e.memo.Add(key, ranking{items: copyResults(items), candidates: candidates, eligible: eligible})
	}
	return r, false, nil
}

// annotate attaches oracle predictions. Failures are logged and leave the
// prediction unset; ordering is never touched.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) annotate(ctx context.Context, items []Result, logger zerolog.Logger) {
	for i := range items {
		if ctx.Err() != nil {
			return
		}
		movieID, ok := e.encoder.MovieID(items[i].Movie.Title)
		if !ok {
			continue
		}
		genreID, ok := e.encoder.GenreID(items[i].Movie.RawGenres)
		if !ok {
			continue
		}
		score, err := e.oracle.Score(ctx, movieID, genreID)
		if err != nil {
			e.oracleErrors.Add(1)
			e.recorder.RecordOracleError()
			logger.Warn().Err(err).Str("candidate", items[i].Movie.Title).Msg("oracle prediction failed")
			continue
		}
		items[i].Predicted = &score
	}
}

// Stats returns a snapshot of engine counters.
func (e *Engine) Stats() Stats {
	s := Stats{
		Requests:     e.requestCount.Load(),
		UnknownTitle: e.unknownCount.Load(),
		CacheHits:    e.cacheHits.Load(),
		CacheMisses:  e.cacheMisses.Load(),
		OracleErrors: e.oracleErrors.Load(),
		CatalogSize:  e.catalog.Len(),
	}
	if e.memo != nil {
		s.CacheSize = e.memo.Len()
	}
	return s
}

// ClearCache drops all memoized rankings.
func (e *Engine) ClearCache() {
	if e.memo != nil {
		e.memo.Clear()
	}
}

// SweepCache removes expired rankings and returns how many were dropped.
// It is a no-op when memoization is off or entries never expire.
func (e *Engine) SweepCache() int {
	if e.memo == nil {
		return 0
	}
	return e.memo.CleanupExpired()
}

func copyResults(src []Result) []Result {
	dst := make([]Result, len(src))
	copy(dst, src)
	return dst
}
