// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/analytics"
	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// reportCacheSize bounds memoized analytics reports, keyed by limit.
const reportCacheSize = 32

// Handler contains dependencies for API and page handlers.
//
// Handler methods are split across files:
//   - handlers_recommend.go: recommendation JSON endpoint
//   - handlers_movies.go: catalog search, suggest and lookup
//   - handlers_analytics.go: catalog analytics
//   - handlers_health.go: health endpoint
//   - pages.go: server-rendered form and results pages
type Handler struct {
	engine  *recommend.Engine
	catalog *catalog.Catalog
	logger  zerolog.Logger

	// titles indexes catalog titles for autocomplete.
	titles *cache.Trie[catalog.Movie]

	// reports memoizes full analytics snapshots. The catalog never
	// changes, so entries do not expire.
	reports *cache.LRU[*analytics.Report]

	pages       *pageSet
	oracleState func() string
	startTime   time.Time
}

// HandlerOption configures optional Handler dependencies.
type HandlerOption func(*Handler)

// WithOracleState reports the scoring oracle's circuit breaker state in the
// health endpoint.
func WithOracleState(state func() string) HandlerOption {
	return func(h *Handler) {
		h.oracleState = state
	}
}

// NewHandler creates the handler set for engine's catalog. It parses the
// embedded page templates and indexes titles up front.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewHandler(engine *recommend.Engine, logger zerolog.Logger, opts ...HandlerOption) (*Handler, error) {
	if engine == nil {
		return nil, ErrNilEngine
	}

	pages, err := loadPages()
	if err != nil {
		return nil, err
	}

	h := &Handler{
		engine:    engine,
		catalog:   engine.Catalog(),
		logger:    logger.With().Str("component", "api").Logger(),
		titles:    cache.NewTrie[catalog.Movie](),
		reports:   cache.NewLRU[*analytics.Report](reportCacheSize, 0),
		pages:     pages,
		startTime: time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}

	// First occurrence wins when titles differ only by case.
	h.catalog.Each(func(m catalog.Movie) bool {
		if _, ok := h.titles.Get(m.Title); !ok {
			h.titles.Insert(m.Title, m)
		}
		return true
	})

	h.logger.Debug().Int("titles", h.titles.Len()).Msg("title index built")
	return h, nil
}
