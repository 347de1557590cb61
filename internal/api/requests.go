// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
)

// Defaults for omitted limit parameters. Upper bounds live in the
// validate tags.
const (
	defaultSearchLimit    = 20
	defaultSuggestLimit   = 10
	defaultAnalyticsLimit = 10
)

// RecommendationsParams are the query parameters of GET /api/v1/recommendations.
// Nil pointers fall back to the engine defaults.
type RecommendationsParams struct {
	Title      string   `query:"title" validate:"notblank,max=500"`
	N          *int     `query:"n" validate:"omitempty,min=1,max=100"`
	MinOverlap *float64 `query:"min_overlap" validate:"omitempty,gte=0,lte=1"`
	HighRating *float64 `query:"high_rating" validate:"omitempty,gte=0"`
}

// SearchParams are the query parameters of GET /api/v1/movies.
type SearchParams struct {
	Query string `query:"q" validate:"notblank,max=500"`
	Limit int    `query:"limit" validate:"min=1,max=100"`
}

// SuggestParams are the query parameters of GET /api/v1/movies/suggest.
type SuggestParams struct {
	Prefix string `query:"prefix" validate:"notblank,max=500"`
	Limit  int    `query:"limit" validate:"min=1,max=100"`
}

// AnalyticsParams are the query parameters of the analytics endpoints.
type AnalyticsParams struct {
	Limit int `query:"limit" validate:"min=1,max=1000"`
}

// paramError reports a query parameter that could not be parsed.
type paramError struct {
	Field string
	Value string
	Want  string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s must be %s", e.Field, e.Want)
}

// writeParamError answers a parse failure in the validation error shape.
func writeParamError(w http.ResponseWriter, r *http.Request, err *paramError) {
	NewResponseWriter(w, r).ErrorWithDetails(http.StatusBadRequest, ErrCodeValidationFailed, err.Error(),
		map[string]interface{}{"field": err.Field, "value": err.Value})
}

func optionalInt(q url.Values, name string) (*int, *paramError) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &paramError{Field: name, Value: raw, Want: "an integer"}
	}
	return &v, nil
}

func optionalFloat(q url.Values, name string) (*float64, *paramError) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, &paramError{Field: name, Value: raw, Want: "a finite number"}
	}
	return &v, nil
}

func intWithDefault(q url.Values, name string, def int) (int, *paramError) {
	v, perr := optionalInt(q, name)
	if perr != nil {
		return 0, perr
	}
	if v == nil {
		return def, nil
	}
	return *v, nil
}

func parseRecommendationsParams(r *http.Request) (RecommendationsParams, *paramError) {
	q := r.URL.Query()
	p := RecommendationsParams{Title: q.Get("title")}

	var perr *paramError
	if p.N, perr = optionalInt(q, "n"); perr != nil {
		return p, perr
	}
	if p.MinOverlap, perr = optionalFloat(q, "min_overlap"); perr != nil {
		return p, perr
	}
	if p.HighRating, perr = optionalFloat(q, "high_rating"); perr != nil {
		return p, perr
	}
	return p, nil
}

func parseSearchParams(r *http.Request) (SearchParams, *paramError) {
	q := r.URL.Query()
	limit, perr := intWithDefault(q, "limit", defaultSearchLimit)
	return SearchParams{Query: q.Get("q"), Limit: limit}, perr
}

func parseSuggestParams(r *http.Request) (SuggestParams, *paramError) {
	q := r.URL.Query()
	limit, perr := intWithDefault(q, "limit", defaultSuggestLimit)
	return SuggestParams{Prefix: q.Get("prefix"), Limit: limit}, perr
}

func parseAnalyticsParams(r *http.Request) (AnalyticsParams, *paramError) {
	limit, perr := intWithDefault(r.URL.Query(), "limit", defaultAnalyticsLimit)
	return AnalyticsParams{Limit: limit}, perr
}
