// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"strconv"

	"github.com/tomtom215/reelmatch/internal/analytics"
	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// analyticsReport computes one report. limit applies to ranked lists and is
// ignored by the rest.
type analyticsReport func(cat *catalog.Catalog, limit int) interface{}

// analyticsReports maps each /api/v1/analytics/{name} route to its report.
var analyticsReports = map[string]analyticsReport{
	"summary": func(cat *catalog.Catalog, _ int) interface{} {
		return analytics.Summary(cat)
	},
	"genres": func(cat *catalog.Catalog, limit int) interface{} {
		return analytics.GenreFrequency(cat, limit)
	},
	"genre-revenue": func(cat *catalog.Catalog, limit int) interface{} {
		return analytics.RevenueByGenre(cat, limit)
	},
	"directors": func(cat *catalog.Catalog, limit int) interface{} {
		return analytics.TopDirectorsByRevenue(cat, limit)
	},
	"yearly": func(cat *catalog.Catalog, _ int) interface{} {
		return analytics.YearlyPerformance(cat)
	},
	"top-rated": func(cat *catalog.Catalog, _ int) interface{} {
		return analytics.TopByRatingPerYear(cat)
	},
	"top-revenue": func(cat *catalog.Catalog, _ int) interface{} {
		return analytics.TopByRevenuePerYear(cat)
	},
	"correlation": func(cat *catalog.Catalog, _ int) interface{} {
		return analytics.Correlation(cat)
	},
	"durations": func(cat *catalog.Catalog, _ int) interface{} {
		return analytics.DurationBuckets(cat)
	},
}

// analyticsHandler serves one named report.
//
// @Summary Catalog analytics report
// @Tags Analytics
// @Produce json
// @Param limit query int false "Maximum rows for ranked reports (1-1000)" default(10)
// @Success 200 {object} APIResponse
// @Failure 400 {object} APIResponse{error=APIError}
// @Router /api/v1/analytics/summary [get]
// @Router /api/v1/analytics/genres [get]
// @Router /api/v1/analytics/genre-revenue [get]
// @Router /api/v1/analytics/directors [get]
// @Router /api/v1/analytics/yearly [get]
// @Router /api/v1/analytics/top-rated [get]
// @Router /api/v1/analytics/top-revenue [get]
// @Router /api/v1/analytics/correlation [get]
// @Router /api/v1/analytics/durations [get]
func (h *Handler) analyticsHandler(report analyticsReport) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		params, ok := h.analyticsParams(w, r)
		if !ok {
			return
		}
		NewResponseWriter(w, r).Success(report(h.catalog, params.Limit))
	}
}

// AnalyticsReport handles GET /api/v1/analytics, computing every report
// concurrently. Reports are memoized per limit.
//
// @Summary Full analytics report
// @Tags Analytics
// @Produce json
// @Param limit query int false "Maximum rows for ranked reports (1-1000)" default(10)
// @Success 200 {object} APIResponse{data=analytics.Report}
// @Failure 400 {object} APIResponse{error=APIError}
// @Router /api/v1/analytics [get]
func (h *Handler) AnalyticsReport(w http.ResponseWriter, r *http.Request) {
	params, ok := h.analyticsParams(w, r)
	if !ok {
		return
	}
	rw := NewResponseWriter(w, r)

	key := strconv.Itoa(params.Limit)
	if report, hit := h.reports.Get(key); hit {
		rw.SuccessWithMeta(report, &APIMeta{CacheHit: true})
		return
	}

	report, err := analytics.Snapshot(r.Context(), h.catalog, params.Limit)
	if err != nil {
		h.writeEngineError(rw, r, err)
		return
	}
	h.reports.Add(key, report)

	logging.Ctx(r.Context()).Debug().Int("limit", params.Limit).Msg("analytics report computed")
	rw.Success(report)
}

func (h *Handler) analyticsParams(w http.ResponseWriter, r *http.Request) (AnalyticsParams, bool) {
	params, perr := parseAnalyticsParams(r)
	if perr != nil {
		writeParamError(w, r, perr)
		return params, false
	}
	if verr := validation.ValidateStruct(&params); verr != nil {
		NewResponseWriter(w, r).ValidationError(verr)
		return params, false
	}
	return params, true
}
