// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/validation"
)

// Recommendations handles GET /api/v1/recommendations.
//
// An unknown title answers 200 with found=false and no items.
//
// @Summary Recommend similar movies
// @Description Ranks catalog movies by genre overlap, release year, director and rating
// @Tags Recommendations
// @Produce json
// @Param title query string true "Exact movie title"
// @Param n query int false "Maximum results (1-100)"
// @Param min_overlap query number false "Minimum genre overlap fraction (0-1)"
// @Param high_rating query number false "Rating at or above which the reason mentions it"
// @Success 200 {object} APIResponse{data=recommend.Response}
// @Failure 400 {object} APIResponse{error=APIError}
// @Failure 429 {object} APIResponse{error=APIError}
// @Failure 504 {object} APIResponse{error=APIError}
// @Router /api/v1/recommendations [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	params, perr := parseRecommendationsParams(r)
	if perr != nil {
		writeParamError(w, r, perr)
		return
	}
	if verr := validation.ValidateStruct(&params); verr != nil {
		rw.ValidationError(verr)
		return
	}

	resp, err := h.engine.Recommend(r.Context(), recommend.Request{
		Title:               params.Title,
		NumRecommendations:  params.N,
		MinGenreOverlap:     params.MinOverlap,
		HighRatingThreshold: params.HighRating,
		RequestID:           logging.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		h.writeEngineError(rw, r, err)
		return
	}

	count := len(resp.Items)
	rw.SuccessWithMeta(resp, &APIMeta{Count: &count, CacheHit: resp.Metadata.CacheHit})
}

// writeEngineError maps engine failures onto status codes.
func (h *Handler) writeEngineError(rw *ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, recommend.ErrInvalidRequest):
		rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidationFailed, err.Error(), nil)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		logging.Ctx(r.Context()).Warn().Err(err).Msg("recommendation abandoned")
		rw.Timeout()
	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("recommendation failed")
		rw.InternalError("Failed to generate recommendations")
	}
}
