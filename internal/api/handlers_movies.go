// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/reelmatch/internal/validation"
)

// MovieSuggestion is one autocomplete entry.
type MovieSuggestion struct {
	Title    string `json:"title"`
	Year     int    `json:"year"`
	Director string `json:"director"`
}

// SearchMovies handles GET /api/v1/movies?q=&limit=.
// Exact matches come first, then prefix matches, then substring matches.
//
// @Summary Search movies by title
// @Tags Movies
// @Produce json
// @Param q query string true "Case-insensitive title fragment"
// @Param limit query int false "Maximum results (1-100)" default(20)
// @Success 200 {object} APIResponse{data=[]catalog.Movie}
// @Failure 400 {object} APIResponse{error=APIError}
// @Router /api/v1/movies [get]
func (h *Handler) SearchMovies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	params, perr := parseSearchParams(r)
	if perr != nil {
		writeParamError(w, r, perr)
		return
	}
	if verr := validation.ValidateStruct(&params); verr != nil {
		rw.ValidationError(verr)
		return
	}

	movies := h.catalog.Search(params.Query, params.Limit)
	rw.SuccessList(movies, len(movies))
}

// SuggestTitles handles GET /api/v1/movies/suggest?prefix=&limit=.
//
// @Summary Autocomplete movie titles
// @Tags Movies
// @Produce json
// @Param prefix query string true "Case-insensitive title prefix"
// @Param limit query int false "Maximum results (1-100)" default(10)
// @Success 200 {object} APIResponse{data=[]MovieSuggestion}
// @Failure 400 {object} APIResponse{error=APIError}
// @Router /api/v1/movies/suggest [get]
func (h *Handler) SuggestTitles(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	params, perr := parseSuggestParams(r)
	if perr != nil {
		writeParamError(w, r, perr)
		return
	}
	if verr := validation.ValidateStruct(&params); verr != nil {
		rw.ValidationError(verr)
		return
	}

	matches := h.titles.Complete(params.Prefix, params.Limit)
	out := make([]MovieSuggestion, len(matches))
	for i, m := range matches {
		out[i] = MovieSuggestion{Title: m.Value.Title, Year: m.Value.Year, Director: m.Value.Director}
	}
	rw.SuccessList(out, len(out))
}

// GetMovie handles GET /api/v1/movies/{title}. The title must match exactly.
//
// @Summary Get a movie
// @Tags Movies
// @Produce json
// @Param title path string true "Exact movie title, URL-escaped"
// @Success 200 {object} APIResponse{data=catalog.Movie}
// @Failure 404 {object} APIResponse{error=APIError}
// @Router /api/v1/movies/{title} [get]
func (h *Handler) GetMovie(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	title := chi.URLParam(r, "title")
	if decoded, err := url.PathUnescape(title); err == nil {
		title = decoded
	}

	movie, ok := h.catalog.Lookup(title)
	if !ok {
		rw.NotFound("Movie not found: " + title)
		return
	}
	rw.Success(movie)
}
