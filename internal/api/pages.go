// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/reelmatch/internal/catalog"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names, one per template file besides base.html.
const (
	pageIndex           = "index.html"
	pageRecommendations = "recommendations.html"
	pageError           = "error.html"
)

// formMovieField is the form input holding the requested title.
const formMovieField = "movie"

var pageFuncs = template.FuncMap{
	"percent": func(p int) string {
		return strconv.Itoa(p) + "%"
	},
	"rating": recommend.FormatRating,
	"genres": func(g catalog.GenreSet) string {
		return strings.Join(g.Sorted(), ", ")
	},
}

// pageSet holds one parsed template per page, each combined with base.html.
type pageSet struct {
	pages map[string]*template.Template
}

func loadPages() (*pageSet, error) {
	ps := &pageSet{pages: make(map[string]*template.Template)}
	for _, name := range []string{pageIndex, pageRecommendations, pageError} {
		tmpl, err := template.New(name).Funcs(pageFuncs).ParseFS(templateFS, "templates/base.html", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		ps.pages[name] = tmpl
	}
	return ps, nil
}

// render executes a page into a buffer first so a template failure never
// leaves a half-written response.
func (ps *pageSet) render(w http.ResponseWriter, r *http.Request, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := ps.pages[name].ExecuteTemplate(&buf, "base", data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("page", name).Msg("Failed to render page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write page")
	}
}

// indexData feeds the form page.
type indexData struct {
	Field  string
	Movies int
}

// recommendationsData feeds the results page.
type recommendationsData struct {
	InputMovie      string
	Recommendations []recommend.Result
}

// errorData feeds the error page.
type errorData struct {
	Movie   string
	Message string
}

// IndexPage handles GET /, rendering the recommendation form.
func (h *Handler) IndexPage(w http.ResponseWriter, r *http.Request) {
	h.pages.render(w, r, http.StatusOK, pageIndex, indexData{
		Field:  formMovieField,
		Movies: h.catalog.Len(),
	})
}

// RecommendPage handles POST /recommend.
//
// A missing or blank movie answers 400. No matches (including an unknown
// title) answers 200 with the error page; an engine failure or panic
// answers 500 with the same page.
func (h *Handler) RecommendPage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.pages.render(w, r, http.StatusBadRequest, pageError, errorData{
			Message: "The form could not be read.",
		})
		return
	}

	movie := r.PostFormValue(formMovieField)
	if strings.TrimSpace(movie) == "" {
		h.pages.render(w, r, http.StatusBadRequest, pageError, errorData{
			Message: "Please enter a movie title.",
		})
		return
	}

	resp, err := h.safeRecommend(r.Context(), movie)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Str("movie", movie).Msg("recommendation page failed")
		h.pages.render(w, r, http.StatusInternalServerError, pageError, errorData{Movie: movie})
		return
	}
	if len(resp.Items) == 0 {
		h.pages.render(w, r, http.StatusOK, pageError, errorData{Movie: movie})
		return
	}

	h.pages.render(w, r, http.StatusOK, pageRecommendations, recommendationsData{
		InputMovie:      movie,
		Recommendations: resp.Items,
	})
}

// safeRecommend calls the engine, converting a panic into ErrRecommendPanic.
func (h *Handler) safeRecommend(ctx context.Context, movie string) (resp *recommend.Response, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			resp, err = nil, fmt.Errorf("%w: %v", ErrRecommendPanic, rec)
		}
	}()
	return h.engine.Recommend(ctx, recommend.Request{
		Title:     movie,
		RequestID: logging.RequestIDFromContext(ctx),
	})
}
