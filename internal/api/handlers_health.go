// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/recommend"
)

// HealthStatus is the payload of GET /api/v1/health.
type HealthStatus struct {
	Status        string          `json:"status"`
	CatalogMovies int             `json:"catalog_movies"`
	UptimeSeconds float64         `json:"uptime_seconds"`
	Engine        recommend.Stats `json:"engine"`

	// Oracle is the scoring oracle's breaker state, omitted when no oracle
	// is configured.
	Oracle string `json:"oracle,omitempty"`
}

// Health handles GET /api/v1/health. The catalog is loaded before the
// server starts, so a running process is always healthy; an open oracle
// breaker only degrades the optional predicted ratings.
//
// @Summary Service health
// @Tags System
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus}
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := HealthStatus{
		Status:        "healthy",
		CatalogMovies: h.catalog.Len(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Engine:        h.engine.Stats(),
	}
	if h.oracleState != nil {
		status.Oracle = h.oracleState()
		if status.Oracle == "open" {
			status.Status = "degraded"
		}
	}
	NewResponseWriter(w, r).Success(status)
}
