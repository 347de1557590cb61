// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package middleware provides HTTP middleware for the Reelmatch router.

Middleware:
  - RequestID: assigns or propagates X-Request-ID and stores it in the
    logging context
  - PrometheusMetrics: records request count, latency and in-flight
    gauge, labelled by chi route pattern
  - AccessLog: structured per-request zerolog line

All middleware use the standard func(http.Handler) http.Handler shape and
are mounted with chi's Router.Use. Order matters: RequestID must run before
AccessLog so the log line carries the ID.

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.AccessLog)
*/
package middleware
