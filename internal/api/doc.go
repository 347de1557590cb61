// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package api provides the HTTP surface of Reelmatch: server-rendered pages for
the recommendation form and a JSON API under /api/v1.

# Routes

Pages:
  - GET  /            recommendation form (input named "movie")
  - POST /recommend   recommendations table, or the error page

JSON API (CORS applies; everything except health is rate limited per IP):
  - GET /api/v1/recommendations?title=&n=&min_overlap=&high_rating=
  - GET /api/v1/movies?q=&limit=
  - GET /api/v1/movies/suggest?prefix=&limit=
  - GET /api/v1/movies/{title}
  - GET /api/v1/analytics (full report)
  - GET /api/v1/analytics/{summary|genres|genre-revenue|directors|yearly|top-rated|top-revenue|correlation|durations}
  - GET /api/v1/health

Observability and documentation:
  - GET /metrics (Prometheus)
  - GET /swagger/* (Swagger UI; spec at /swagger/doc.json)

# Response Format

Every JSON endpoint writes the same envelope:

	{
	  "success": true,
	  "data": {...},
	  "meta": {"request_id": "...", "timestamp": "...", "duration_ms": 3}
	}

Errors set success=false and fill error.code with one of the ErrCode
constants. Query parameter validation failures use VALIDATION_ERROR with
per-field details.

An unknown title is not an error: /api/v1/recommendations answers 200 with
found=false and an empty item list.

# Middleware Stack

Applied to every route, outermost first: RealIP, request ID, access log,
Prometheus metrics, panic recovery, per-request timeout. The JSON API adds
security headers, CORS, gzip compression and httprate limiting.
*/
package api
