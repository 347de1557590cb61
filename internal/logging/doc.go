// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package logging provides centralized zerolog-based logging for Reelmatch.
//
// It provides:
//
//   - A process-wide structured logger configured once at startup
//   - JSON output for production, console output for development
//   - Request ID propagation through context.Context
//   - An slog.Handler adapter so slog-only libraries (sutureslog) log through zerolog
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("movies", cat.Len()).Msg("Catalog loaded")
//	logging.Ctx(ctx).Warn().Err(err).Msg("Oracle call failed")
//
// # Configuration
//
// Environment Variables (read by internal/config):
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller info (default: false)
//
// Components receive a zerolog.Logger and derive their own child with a
// "component" field rather than calling the package-level functions.
package logging
