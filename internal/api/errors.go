// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import "errors"

// Common API errors
var (
	// ErrNilEngine indicates NewHandler was called without an engine.
	ErrNilEngine = errors.New("api: recommendation engine is required")

	// ErrRecommendPanic wraps a panic recovered from the engine while
	// rendering the recommendations page.
	ErrRecommendPanic = errors.New("api: recommendation panicked")
)
