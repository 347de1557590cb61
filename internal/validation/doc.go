// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package validation provides struct validation using go-playground/validator v10.
//
// It wraps a thread-safe singleton validator, reports field names using the
// struct's query or json tag so messages match what the client sent, and
// converts failures into the API's VALIDATION_ERROR shape.
//
// # Quick Start
//
//	type RecommendationsQuery struct {
//	    Title string  `query:"title" validate:"notblank,max=500"`
//	    N     int     `query:"n" validate:"min=1,max=100"`
//	}
//
//	if err := validation.ValidateStruct(&q); err != nil {
//	    apiErr := err.ToAPIError()
//	    // respond 400 with apiErr.Code / apiErr.Message / apiErr.Details
//	}
//
// # Custom Validators
//
//   - notblank: string is non-empty after trimming whitespace
package validation
