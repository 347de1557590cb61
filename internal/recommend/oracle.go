// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import "context"

// Oracle predicts a rating for a movie from its encoded identifiers.
// Implementations must be safe for concurrent use.
type Oracle interface {
	Score(ctx context.Context, movieID, genreID int) (float64, error)
}

// OracleFunc adapts a function to the Oracle interface.
type OracleFunc func(ctx context.Context, movieID, genreID int) (float64, error)

// Score calls f.
func (f OracleFunc) Score(ctx context.Context, movieID, genreID int) (float64, error) {
	return f(ctx, movieID, genreID)
}

// StubOracle returns a fixed prediction for every movie.
type StubOracle struct {
	Value float64
}

// Score returns the configured value.
func (s StubOracle) Score(context.Context, int, int) (float64, error) {
	return s.Value, nil
}

// Recorder receives engine measurements. The metrics package provides the
// Prometheus implementation.
type Recorder interface {
	RecordRecommendation(outcome string, seconds float64, results int)
	RecordCacheLookup(hit bool)
	RecordOracleError()
}

// Recommendation outcomes reported to a Recorder.
const (
	OutcomeFound   = "found"
	OutcomeUnknown = "unknown"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

type nopRecorder struct{}

func (nopRecorder) RecordRecommendation(string, float64, int) {}
func (nopRecorder) RecordCacheLookup(bool)                    {}
func (nopRecorder) RecordOracleError()                        {}
