// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package oracle provides an HTTP client for a remote rating model.

HTTPOracle implements recommend.Oracle. Each call issues

	GET {base}/score?movie_id=N&genre_id=M

and expects a JSON body of the form {"score": 7.4}. The ids come from
catalog.Encoder, so the model server must have been trained on the same
encoder state (see catalog.BadgerEncoderStore).

Resilience Mechanisms:
  - Rate Limiting: token bucket from golang.org/x/time/rate; a call waits
    for a token unless its context ends first
  - Circuit Breaker: sony/gobreaker opens at >= 60% failures over at least
    10 requests and probes again after two minutes
  - Timeouts: every call carries its own deadline

Predictions are informational. The recommendation engine attaches them to
results but never ranks by them, so an unavailable oracle degrades to
results without predicted ratings.
*/
package oracle
