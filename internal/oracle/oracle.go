// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package oracle

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/reelmatch/internal/metrics"
)

// BreakerName labels the oracle circuit breaker in metrics.
const BreakerName = "scoring-oracle"

// maxErrorBodySize limits how much of an error response is read.
const maxErrorBodySize = 4 * 1024

var (
	// ErrNoBaseURL is returned by New when Config.BaseURL is empty.
	ErrNoBaseURL = errors.New("oracle: base URL is required")

	// ErrUnavailable wraps calls rejected by the open circuit breaker.
	ErrUnavailable = errors.New("oracle unavailable")
)

// Config configures an HTTPOracle.
type Config struct {
	BaseURL string

	// Timeout bounds a single call. Default: 2s.
	Timeout time.Duration

	// RequestsPerSecond throttles outbound calls. Zero disables throttling.
	RequestsPerSecond float64

	// Burst is the token bucket size. Default: 10.
	Burst int

	// Client overrides the HTTP client, mainly for tests.
	Client *http.Client
}

// HTTPOracle scores movies by calling a remote model server.
// It is safe for concurrent use.
type HTTPOracle struct {
	endpoint *url.URL
	client   *http.Client
	timeout  time.Duration
	limiter  *rate.Limiter
	cb       *gobreaker.CircuitBreaker[float64]
	logger   zerolog.Logger
}

type scoreResponse struct {
	Score *float64 `json:"score"`
}

// New creates an HTTPOracle.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg Config, logger zerolog.Logger) (*HTTPOracle, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, ErrNoBaseURL
	}
	base, err := url.Parse(strings.TrimRight(cfg.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse oracle url: %w", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("oracle url must use http or https, got %q", base.Scheme)
	}
	endpoint := base.JoinPath("score")

	if cfg.Timeout <= 0 {
		cfg.Timeout = 2 * time.Second
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 10
	}
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}

	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	o := &HTTPOracle{
		endpoint: endpoint,
		client:   client,
		timeout:  cfg.Timeout,
		limiter:  rate.NewLimiter(limit, cfg.Burst),
		logger:   logger.With().Str("component", "oracle").Logger(),
	}
	o.cb = newBreaker(o.logger)
	return o, nil
}

// newBreaker builds the circuit breaker:
// - Max 3 concurrent requests in half-open state
// - 1 minute measurement window
// - 2 minute timeout before attempting recovery
// - Opens after 60% failure rate with minimum 10 requests
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func newBreaker(logger zerolog.Logger) *gobreaker.CircuitBreaker[float64] {
	metrics.InitCircuitBreaker(BreakerName)

	return gobreaker.NewCircuitBreaker[float64](gobreaker.Settings{
		Name:        BreakerName,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := failureRatio >= 0.6
			if shouldTrip {
				logger.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", failureRatio*100).
					Msg("opening oracle circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info().
				Str("from", metrics.StateName(from)).
				Str("to", metrics.StateName(to)).
				Msg("oracle circuit state transition")
			metrics.RecordCircuitBreakerTransition(name, from, to)
		},
	})
}

// Score returns the model's predicted rating for a movie and genre pair.
func (o *HTTPOracle) Score(ctx context.Context, movieID, genreID int) (float64, error) {
	if err := o.limiter.Wait(ctx); err != nil {
		metrics.RecordOracleRequest("throttled", 0)
		return 0, fmt.Errorf("oracle rate limit: %w", err)
	}

	start := time.Now()
	score, err := o.cb.Execute(func() (float64, error) {
		return o.fetch(ctx, movieID, genreID)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.RecordOracleRequest("rejected", 0)
			return 0, fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
		metrics.RecordOracleRequest("failure", time.Since(start))
		metrics.SetConsecutiveFailures(BreakerName, o.cb.Counts().ConsecutiveFailures)
		return 0, err
	}

	metrics.RecordOracleRequest("success", time.Since(start))
	metrics.SetConsecutiveFailures(BreakerName, 0)
	return score, nil
}

// State returns the circuit breaker state name.
func (o *HTTPOracle) State() string {
	return metrics.StateName(o.cb.State())
}

func (o *HTTPOracle) fetch(ctx context.Context, movieID, genreID int) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	u := *o.endpoint
	q := url.Values{}
	q.Set("movie_id", strconv.Itoa(movieID))
	q.Set("genre_id", strconv.Itoa(genreID))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return 0, fmt.Errorf("build oracle request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("oracle request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return 0, fmt.Errorf("oracle returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out scoreResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decode oracle response: %w", err)
	}
	if out.Score == nil {
		return 0, errors.New("oracle response missing score")
	}
	return *out.Score, nil
}
