// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import gobreaker "github.com/sony/gobreaker/v2"

// InitCircuitBreaker publishes the closed state for a new breaker.
func InitCircuitBreaker(name string) {
	CircuitBreakerState.WithLabelValues(name).Set(0)
	CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
}

// RecordCircuitBreakerTransition updates state gauges on a transition.
func RecordCircuitBreakerTransition(name string, from, to gobreaker.State) {
	CircuitBreakerState.WithLabelValues(name).Set(StateValue(to))
	CircuitBreakerTransitions.WithLabelValues(name, StateName(from), StateName(to)).Inc()
	if to == gobreaker.StateClosed {
		CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
	}
}

// SetConsecutiveFailures publishes the breaker's current failure streak.
func SetConsecutiveFailures(name string, n uint32) {
	CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(float64(n))
}

// StateValue converts circuit breaker state to numeric value for metrics
func StateValue(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// StateName converts circuit breaker state to string for logging
func StateName(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
