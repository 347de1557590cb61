// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// DefaultSweepInterval is used when no interval is configured.
const DefaultSweepInterval = time.Minute

// CacheSweeper drops expired entries and reports how many it removed.
// *recommend.Engine satisfies it.
type CacheSweeper interface {
	SweepCache() int
}

// CacheSweeperService periodically sweeps a memo cache so expired rankings
// do not linger until evicted.
type CacheSweeperService struct {
	sweeper  CacheSweeper
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheSweeperService creates a sweeper. A non-positive interval uses
// DefaultSweepInterval.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheSweeperService(sweeper CacheSweeper, interval time.Duration, logger zerolog.Logger) *CacheSweeperService {
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	return &CacheSweeperService{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger.With().Str("service", "cache-sweeper").Logger(),
		name:     "cache-sweeper",
	}
}

// Serve implements suture.Service.
func (s *CacheSweeperService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Debug().Dur("interval", s.interval).Msg("cache sweeper running")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if n := s.sweeper.SweepCache(); n > 0 {
				s.logger.Debug().Int("removed", n).Msg("expired rankings swept")
			}
		}
	}
}

// String implements fmt.Stringer for supervisor logs.
func (s *CacheSweeperService) String() string {
	return s.name
}
