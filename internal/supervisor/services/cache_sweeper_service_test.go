// Reelmatch - Movie Recommendations and Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"
)

var _ suture.Service = (*CacheSweeperService)(nil)

type countingSweeper struct {
	calls atomic.Int32
}

func (c *countingSweeper) SweepCache() int {
	return int(c.calls.Add(1))
}

func TestNewCacheSweeperService_DefaultInterval(t *testing.T) {
	t.Parallel()

	svc := NewCacheSweeperService(&countingSweeper{}, 0, zerolog.Nop())
	if svc.interval != DefaultSweepInterval {
		t.Errorf("interval = %v, want %v", svc.interval, DefaultSweepInterval)
	}
	if svc.String() != "cache-sweeper" {
		t.Errorf("String() = %q", svc.String())
	}
}

func TestCacheSweeperService_Serve(t *testing.T) {
	t.Parallel()

	sweeper := &countingSweeper{}
	svc := NewCacheSweeperService(sweeper, 5*time.Millisecond, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- svc.Serve(ctx) }()

	deadline := time.Now().Add(time.Second)
	for sweeper.calls.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	cancel()

	if err := <-errCh; !errors.Is(err, context.Canceled) {
		t.Errorf("Serve() error = %v, want context.Canceled", err)
	}
	if sweeper.calls.Load() < 3 {
		t.Errorf("sweeps = %d, want at least 3", sweeper.calls.Load())
	}
}
