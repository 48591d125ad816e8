// Package scheduler drives the periodic full refresh of the notification
// cache from the remote service.
package scheduler

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/wb-go/wbf/zlog"
)

// refresher is the single store operation the scheduler drives.
type refresher interface {
	Refresh(ctx context.Context) error
}

// syncMetrics counts refresh outcomes.
type syncMetrics interface {
	RefreshSucceeded()
	RefreshFailed()
}

// Scheduler triggers a cache refresh on a fixed interval, independent of
// user actions, for the lifetime of the process.
type Scheduler struct {
	store    refresher
	metrics  syncMetrics
	interval time.Duration
	inFlight atomic.Bool
	wg       sync.WaitGroup
}

// New creates a Scheduler refreshing the given store every interval.
func New(store refresher, metrics syncMetrics, interval time.Duration) *Scheduler {
	return &Scheduler{store: store, metrics: metrics, interval: interval}
}

// Run ticks until ctx is cancelled. Each tick is best effort: a failed
// refresh is logged and retried implicitly at the next tick. A tick that
// fires while the previous refresh is still in flight is skipped, so at
// most one refresh request is outstanding at any time. Run returns only
// once any in-flight refresh has completed.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	zlog.Logger.Info().Dur("interval", s.interval).Msg("sync scheduler started")

	for {
		select {
		case <-ctx.Done():
			s.wg.Wait()
			zlog.Logger.Info().Msg("sync scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if !s.inFlight.CompareAndSwap(false, true) {
		zlog.Logger.Debug().Msg("refresh still in flight, skipping tick")
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer s.inFlight.Store(false)

		if err := s.store.Refresh(ctx); err != nil {
			s.metrics.RefreshFailed()
			zlog.Logger.Error().Err(err).Msg("periodic refresh failed")
			return
		}

		s.metrics.RefreshSucceeded()
	}()
}
