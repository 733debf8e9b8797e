// Package scheduler drives the periodic leaderboard refresh independent
// of any client session: once at process start, then on a fixed interval.
package scheduler

import (
	"context"
	"log"
	"sync"
	"time"
)

// Refresher is the refresh entry point. Implemented by the snapshot
// manager; the month key of the run it serializes on is derived from the
// wall clock at call time.
type Refresher interface {
	RefreshKey() string
	Refresh(ctx context.Context) error
}

type Scheduler struct {
	refresher Refresher
	interval  time.Duration

	mu       sync.Mutex
	inFlight map[string]bool
}

func New(refresher Refresher, interval time.Duration) *Scheduler {
	return &Scheduler{
		refresher: refresher,
		interval:  interval,
		inFlight:  make(map[string]bool),
	}
}

// Run blocks until ctx is cancelled. It fires one refresh immediately,
// then one per interval tick.
func (s *Scheduler) Run(ctx context.Context) {
	log.Printf("[Scheduler] starting, refresh interval %s", s.interval)
	s.Trigger(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("[Scheduler] stopping")
			return
		case <-ticker.C:
			s.Trigger(ctx)
		}
	}
}

// Trigger runs one refresh unless a run for the same month key is still
// in flight; overlapping runs for one key are skipped, never interleaved.
// Returns false when the run was skipped.
func (s *Scheduler) Trigger(ctx context.Context) bool {
	key := s.refresher.RefreshKey()

	s.mu.Lock()
	if s.inFlight[key] {
		s.mu.Unlock()
		log.Printf("[Scheduler] refresh for %s already in flight, skipping", key)
		return false
	}
	s.inFlight[key] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, key)
		s.mu.Unlock()
	}()

	if err := s.refresher.Refresh(ctx); err != nil {
		log.Printf("[Scheduler] refresh for %s failed: %v", key, err)
		return true
	}
	return true
}
