package scheduler

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// blockingRefresher holds each Refresh call until released, so tests can
// pin a run in flight.
type blockingRefresher struct {
	key     string
	started chan struct{}
	release chan struct{}
	calls   int32
	err     error
}

func newBlockingRefresher(key string) *blockingRefresher {
	return &blockingRefresher{
		key:     key,
		started: make(chan struct{}, 16),
		release: make(chan struct{}),
	}
}

func (r *blockingRefresher) RefreshKey() string { return r.key }

func (r *blockingRefresher) Refresh(ctx context.Context) error {
	atomic.AddInt32(&r.calls, 1)
	r.started <- struct{}{}
	<-r.release
	return r.err
}

func TestTrigger_RunsRefresh(t *testing.T) {
	r := newBlockingRefresher("2026-9")
	close(r.release)

	s := New(r, time.Hour)
	assert.True(t, s.Trigger(context.Background()))
	assert.EqualValues(t, 1, atomic.LoadInt32(&r.calls))
}

func TestTrigger_SkipsWhileSameKeyInFlight(t *testing.T) {
	r := newBlockingRefresher("2026-9")
	s := New(r, time.Hour)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.Trigger(context.Background())
	}()
	<-r.started

	// The first run is still blocked inside Refresh.
	assert.False(t, s.Trigger(context.Background()))
	assert.EqualValues(t, 1, atomic.LoadInt32(&r.calls))

	close(r.release)
	wg.Wait()

	// Once released the key is free again.
	assert.True(t, s.Trigger(context.Background()))
	assert.EqualValues(t, 2, atomic.LoadInt32(&r.calls))
}

func TestTrigger_RefreshErrorStillReleasesKey(t *testing.T) {
	r := newBlockingRefresher("2026-9")
	r.err = errors.New("refresh failed")
	close(r.release)

	s := New(r, time.Hour)
	assert.True(t, s.Trigger(context.Background()))
	assert.True(t, s.Trigger(context.Background()))
	assert.EqualValues(t, 2, atomic.LoadInt32(&r.calls))
}

func TestRun_FiresImmediatelyAndStopsOnCancel(t *testing.T) {
	r := newBlockingRefresher("2026-9")
	close(r.release)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	s := New(r, time.Hour)
	go func() {
		s.Run(ctx)
		close(done)
	}()

	select {
	case <-r.started:
	case <-time.After(time.Second):
		t.Fatal("initial refresh never fired")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancel")
	}
	assert.EqualValues(t, 1, atomic.LoadInt32(&r.calls))
}
