package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/esdrassantos06/tarevity-notification-core/internal/service/refresh"
)

type countingSweeper struct {
	calls atomic.Int32
	delay time.Duration
}

func (s *countingSweeper) SweepAll(_ context.Context, _ time.Time, _ refresh.Trigger) (*refresh.SweepResult, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return &refresh.SweepResult{}, nil
}

func TestRunner_PeriodicSweep(t *testing.T) {
	sweeper := &countingSweeper{}
	runner := NewRunner(sweeper, time.UTC, 20*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	runner.Run(ctx)

	calls := sweeper.calls.Load()
	if calls < 2 {
		t.Errorf("expected at least 2 periodic sweeps, got %d", calls)
	}
}

func TestRunner_SweepsDoNotOverlap(t *testing.T) {
	// Each sweep outlives several tick intervals; overlapping triggers must
	// be skipped rather than stacked.
	sweeper := &countingSweeper{delay: 50 * time.Millisecond}
	runner := NewRunner(sweeper, time.UTC, 10*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Millisecond)
	defer cancel()

	runner.Run(ctx)

	// Without the guard roughly one sweep per tick would start (~11 here).
	calls := sweeper.calls.Load()
	if calls > 4 {
		t.Errorf("expected skipped overlapping sweeps, got %d calls", calls)
	}
}
