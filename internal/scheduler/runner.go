package scheduler

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/esdrassantos06/tarevity-notification-core/internal/domain"
	"github.com/esdrassantos06/tarevity-notification-core/internal/service/refresh"
)

// Sweeper runs one reconciliation sweep across all active users.
type Sweeper interface {
	SweepAll(ctx context.Context, now time.Time, trigger refresh.Trigger) (*refresh.SweepResult, error)
}

// Runner fires a sweep at every local midnight, so buckets that change
// purely from date rollover (upcoming becoming dueTomorrow) are recalculated
// without any user action. An optional fixed interval adds periodic sweeps
// on top. Sweeps never overlap; a trigger landing mid-sweep is skipped, not
// queued.
type Runner struct {
	sweeper  Sweeper
	loc      *time.Location
	interval time.Duration
	sweeping atomic.Bool
}

func NewRunner(sweeper Sweeper, loc *time.Location, interval time.Duration) *Runner {
	if loc == nil {
		loc = time.UTC
	}

	return &Runner{
		sweeper:  sweeper,
		loc:      loc,
		interval: interval,
	}
}

// Run blocks until the context is cancelled. In-flight sweeps run to
// completion; the timers are simply not re-armed after shutdown.
func (r *Runner) Run(ctx context.Context) {
	midnight := time.NewTimer(time.Until(domain.NextMidnight(time.Now(), r.loc)))
	defer midnight.Stop()

	var tick <-chan time.Time
	if r.interval > 0 {
		ticker := time.NewTicker(r.interval)
		defer ticker.Stop()
		tick = ticker.C
	}

	slog.Info("scheduler started",
		slog.Time("next_midnight", domain.NextMidnight(time.Now(), r.loc)),
		slog.Duration("sweep_interval", r.interval),
	)

	for {
		select {
		case <-ctx.Done():
			slog.Info("scheduler stopped")
			return

		case <-midnight.C:
			go r.sweep(context.WithoutCancel(ctx), refresh.TriggerMidnight)
			midnight.Reset(time.Until(domain.NextMidnight(time.Now(), r.loc)))

		case <-tick:
			go r.sweep(context.WithoutCancel(ctx), refresh.TriggerCron)
		}
	}
}

func (r *Runner) sweep(ctx context.Context, trigger refresh.Trigger) {
	if !r.sweeping.CompareAndSwap(false, true) {
		slog.Warn("skipping sweep, previous sweep still running",
			slog.String("trigger", string(trigger)),
		)
		return
	}
	defer r.sweeping.Store(false)

	if _, err := r.sweeper.SweepAll(ctx, time.Now(), trigger); err != nil {
		slog.ErrorContext(ctx, "scheduled sweep failed",
			slog.String("trigger", string(trigger)),
			slog.String("error", err.Error()),
		)
	}
}
