package refresh

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/esdrassantos06/tarevity-notification-core/internal/config"
	"github.com/esdrassantos06/tarevity-notification-core/internal/domain"
	"github.com/esdrassantos06/tarevity-notification-core/internal/observability/metrics"
	"github.com/esdrassantos06/tarevity-notification-core/internal/observability/tracing"
	"github.com/esdrassantos06/tarevity-notification-core/internal/service/reconcile"
)

// Trigger names what initiated a refresh, for logs and metrics.
type Trigger string

const (
	TriggerUser     Trigger = "user"
	TriggerCron     Trigger = "cron"
	TriggerMidnight Trigger = "midnight"
)

// Outcome is the boundary result of one refresh attempt.
type Outcome struct {
	Throttled  bool
	FirstOfDay bool
	Result     *reconcile.Result
}

func (o *Outcome) Updates() int {
	if o.Result == nil {
		return 0
	}

	return o.Result.Updates()
}

type SweepResult struct {
	Users   int
	Failed  int
	Updates int
}

type Service struct {
	reconciler       *reconcile.Service
	state            domain.RefreshStateRepository
	cfg              *config.RefreshConfig
	loc              *time.Location
	reconcileMetrics *metrics.ReconcileMetrics
}

func NewService(
	reconciler *reconcile.Service,
	state domain.RefreshStateRepository,
	cfg *config.RefreshConfig,
	loc *time.Location,
	reconcileMetrics *metrics.ReconcileMetrics,
) *Service {
	if loc == nil {
		loc = time.UTC
	}

	return &Service{
		reconciler:       reconciler,
		state:            state,
		cfg:              cfg,
		loc:              loc,
		reconcileMetrics: reconcileMetrics,
	}
}

// RefreshUser runs one gated reconciliation pass. The first call of a new
// calendar day bypasses the throttle (first-session-of-the-day); sweep
// triggers force through it as well. The watermark is advanced only after a
// successful pass, so a failed pass retries on the next trigger.
func (s *Service) RefreshUser(ctx context.Context, userID string, now time.Time, runID string, trigger Trigger) (*Outcome, error) {
	if runID == "" {
		runID = uuid.NewString()
	}

	today := domain.DayKey(now, s.loc)

	firstOfDay, err := s.isFirstOfDay(ctx, userID, today)
	if err != nil {
		slog.WarnContext(ctx, "failed to read last-check watermark",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		// Treat as not-first and fall back on the throttle alone.
		firstOfDay = false
	}

	force := trigger != TriggerUser
	if !force && !firstOfDay {
		allowed, err := s.state.AcquireRefreshSlot(ctx, userID, s.cfg.ThrottleInterval)
		if err != nil {
			slog.WarnContext(ctx, "failed to check refresh throttle",
				slog.String("user_id", userID),
				slog.String("event", "refresh.throttle.check.fail"),
				slog.String("error", err.Error()),
			)
			// A broken throttle must not block refreshes.
		} else if !allowed {
			slog.DebugContext(ctx, "refresh throttled",
				slog.String("user_id", userID),
			)
			return &Outcome{Throttled: true}, nil
		}
	}

	start := time.Now()

	result, err := s.reconciler.ReconcileUser(ctx, userID, now, runID)
	if err != nil {
		return nil, err
	}

	if s.reconcileMetrics != nil {
		s.reconcileMetrics.RecordPassDuration(ctx, string(trigger), time.Since(start))
	}

	if err := s.state.SetLastCheckDay(ctx, userID, today); err != nil {
		slog.WarnContext(ctx, "failed to advance last-check watermark",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}
	if err := s.state.TouchActiveUser(ctx, userID); err != nil {
		slog.WarnContext(ctx, "failed to touch active user set",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	return &Outcome{
		FirstOfDay: firstOfDay,
		Result:     result,
	}, nil
}

// SweepAll refreshes every recently active user. A failing user is logged
// and the sweep continues; only the user-list fetch aborts the whole sweep.
func (s *Service) SweepAll(ctx context.Context, now time.Time, trigger Trigger) (*SweepResult, error) {
	ctx, span := tracing.StartSweepSpan(ctx, string(trigger))
	defer span.End()

	userIDs, err := s.state.ListActiveUsers(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list active users for sweep",
			slog.String("trigger", string(trigger)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	runID := uuid.NewString()
	sweep := &SweepResult{Users: len(userIDs)}

	for _, userID := range userIDs {
		outcome, err := s.RefreshUser(ctx, userID, now, runID, trigger)
		if err != nil {
			slog.WarnContext(ctx, "sweep refresh failed for user",
				slog.String("user_id", userID),
				slog.String("run_id", runID),
				slog.String("error", err.Error()),
			)
			sweep.Failed++
			continue
		}

		sweep.Updates += outcome.Updates()
	}

	slog.InfoContext(ctx, "sweep completed",
		slog.String("trigger", string(trigger)),
		slog.String("run_id", runID),
		slog.Int("users", sweep.Users),
		slog.Int("failed", sweep.Failed),
		slog.Int("updates", sweep.Updates),
	)

	return sweep, nil
}

func (s *Service) isFirstOfDay(ctx context.Context, userID, today string) (bool, error) {
	lastCheck, err := s.state.LastCheckDay(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrWatermarkNotFound) {
			return true, nil
		}
		return false, err
	}

	return lastCheck != today, nil
}
