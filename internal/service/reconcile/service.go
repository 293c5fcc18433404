package reconcile

import (
	"context"
	"log/slog"
	"time"

	"github.com/esdrassantos06/tarevity-notification-core/internal/domain"
	"github.com/esdrassantos06/tarevity-notification-core/internal/infra/tasksource"
	"github.com/esdrassantos06/tarevity-notification-core/internal/observability/metrics"
	"github.com/esdrassantos06/tarevity-notification-core/internal/observability/tracing"
	"github.com/esdrassantos06/tarevity-notification-core/internal/service/urgency"
)

type Service struct {
	taskSource       tasksource.TaskSource
	notificationRepo domain.NotificationRepository
	classifier       *urgency.Classifier
	reconcileMetrics *metrics.ReconcileMetrics
}

func NewService(
	taskSource tasksource.TaskSource,
	notificationRepo domain.NotificationRepository,
	classifier *urgency.Classifier,
	reconcileMetrics *metrics.ReconcileMetrics,
) *Service {
	return &Service{
		taskSource:       taskSource,
		notificationRepo: notificationRepo,
		classifier:       classifier,
		reconcileMetrics: reconcileMetrics,
	}
}

// BuildCandidates classifies tasks into the candidate set for one pass.
// Tasks that are completed, undated, or outside the notification window
// produce nothing; a task with a zero due date is skipped and logged.
func (s *Service) BuildCandidates(ctx context.Context, tasks []domain.Task, now time.Time) []Candidate {
	candidates := make([]Candidate, 0, len(tasks))

	for _, task := range tasks {
		if task.DueDate != nil && task.DueDate.IsZero() {
			slog.WarnContext(ctx, "skipping task with malformed due date",
				slog.String("task_id", task.ID),
			)
			continue
		}

		result, ok := s.classifier.ClassifyTask(task, now)
		if !ok {
			continue
		}

		if s.reconcileMetrics != nil {
			s.reconcileMetrics.RecordBucket(ctx, result.Bucket.String())
		}

		candidates = append(candidates, Candidate{
			Origin:    domain.NewOriginKey(result.Bucket, task.ID),
			Bucket:    result.Bucket,
			TaskID:    task.ID,
			Title:     urgency.Title(result.Bucket),
			Message:   urgency.Message(task.Title, result),
			DueDate:   *task.DueDate,
			DaysUntil: result.DaysUntil,
		})
	}

	return candidates
}

// ReconcileUser runs one full classify-then-dedupe pass for a user. A task
// fetch or state load failure aborts the pass; per-notification write
// failures are collected and do not block sibling writes. Running the pass
// twice against unchanged task state performs zero writes on the second run.
func (s *Service) ReconcileUser(ctx context.Context, userID string, now time.Time, runID string) (*Result, error) {
	ctx, span := tracing.StartReconcilePassSpan(ctx, userID, runID, now)
	defer span.End()

	tasks, err := s.taskSource.ListOpenTasks(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to fetch open tasks",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		if s.reconcileMetrics != nil {
			s.reconcileMetrics.RecordPassFailure(ctx, "task_fetch")
		}
		tracing.RecordReconcileResult(span, 0, 0, 0, 0, 0, err)
		return nil, err
	}

	candidates := s.BuildCandidates(ctx, tasks, now)

	existing, err := s.notificationRepo.ListActive(ctx, userID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load active notifications",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
		if s.reconcileMetrics != nil {
			s.reconcileMetrics.RecordPassFailure(ctx, "state_load")
		}
		tracing.RecordReconcileResult(span, 0, 0, 0, 0, 0, err)
		return nil, err
	}

	existingByOrigin := make(map[string]*domain.Notification, len(existing))
	for _, n := range existing {
		existingByOrigin[n.Origin.String()] = n
	}

	result := &Result{
		UserID: userID,
		Items:  make([]ResultItem, 0, len(candidates)),
	}

	candidateKeys := make(map[string]struct{}, len(candidates))
	for _, candidate := range candidates {
		candidateKeys[candidate.Origin.String()] = struct{}{}
		s.reconcileCandidate(ctx, userID, candidate, existingByOrigin, result)
	}

	s.dismissStale(ctx, userID, existing, candidateKeys, result)

	slog.InfoContext(ctx, "reconciliation pass completed",
		slog.String("user_id", userID),
		slog.String("run_id", runID),
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Int("dismissed", result.Dismissed),
		slog.Int("unchanged", result.Unchanged),
		slog.Int("failed", result.Failed),
	)

	tracing.RecordReconcileResult(span, result.Created, result.Updated, result.Dismissed, result.Unchanged, result.Failed, nil)

	return result, nil
}

func (s *Service) reconcileCandidate(
	ctx context.Context,
	userID string,
	candidate Candidate,
	existingByOrigin map[string]*domain.Notification,
	result *Result,
) {
	item := ResultItem{
		TaskID:    candidate.TaskID,
		OriginKey: candidate.Origin.String(),
		Bucket:    candidate.Bucket,
		Success:   true,
	}

	current, found := existingByOrigin[candidate.Origin.String()]

	switch {
	case found && current.SameContent(candidate.Title, candidate.Message, candidate.DueDate):
		item.Action = ActionUnchanged
		result.Unchanged++
		s.recordWrite(ctx, string(ActionUnchanged), candidate.Bucket)

	case found:
		updated := *current
		updated.Refresh(candidate.Bucket, candidate.Title, candidate.Message, candidate.DueDate)

		if err := s.notificationRepo.UpsertActive(ctx, &updated); err != nil {
			slog.WarnContext(ctx, "failed to update notification",
				slog.String("user_id", userID),
				slog.String("origin_key", candidate.Origin.String()),
				slog.String("error", err.Error()),
			)
			item.Success = false
			item.Error = err.Error()
			result.Failed++
			s.recordWrite(ctx, "failed", candidate.Bucket)
			break
		}

		item.Action = ActionUpdated
		result.Updated++
		s.recordWrite(ctx, string(ActionUpdated), candidate.Bucket)

	default:
		created := domain.NewNotification(userID, candidate.Bucket, candidate.TaskID, candidate.Title, candidate.Message, candidate.DueDate)

		if err := s.notificationRepo.UpsertActive(ctx, created); err != nil {
			slog.WarnContext(ctx, "failed to create notification",
				slog.String("user_id", userID),
				slog.String("origin_key", candidate.Origin.String()),
				slog.String("error", err.Error()),
			)
			item.Success = false
			item.Error = err.Error()
			result.Failed++
			s.recordWrite(ctx, "failed", candidate.Bucket)
			break
		}

		item.Action = ActionCreated
		result.Created++
		s.recordWrite(ctx, string(ActionCreated), candidate.Bucket)
	}

	result.Items = append(result.Items, item)
}

// dismissStale retires active notifications whose origin key is absent from
// the candidate set: the task completed, lost its due date, or moved to a
// different bucket.
func (s *Service) dismissStale(
	ctx context.Context,
	userID string,
	existing []*domain.Notification,
	candidateKeys map[string]struct{},
	result *Result,
) {
	staleKeys := make([]domain.OriginKey, 0)
	for _, n := range existing {
		if _, live := candidateKeys[n.Origin.String()]; !live {
			staleKeys = append(staleKeys, n.Origin)
		}
	}

	if len(staleKeys) == 0 {
		return
	}

	dismissed, err := s.notificationRepo.DismissByOrigin(ctx, userID, staleKeys)
	if err != nil {
		slog.WarnContext(ctx, "failed to dismiss stale notifications",
			slog.String("user_id", userID),
			slog.Int("stale_count", len(staleKeys)),
			slog.String("error", err.Error()),
		)
		result.Failed += len(staleKeys)
		for _, key := range staleKeys {
			result.Items = append(result.Items, ResultItem{
				TaskID:    key.TaskID,
				OriginKey: key.String(),
				Action:    ActionDismissed,
				Success:   false,
				Error:     err.Error(),
			})
		}
		return
	}

	result.Dismissed += dismissed
	for _, key := range staleKeys {
		result.Items = append(result.Items, ResultItem{
			TaskID:    key.TaskID,
			OriginKey: key.String(),
			Action:    ActionDismissed,
			Success:   true,
		})
		s.recordWrite(ctx, string(ActionDismissed), domain.BucketNone)
	}
}

func (s *Service) recordWrite(ctx context.Context, outcome string, bucket domain.Bucket) {
	if s.reconcileMetrics != nil {
		s.reconcileMetrics.RecordWrite(ctx, outcome, bucket.String())
	}
}
