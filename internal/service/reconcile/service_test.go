package reconcile

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/esdrassantos06/tarevity-notification-core/internal/domain"
	"github.com/esdrassantos06/tarevity-notification-core/internal/infra/tasksource"
	"github.com/esdrassantos06/tarevity-notification-core/internal/service/urgency"
)

func createTestService(taskSource tasksource.TaskSource, repo domain.NotificationRepository) *Service {
	return NewService(taskSource, repo, urgency.NewClassifier(time.UTC), nil)
}

func datePtr(t time.Time) *time.Time {
	return &t
}

func TestReconcileUser_CreatesNotificationForNewCandidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTasks := tasksource.NewMockTaskSource(ctrl)
	mockRepo := domain.NewMockNotificationRepository(ctrl)

	now := time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 1)

	mockTasks.EXPECT().
		ListOpenTasks(gomock.Any(), "user-1").
		Return([]domain.Task{
			{ID: "task-1", UserID: "user-1", Title: "Pay rent", DueDate: &due},
		}, nil)

	mockRepo.EXPECT().
		ListActive(gomock.Any(), "user-1").
		Return([]*domain.Notification{}, nil)

	var saved *domain.Notification
	mockRepo.EXPECT().
		UpsertActive(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *domain.Notification) error {
			saved = n
			return nil
		})

	svc := createTestService(mockTasks, mockRepo)

	result, err := svc.ReconcileUser(context.Background(), "user-1", now, "run-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Created != 1 || result.Updated != 0 || result.Dismissed != 0 || result.Failed != 0 {
		t.Errorf("unexpected counts: %+v", result)
	}
	if result.Updates() != 1 {
		t.Errorf("Updates() = %d, want 1", result.Updates())
	}

	if saved == nil {
		t.Fatal("expected a notification to be written")
	}
	if saved.Origin.String() != "warning-task-1" {
		t.Errorf("origin key = %q, want %q", saved.Origin.String(), "warning-task-1")
	}
	if saved.Bucket != domain.BucketDueTomorrow {
		t.Errorf("bucket = %v, want %v", saved.Bucket, domain.BucketDueTomorrow)
	}
	if saved.Read || saved.Dismissed {
		t.Errorf("new notification must start unread and undismissed, got read=%v dismissed=%v", saved.Read, saved.Dismissed)
	}
}

// Running the pass again with unchanged task state must perform zero writes.
func TestReconcileUser_SecondPassIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTasks := tasksource.NewMockTaskSource(ctrl)
	mockRepo := domain.NewMockNotificationRepository(ctrl)

	now := time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 1)

	existing := domain.NewNotification("user-1", domain.BucketDueTomorrow, "task-1",
		urgency.Title(domain.BucketDueTomorrow),
		urgency.Message("Pay rent", urgency.Classification{Bucket: domain.BucketDueTomorrow, DaysUntil: 1}),
		due,
	)

	mockTasks.EXPECT().
		ListOpenTasks(gomock.Any(), "user-1").
		Return([]domain.Task{
			{ID: "task-1", UserID: "user-1", Title: "Pay rent", DueDate: &due},
		}, nil)

	mockRepo.EXPECT().
		ListActive(gomock.Any(), "user-1").
		Return([]*domain.Notification{existing}, nil)

	// No UpsertActive, no DismissByOrigin.

	svc := createTestService(mockTasks, mockRepo)

	result, err := svc.ReconcileUser(context.Background(), "user-1", now, "run-2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Updates() != 0 {
		t.Errorf("Updates() = %d, want 0", result.Updates())
	}
	if result.Unchanged != 1 {
		t.Errorf("Unchanged = %d, want 1", result.Unchanged)
	}
}

func TestReconcileUser_UpdatePreservesReadState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTasks := tasksource.NewMockTaskSource(ctrl)
	mockRepo := domain.NewMockNotificationRepository(ctrl)

	now := time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, -2)

	// Written when the task was one day overdue; now it is two days overdue,
	// so the message text changes while the origin key stays put.
	existing := domain.NewNotification("user-1", domain.BucketOverdue, "task-1",
		urgency.Title(domain.BucketOverdue),
		urgency.Message("Pay rent", urgency.Classification{Bucket: domain.BucketOverdue, DaysUntil: -1}),
		due,
	)
	existing.Read = true

	mockTasks.EXPECT().
		ListOpenTasks(gomock.Any(), "user-1").
		Return([]domain.Task{
			{ID: "task-1", UserID: "user-1", Title: "Pay rent", DueDate: &due},
		}, nil)

	mockRepo.EXPECT().
		ListActive(gomock.Any(), "user-1").
		Return([]*domain.Notification{existing}, nil)

	var saved *domain.Notification
	mockRepo.EXPECT().
		UpsertActive(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *domain.Notification) error {
			saved = n
			return nil
		})

	svc := createTestService(mockTasks, mockRepo)

	result, err := svc.ReconcileUser(context.Background(), "user-1", now, "run-3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Updated != 1 {
		t.Errorf("Updated = %d, want 1", result.Updated)
	}
	if saved == nil {
		t.Fatal("expected a notification to be written")
	}
	if !saved.Read {
		t.Error("update must preserve read state")
	}
	if saved.ID != existing.ID {
		t.Errorf("update must keep identity: got %q, want %q", saved.ID, existing.ID)
	}
	if saved.Message != `"Pay rent" is overdue by 2 days` {
		t.Errorf("message = %q, want refreshed day count", saved.Message)
	}
}

// A task moving from upcoming to dueTomorrow must dismiss the stale info
// notification and create the warning one in the same pass.
func TestReconcileUser_BucketTransition(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTasks := tasksource.NewMockTaskSource(ctrl)
	mockRepo := domain.NewMockNotificationRepository(ctrl)

	dayN := time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC)
	dayN1 := dayN.AddDate(0, 0, 1)
	due := dayN.AddDate(0, 0, 2)

	existing := domain.NewNotification("user-1", domain.BucketUpcoming, "task-1",
		urgency.Title(domain.BucketUpcoming),
		urgency.Message("Pay rent", urgency.Classification{Bucket: domain.BucketUpcoming, DaysUntil: 2}),
		due,
	)

	mockTasks.EXPECT().
		ListOpenTasks(gomock.Any(), "user-1").
		Return([]domain.Task{
			{ID: "task-1", UserID: "user-1", Title: "Pay rent", DueDate: &due},
		}, nil)

	mockRepo.EXPECT().
		ListActive(gomock.Any(), "user-1").
		Return([]*domain.Notification{existing}, nil)

	var created *domain.Notification
	mockRepo.EXPECT().
		UpsertActive(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *domain.Notification) error {
			created = n
			return nil
		})

	mockRepo.EXPECT().
		DismissByOrigin(gomock.Any(), "user-1", []domain.OriginKey{existing.Origin}).
		Return(1, nil)

	svc := createTestService(mockTasks, mockRepo)

	result, err := svc.ReconcileUser(context.Background(), "user-1", dayN1, "run-4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Created != 1 || result.Dismissed != 1 {
		t.Errorf("counts = %+v, want one created and one dismissed", result)
	}
	if created == nil {
		t.Fatal("expected a notification to be written")
	}
	if created.Origin.String() != "warning-task-1" {
		t.Errorf("new origin key = %q, want %q", created.Origin.String(), "warning-task-1")
	}
}

// The "Pay rent" scenario: upcoming (info) on Jan 8, dueToday (danger) on
// Jan 10 with the info notification dismissed.
func TestReconcileUser_PayRentScenario(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTasks := tasksource.NewMockTaskSource(ctrl)
	mockRepo := domain.NewMockNotificationRepository(ctrl)

	due := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	jan8 := time.Date(2025, 1, 8, 10, 0, 0, 0, time.UTC)
	jan10 := time.Date(2025, 1, 10, 10, 0, 0, 0, time.UTC)

	task := domain.Task{ID: "task-rent", UserID: "user-1", Title: "Pay rent", DueDate: &due}

	svc := createTestService(mockTasks, mockRepo)

	// Jan 8: due in 2 days, info bucket.
	mockTasks.EXPECT().ListOpenTasks(gomock.Any(), "user-1").Return([]domain.Task{task}, nil)
	mockRepo.EXPECT().ListActive(gomock.Any(), "user-1").Return([]*domain.Notification{}, nil)

	var infoNotification *domain.Notification
	mockRepo.EXPECT().
		UpsertActive(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *domain.Notification) error {
			infoNotification = n
			return nil
		})

	if _, err := svc.ReconcileUser(context.Background(), "user-1", jan8, "run-jan8"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if infoNotification.Origin.String() != "info-task-rent" {
		t.Fatalf("origin key on Jan 8 = %q, want %q", infoNotification.Origin.String(), "info-task-rent")
	}

	// Jan 10: due today, danger bucket; the info notification goes stale.
	mockTasks.EXPECT().ListOpenTasks(gomock.Any(), "user-1").Return([]domain.Task{task}, nil)
	mockRepo.EXPECT().ListActive(gomock.Any(), "user-1").Return([]*domain.Notification{infoNotification}, nil)

	var dangerNotification *domain.Notification
	mockRepo.EXPECT().
		UpsertActive(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *domain.Notification) error {
			dangerNotification = n
			return nil
		})
	mockRepo.EXPECT().
		DismissByOrigin(gomock.Any(), "user-1", []domain.OriginKey{infoNotification.Origin}).
		Return(1, nil)

	result, err := svc.ReconcileUser(context.Background(), "user-1", jan10, "run-jan10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if dangerNotification.Origin.String() != "danger-task-rent" {
		t.Errorf("origin key on Jan 10 = %q, want %q", dangerNotification.Origin.String(), "danger-task-rent")
	}
	if dangerNotification.Bucket != domain.BucketDueToday {
		t.Errorf("bucket on Jan 10 = %v, want %v", dangerNotification.Bucket, domain.BucketDueToday)
	}
	if result.Created != 1 || result.Dismissed != 1 {
		t.Errorf("counts = %+v, want one created and one dismissed", result)
	}
}

func TestReconcileUser_CompletedTaskDismissesNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTasks := tasksource.NewMockTaskSource(ctrl)
	mockRepo := domain.NewMockNotificationRepository(ctrl)

	now := time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 1)

	existing := domain.NewNotification("user-1", domain.BucketDueTomorrow, "task-1",
		urgency.Title(domain.BucketDueTomorrow),
		urgency.Message("Pay rent", urgency.Classification{Bucket: domain.BucketDueTomorrow, DaysUntil: 1}),
		due,
	)

	// The completed task is filtered by the tasks API status=open query, so
	// the fetch returns nothing for it.
	mockTasks.EXPECT().
		ListOpenTasks(gomock.Any(), "user-1").
		Return([]domain.Task{}, nil)

	mockRepo.EXPECT().
		ListActive(gomock.Any(), "user-1").
		Return([]*domain.Notification{existing}, nil)

	mockRepo.EXPECT().
		DismissByOrigin(gomock.Any(), "user-1", []domain.OriginKey{existing.Origin}).
		Return(1, nil)

	svc := createTestService(mockTasks, mockRepo)

	result, err := svc.ReconcileUser(context.Background(), "user-1", now, "run-5")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Dismissed != 1 || result.Created != 0 {
		t.Errorf("counts = %+v, want one dismissed and nothing created", result)
	}
}

func TestReconcileUser_TaskFetchFailureAbortsPass(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTasks := tasksource.NewMockTaskSource(ctrl)
	mockRepo := domain.NewMockNotificationRepository(ctrl)

	fetchErr := errors.New("tasks API unavailable")

	mockTasks.EXPECT().
		ListOpenTasks(gomock.Any(), "user-1").
		Return(nil, fetchErr)

	svc := createTestService(mockTasks, mockRepo)

	_, err := svc.ReconcileUser(context.Background(), "user-1", time.Now(), "run-6")
	if !errors.Is(err, fetchErr) {
		t.Fatalf("expected fetch error to propagate, got %v", err)
	}
}

// One failing write must not block sibling writes.
func TestReconcileUser_PartialWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTasks := tasksource.NewMockTaskSource(ctrl)
	mockRepo := domain.NewMockNotificationRepository(ctrl)

	now := time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC)
	dueTomorrow := now.AddDate(0, 0, 1)
	dueUpcoming := now.AddDate(0, 0, 3)

	mockTasks.EXPECT().
		ListOpenTasks(gomock.Any(), "user-1").
		Return([]domain.Task{
			{ID: "task-1", UserID: "user-1", Title: "First", DueDate: &dueTomorrow},
			{ID: "task-2", UserID: "user-1", Title: "Second", DueDate: &dueUpcoming},
		}, nil)

	mockRepo.EXPECT().
		ListActive(gomock.Any(), "user-1").
		Return([]*domain.Notification{}, nil)

	writeErr := errors.New("write failed")
	mockRepo.EXPECT().
		UpsertActive(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, n *domain.Notification) error {
			if n.TaskID == "task-1" {
				return writeErr
			}
			return nil
		}).
		Times(2)

	svc := createTestService(mockTasks, mockRepo)

	result, err := svc.ReconcileUser(context.Background(), "user-1", now, "run-7")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Failed != 1 || result.Created != 1 {
		t.Errorf("counts = %+v, want one failed and one created", result)
	}

	var failedItem *ResultItem
	for i := range result.Items {
		if !result.Items[i].Success {
			failedItem = &result.Items[i]
		}
	}
	if failedItem == nil {
		t.Fatal("expected a failed result item")
	}
	if failedItem.TaskID != "task-1" || failedItem.Error != writeErr.Error() {
		t.Errorf("failed item = %+v", failedItem)
	}
}

func TestBuildCandidates_SkipsMalformedDueDate(t *testing.T) {
	svc := createTestService(nil, nil)

	now := time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC)
	due := now.AddDate(0, 0, 1)

	candidates := svc.BuildCandidates(context.Background(), []domain.Task{
		{ID: "task-1", Title: "Good", DueDate: &due},
		{ID: "task-2", Title: "Zero due date", DueDate: datePtr(time.Time{})},
		{ID: "task-3", Title: "No due date"},
	}, now)

	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}
	if candidates[0].TaskID != "task-1" {
		t.Errorf("candidate task = %q, want task-1", candidates[0].TaskID)
	}
}
