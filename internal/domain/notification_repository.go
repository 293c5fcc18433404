package domain

import (
	"context"
	"time"
)

//go:generate mockgen -source=notification_repository.go -destination=notification_repository_mock.go -package=domain

type NotificationRepository interface {
	// ListActive returns the user's non-dismissed notifications.
	ListActive(ctx context.Context, userID string) ([]*Notification, error)
	// ListAll returns every retained notification for the user, active first.
	ListAll(ctx context.Context, userID string) ([]*Notification, error)
	FindByOrigin(ctx context.Context, userID string, key OriginKey) (*Notification, error)
	// UpsertActive writes a notification and points the active-origin index at
	// it. The write is atomic per (userID, origin key).
	UpsertActive(ctx context.Context, notification *Notification) error
	// DismissByOrigin marks the active notifications behind the given origin
	// keys as dismissed and returns how many were dismissed.
	DismissByOrigin(ctx context.Context, userID string, keys []OriginKey) (int, error)
	Dismiss(ctx context.Context, userID, notificationID string) error
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) (int, error)
	// DeleteAll permanently removes every notification for the user.
	DeleteAll(ctx context.Context, userID string) (int, error)
}

// RefreshStateRepository holds per-user refresh bookkeeping: the throttle
// stamp, the last-check watermark, and the recently-active user set swept by
// the midnight scheduler.
type RefreshStateRepository interface {
	// AcquireRefreshSlot reports whether a refresh may run now for the user
	// and, if so, stamps the throttle window.
	AcquireRefreshSlot(ctx context.Context, userID string, interval time.Duration) (bool, error)
	LastCheckDay(ctx context.Context, userID string) (string, error)
	SetLastCheckDay(ctx context.Context, userID, dayKey string) error
	TouchActiveUser(ctx context.Context, userID string) error
	ListActiveUsers(ctx context.Context) ([]string, error)
}
