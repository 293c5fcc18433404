package tasksource

import (
	"context"

	"github.com/esdrassantos06/tarevity-notification-core/internal/domain"
)

//go:generate mockgen -source=source.go -destination=mock.go -package=tasksource

// TaskSource provides the open tasks a reconciliation pass classifies.
type TaskSource interface {
	ListOpenTasks(ctx context.Context, userID string) ([]domain.Task, error)
}
