package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is one alert surfaced to a user about a task crossing an
// urgency threshold. At most one active (non-dismissed) notification exists
// per (user, origin key).
type Notification struct {
	ID        string
	UserID    string
	TaskID    string
	Origin    OriginKey
	Bucket    Bucket
	Title     string
	Message   string
	DueDate   time.Time
	Read      bool
	Dismissed bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewNotification(userID string, bucket Bucket, taskID, title, message string, dueDate time.Time) *Notification {
	now := time.Now().UTC()

	return &Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		TaskID:    taskID,
		Origin:    NewOriginKey(bucket, taskID),
		Bucket:    bucket,
		Title:     title,
		Message:   message,
		DueDate:   dueDate,
		Read:      false,
		Dismissed: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Refresh replaces the regenerated fields while preserving identity and read
// state. The bucket may move within a severity tier (overdue and dueToday
// share one origin), so it is refreshed alongside the text.
func (n *Notification) Refresh(bucket Bucket, title, message string, dueDate time.Time) {
	n.Bucket = bucket
	n.Title = title
	n.Message = message
	n.DueDate = dueDate
	n.UpdatedAt = time.Now().UTC()
}

// SameContent reports whether a reconciliation pass would be a no-op for this
// notification.
func (n *Notification) SameContent(title, message string, dueDate time.Time) bool {
	return n.Title == title && n.Message == message && n.DueDate.Equal(dueDate)
}
