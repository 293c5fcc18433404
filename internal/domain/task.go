package domain

import "time"

// Task is the read model of a Tarevity task. Task lifecycle is owned by the
// tasks API; this service only classifies what it reads.
type Task struct {
	ID        string
	UserID    string
	Title     string
	DueDate   *time.Time
	Completed bool
}

// Notifiable reports whether the task can produce a notification at all.
// Completed tasks and tasks without a due date never do.
func (t Task) Notifiable() bool {
	return !t.Completed && t.DueDate != nil
}
