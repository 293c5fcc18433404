package tasksource

import (
	"time"

	"github.com/esdrassantos06/tarevity-notification-core/internal/domain"
)

type taskItem struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Title     string     `json:"title"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Completed bool       `json:"completed"`
}

type tasksResponse struct {
	Tasks []taskItem `json:"tasks"`
	Count int        `json:"count"`
}

func (r *tasksResponse) toDomain() []domain.Task {
	tasks := make([]domain.Task, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		tasks = append(tasks, domain.Task{
			ID:        t.ID,
			UserID:    t.UserID,
			Title:     t.Title,
			DueDate:   t.DueDate,
			Completed: t.Completed,
		})
	}

	return tasks
}
