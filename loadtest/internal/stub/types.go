package stub

import "time"

type TaskResponse struct {
	ID        string     `json:"id"`
	UserID    string     `json:"user_id"`
	Title     string     `json:"title"`
	DueDate   *time.Time `json:"due_date,omitempty"`
	Completed bool       `json:"completed"`
}

type TasksResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

type SeedRequest struct {
	Users []SeedUser `json:"users"`
}

// SeedUser describes one synthetic user's task distribution. Offsets are in
// whole days relative to the stub's current date, so a seed file stays valid
// across test runs.
type SeedUser struct {
	UserID string     `json:"user_id"`
	Tasks  []SeedTask `json:"tasks"`
}

type SeedTask struct {
	Title         string `json:"title"`
	DueOffsetDays *int   `json:"due_offset_days,omitempty"`
	Completed     bool   `json:"completed"`
}

type UpdateTaskRequest struct {
	Completed     *bool `json:"completed,omitempty"`
	DueOffsetDays *int  `json:"due_offset_days,omitempty"`
}
