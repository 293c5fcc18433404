package reconcile

import (
	"time"

	"github.com/esdrassantos06/tarevity-notification-core/internal/domain"
)

// Candidate is one task currently sitting in a qualifying urgency bucket.
type Candidate struct {
	Origin    domain.OriginKey
	Bucket    domain.Bucket
	TaskID    string
	Title     string
	Message   string
	DueDate   time.Time
	DaysUntil int
}

type Action string

const (
	ActionCreated   Action = "created"
	ActionUpdated   Action = "updated"
	ActionDismissed Action = "dismissed"
	ActionUnchanged Action = "unchanged"
)

type ResultItem struct {
	TaskID    string        `json:"task_id"`
	OriginKey string        `json:"origin_key"`
	Bucket    domain.Bucket `json:"bucket,omitempty"`
	Action    Action        `json:"action"`
	Success   bool          `json:"success"`
	Error     string        `json:"error,omitempty"`
}

type Result struct {
	UserID    string       `json:"user_id"`
	Created   int          `json:"created"`
	Updated   int          `json:"updated"`
	Dismissed int          `json:"dismissed"`
	Unchanged int          `json:"unchanged"`
	Failed    int          `json:"failed"`
	Items     []ResultItem `json:"items"`
}

// Updates counts the writes that changed visible state.
func (r *Result) Updates() int {
	return r.Created + r.Updated + r.Dismissed
}
