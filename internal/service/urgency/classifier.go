package urgency

import (
	"fmt"
	"time"

	"github.com/esdrassantos06/tarevity-notification-core/internal/domain"
)

const (
	// UpcomingWindowDays is the furthest due date (in days from today) that
	// still produces a notification. Beyond it a task is silent.
	UpcomingWindowDays = 4
)

// Classification is the result of bucketing one due date against one
// reference day.
type Classification struct {
	Bucket    domain.Bucket
	DaysUntil int
}

type Classifier struct {
	loc *time.Location
}

func NewClassifier(loc *time.Location) *Classifier {
	if loc == nil {
		loc = time.UTC
	}

	return &Classifier{loc: loc}
}

// Classify buckets a due date relative to today on calendar-day granularity.
// Both instants are normalized to midnight before subtracting, so the result
// does not depend on what hour the pass runs. Day 0 is its own bucket
// (dueToday), distinct from overdue, but shares the danger severity tier.
func (c *Classifier) Classify(dueDate, today time.Time) Classification {
	dueMidnight := domain.Midnight(dueDate, c.loc)
	todayMidnight := domain.Midnight(today, c.loc)

	// Rounding absorbs the 23/25 hour days around DST transitions.
	daysUntil := int(dueMidnight.Sub(todayMidnight).Round(24*time.Hour) / (24 * time.Hour))

	result := Classification{DaysUntil: daysUntil}

	switch {
	case daysUntil < 0:
		result.Bucket = domain.BucketOverdue
	case daysUntil == 0:
		result.Bucket = domain.BucketDueToday
	case daysUntil == 1:
		result.Bucket = domain.BucketDueTomorrow
	case daysUntil <= UpcomingWindowDays:
		result.Bucket = domain.BucketUpcoming
	default:
		result.Bucket = domain.BucketNone
	}

	return result
}

// ClassifyTask applies notifiability filtering before bucketing. The second
// return value is false when the task produces no notification.
func (c *Classifier) ClassifyTask(task domain.Task, today time.Time) (Classification, bool) {
	if !task.Notifiable() {
		return Classification{Bucket: domain.BucketNone}, false
	}

	result := c.Classify(*task.DueDate, today)
	if result.Bucket.IsNone() {
		return result, false
	}

	return result, true
}

// Title returns the notification title for a bucket.
func Title(bucket domain.Bucket) string {
	switch bucket {
	case domain.BucketOverdue:
		return "Task Overdue"
	case domain.BucketDueToday:
		return "Due Today"
	case domain.BucketDueTomorrow:
		return "Due Tomorrow"
	default:
		return "Upcoming Deadline"
	}
}

// Message renders the human-readable body. It is regenerated on every pass;
// a changed day count is what drives an in-place update.
func Message(taskTitle string, result Classification) string {
	switch result.Bucket {
	case domain.BucketOverdue:
		return fmt.Sprintf("%q is overdue by %s", taskTitle, pluralDays(-result.DaysUntil))
	case domain.BucketDueToday:
		return fmt.Sprintf("%q is due today", taskTitle)
	case domain.BucketDueTomorrow:
		return fmt.Sprintf("%q is due tomorrow", taskTitle)
	default:
		return fmt.Sprintf("%q is due in %s", taskTitle, pluralDays(result.DaysUntil))
	}
}

func pluralDays(n int) string {
	if n == 1 {
		return "1 day"
	}

	return fmt.Sprintf("%d days", n)
}
