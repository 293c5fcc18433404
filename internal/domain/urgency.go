package domain

// Bucket represents the due-date proximity classification of a task.
type Bucket string

const (
	BucketOverdue     Bucket = "overdue"
	BucketDueToday    Bucket = "dueToday"
	BucketDueTomorrow Bucket = "dueTomorrow"
	BucketUpcoming    Bucket = "upcoming"
	// BucketNone means the task does not qualify for a notification.
	BucketNone Bucket = ""
)

func (b Bucket) String() string {
	return string(b)
}

func (b Bucket) IsNone() bool {
	return b == BucketNone
}

// Severity is the tri-level tier surfaced to the UI. Day 0 keeps its own
// bucket (dueToday) but shares the danger tier with overdue tasks.
type Severity string

const (
	SeverityDanger  Severity = "danger"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

func (s Severity) String() string {
	return string(s)
}

// SeverityOf maps a bucket to its severity tier.
func (b Bucket) SeverityOf() Severity {
	switch b {
	case BucketOverdue, BucketDueToday:
		return SeverityDanger
	case BucketDueTomorrow:
		return SeverityWarning
	default:
		return SeverityInfo
	}
}
