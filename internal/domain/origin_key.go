package domain

import (
	"fmt"
	"strings"
)

// OriginKey is the dedup key correlating one notification to one
// (task, severity) pair. A task has at most one active notification per
// severity tier but may move between tiers over its lifetime.
type OriginKey struct {
	Severity Severity
	TaskID   string
}

func NewOriginKey(bucket Bucket, taskID string) OriginKey {
	return OriginKey{
		Severity: bucket.SeverityOf(),
		TaskID:   taskID,
	}
}

// String renders the legacy "<severity>-<taskID>" storage form.
func (k OriginKey) String() string {
	return k.Severity.String() + "-" + k.TaskID
}

// ParseOriginKey parses the storage form back into a typed key.
func ParseOriginKey(s string) (OriginKey, error) {
	severity, taskID, ok := strings.Cut(s, "-")
	if !ok || taskID == "" {
		return OriginKey{}, fmt.Errorf("%w: %q", ErrInvalidOriginKey, s)
	}

	switch Severity(severity) {
	case SeverityDanger, SeverityWarning, SeverityInfo:
		return OriginKey{Severity: Severity(severity), TaskID: taskID}, nil
	default:
		return OriginKey{}, fmt.Errorf("%w: unknown severity %q", ErrInvalidOriginKey, severity)
	}
}
