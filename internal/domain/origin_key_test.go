package domain

import (
	"errors"
	"testing"
)

func TestOriginKeyRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		bucket Bucket
		taskID string
		want   string
	}{
		{"overdue maps to danger", BucketOverdue, "task-1", "danger-task-1"},
		{"due today shares danger", BucketDueToday, "task-1", "danger-task-1"},
		{"due tomorrow maps to warning", BucketDueTomorrow, "task-2", "warning-task-2"},
		{"upcoming maps to info", BucketUpcoming, "task-3", "info-task-3"},
		{"task id with dashes survives", BucketUpcoming, "task-with-dashes", "info-task-with-dashes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewOriginKey(tt.bucket, tt.taskID)

			if got := key.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}

			parsed, err := ParseOriginKey(key.String())
			if err != nil {
				t.Fatalf("ParseOriginKey(%q) error: %v", key.String(), err)
			}
			if parsed != key {
				t.Errorf("round trip = %+v, want %+v", parsed, key)
			}
		})
	}
}

func TestParseOriginKeyInvalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"no separator", "danger"},
		{"empty task id", "danger-"},
		{"unknown severity", "critical-task-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseOriginKey(tt.raw); !errors.Is(err, ErrInvalidOriginKey) {
				t.Errorf("ParseOriginKey(%q) = %v, want ErrInvalidOriginKey", tt.raw, err)
			}
		})
	}
}
