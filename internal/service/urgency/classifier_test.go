package urgency

import (
	"testing"
	"time"

	"github.com/esdrassantos06/tarevity-notification-core/internal/domain"
)

func TestClassifier_Classify(t *testing.T) {
	classifier := NewClassifier(time.UTC)

	today := time.Date(2025, 1, 8, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		dueDate       time.Time
		wantBucket    domain.Bucket
		wantDaysUntil int
	}{
		{
			name:          "ten days overdue should be Overdue",
			dueDate:       today.AddDate(0, 0, -10),
			wantBucket:    domain.BucketOverdue,
			wantDaysUntil: -10,
		},
		{
			name:          "one day overdue should be Overdue",
			dueDate:       today.AddDate(0, 0, -1),
			wantBucket:    domain.BucketOverdue,
			wantDaysUntil: -1,
		},
		{
			name:          "due today should be DueToday",
			dueDate:       today,
			wantBucket:    domain.BucketDueToday,
			wantDaysUntil: 0,
		},
		{
			name:          "due tomorrow should be DueTomorrow",
			dueDate:       today.AddDate(0, 0, 1),
			wantBucket:    domain.BucketDueTomorrow,
			wantDaysUntil: 1,
		},
		{
			name:          "due in 2 days should be Upcoming",
			dueDate:       today.AddDate(0, 0, 2),
			wantBucket:    domain.BucketUpcoming,
			wantDaysUntil: 2,
		},
		{
			name:          "due in 3 days should be Upcoming",
			dueDate:       today.AddDate(0, 0, 3),
			wantBucket:    domain.BucketUpcoming,
			wantDaysUntil: 3,
		},
		{
			name:          "due in 4 days (window edge) should be Upcoming",
			dueDate:       today.AddDate(0, 0, 4),
			wantBucket:    domain.BucketUpcoming,
			wantDaysUntil: 4,
		},
		{
			name:          "due in 5 days should have no bucket",
			dueDate:       today.AddDate(0, 0, 5),
			wantBucket:    domain.BucketNone,
			wantDaysUntil: 5,
		},
		{
			name:          "due in 10 days should have no bucket",
			dueDate:       today.AddDate(0, 0, 10),
			wantBucket:    domain.BucketNone,
			wantDaysUntil: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.dueDate, today)

			if got.Bucket != tt.wantBucket {
				t.Errorf("Classify() bucket = %v, want %v", got.Bucket, tt.wantBucket)
			}
			if got.DaysUntil != tt.wantDaysUntil {
				t.Errorf("Classify() daysUntil = %d, want %d", got.DaysUntil, tt.wantDaysUntil)
			}
		})
	}
}

// Classification must be independent of the hour either instant carries.
func TestClassifier_ClassifyMidnightNormalization(t *testing.T) {
	classifier := NewClassifier(time.UTC)

	tests := []struct {
		name       string
		dueDate    time.Time
		today      time.Time
		wantBucket domain.Bucket
	}{
		{
			name:       "due at 00:01 today, checked at 23:59 is still DueToday",
			dueDate:    time.Date(2025, 1, 8, 0, 1, 0, 0, time.UTC),
			today:      time.Date(2025, 1, 8, 23, 59, 0, 0, time.UTC),
			wantBucket: domain.BucketDueToday,
		},
		{
			name:       "due at 23:59 tomorrow, checked at 00:01 is DueTomorrow",
			dueDate:    time.Date(2025, 1, 9, 23, 59, 0, 0, time.UTC),
			today:      time.Date(2025, 1, 8, 0, 1, 0, 0, time.UTC),
			wantBucket: domain.BucketDueTomorrow,
		},
		{
			name:       "due late yesterday is Overdue even early today",
			dueDate:    time.Date(2025, 1, 7, 23, 59, 0, 0, time.UTC),
			today:      time.Date(2025, 1, 8, 0, 1, 0, 0, time.UTC),
			wantBucket: domain.BucketOverdue,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(tt.dueDate, tt.today)

			if got.Bucket != tt.wantBucket {
				t.Errorf("Classify() bucket = %v, want %v", got.Bucket, tt.wantBucket)
			}
		})
	}
}

func TestClassifier_ClassifyTask(t *testing.T) {
	classifier := NewClassifier(time.UTC)

	today := time.Date(2025, 1, 8, 9, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	tests := []struct {
		name       string
		task       domain.Task
		wantOK     bool
		wantBucket domain.Bucket
	}{
		{
			name:       "open task due tomorrow qualifies",
			task:       domain.Task{ID: "task-1", Title: "Pay rent", DueDate: &tomorrow},
			wantOK:     true,
			wantBucket: domain.BucketDueTomorrow,
		},
		{
			name:   "completed task never qualifies",
			task:   domain.Task{ID: "task-2", Title: "Pay rent", DueDate: &tomorrow, Completed: true},
			wantOK: false,
		},
		{
			name:   "task without due date never qualifies",
			task:   domain.Task{ID: "task-3", Title: "Someday"},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := classifier.ClassifyTask(tt.task, today)

			if ok != tt.wantOK {
				t.Fatalf("ClassifyTask() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && got.Bucket != tt.wantBucket {
				t.Errorf("ClassifyTask() bucket = %v, want %v", got.Bucket, tt.wantBucket)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	tests := []struct {
		name   string
		result Classification
		want   string
	}{
		{
			name:   "overdue by one day",
			result: Classification{Bucket: domain.BucketOverdue, DaysUntil: -1},
			want:   `"Pay rent" is overdue by 1 day`,
		},
		{
			name:   "overdue by several days",
			result: Classification{Bucket: domain.BucketOverdue, DaysUntil: -3},
			want:   `"Pay rent" is overdue by 3 days`,
		},
		{
			name:   "due today",
			result: Classification{Bucket: domain.BucketDueToday, DaysUntil: 0},
			want:   `"Pay rent" is due today`,
		},
		{
			name:   "due tomorrow",
			result: Classification{Bucket: domain.BucketDueTomorrow, DaysUntil: 1},
			want:   `"Pay rent" is due tomorrow`,
		},
		{
			name:   "upcoming",
			result: Classification{Bucket: domain.BucketUpcoming, DaysUntil: 3},
			want:   `"Pay rent" is due in 3 days`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Message("Pay rent", tt.result); got != tt.want {
				t.Errorf("Message() = %q, want %q", got, tt.want)
			}
		})
	}
}
