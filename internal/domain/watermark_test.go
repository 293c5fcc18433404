package domain

import (
	"testing"
	"time"
)

func TestDayKey(t *testing.T) {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Fatalf("failed to load location: %v", err)
	}

	tests := []struct {
		name string
		t    time.Time
		loc  *time.Location
		want string
	}{
		{
			name: "utc afternoon",
			t:    time.Date(2025, 1, 8, 14, 30, 0, 0, time.UTC),
			loc:  time.UTC,
			want: "2025-01-08",
		},
		{
			name: "utc instant is still the previous day in sao paulo",
			t:    time.Date(2025, 1, 8, 1, 0, 0, 0, time.UTC),
			loc:  loc,
			want: "2025-01-07",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayKey(tt.t, tt.loc); got != tt.want {
				t.Errorf("DayKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNextMidnight(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "mid-day rolls to next day",
			now:  time.Date(2025, 1, 8, 14, 30, 0, 0, time.UTC),
			want: time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "exactly midnight rolls a full day forward",
			now:  time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC),
			want: time.Date(2025, 1, 9, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "month boundary",
			now:  time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC),
			want: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextMidnight(tt.now, time.UTC); !got.Equal(tt.want) {
				t.Errorf("NextMidnight() = %v, want %v", got, tt.want)
			}
		})
	}
}
