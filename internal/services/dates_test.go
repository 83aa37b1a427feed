package services

import (
	"testing"
	"time"
)

func TestWeekBounds(t *testing.T) {
	cases := []struct {
		name   string
		now    string
		monday string
		sunday string
	}{
		{name: "wednesday", now: "2024-03-06", monday: "2024-03-04", sunday: "2024-03-10"},
		{name: "monday is its own week start", now: "2024-03-04", monday: "2024-03-04", sunday: "2024-03-10"},
		{name: "sunday belongs to the preceding monday", now: "2024-03-10", monday: "2024-03-04", sunday: "2024-03-10"},
		{name: "week spanning a month boundary", now: "2024-04-01", monday: "2024-04-01", sunday: "2024-04-07"},
		{name: "week spanning a year boundary", now: "2025-01-01", monday: "2024-12-30", sunday: "2025-01-05"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			monday, sunday := weekBounds(day(t, tc.now))
			if got := formatDate(monday); got != tc.monday {
				t.Fatalf("monday = %s, want %s", got, tc.monday)
			}
			if got := formatDate(sunday); got != tc.sunday {
				t.Fatalf("sunday = %s, want %s", got, tc.sunday)
			}
		})
	}
}

func TestWeekBoundsIgnoresTimeOfDay(t *testing.T) {
	now := time.Date(2024, 3, 6, 23, 59, 59, 0, time.UTC)
	monday, _ := weekBounds(now)
	if got := formatDate(monday); got != "2024-03-04" {
		t.Fatalf("monday = %s, want 2024-03-04", got)
	}
}

func TestMonthBounds(t *testing.T) {
	cases := []struct {
		name    string
		month   string
		first   string
		last    string
		lastDay int
		wantErr bool
	}{
		{name: "leap february", month: "2024-02", first: "2024-02-01", last: "2024-02-29", lastDay: 29},
		{name: "non-leap february", month: "2025-02", first: "2025-02-01", last: "2025-02-28", lastDay: 28},
		{name: "thirty-one days", month: "2024-03", first: "2024-03-01", last: "2024-03-31", lastDay: 31},
		{name: "thirty days", month: "2024-04", first: "2024-04-01", last: "2024-04-30", lastDay: 30},
		{name: "malformed token", month: "2024-13", wantErr: true},
		{name: "missing month", month: "2024", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			first, last, lastDay, err := monthBounds(tc.month)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tc.month)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := formatDate(first); got != tc.first {
				t.Fatalf("first = %s, want %s", got, tc.first)
			}
			if got := formatDate(last); got != tc.last {
				t.Fatalf("last = %s, want %s", got, tc.last)
			}
			if lastDay != tc.lastDay {
				t.Fatalf("lastDay = %d, want %d", lastDay, tc.lastDay)
			}
		})
	}
}

func TestJourneyDay(t *testing.T) {
	cases := []struct {
		name      string
		createdAt time.Time
		now       time.Time
		want      int
	}{
		{
			name:      "creation day is day one",
			createdAt: day(t, "2024-03-06"),
			now:       day(t, "2024-03-06"),
			want:      1,
		},
		{
			name:      "one full day later",
			createdAt: day(t, "2024-03-06"),
			now:       day(t, "2024-03-07"),
			want:      2,
		},
		{
			name:      "partial day does not advance",
			createdAt: time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC),
			now:       time.Date(2024, 3, 7, 9, 0, 0, 0, time.UTC),
			want:      1,
		},
		{
			name:      "clock skew never yields day zero",
			createdAt: day(t, "2024-03-08"),
			now:       day(t, "2024-03-06"),
			want:      1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := journeyDay(tc.createdAt, tc.now); got != tc.want {
				t.Fatalf("journeyDay = %d, want %d", got, tc.want)
			}
		})
	}
}
