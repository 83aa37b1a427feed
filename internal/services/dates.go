package services

import (
	"fmt"
	"time"
)

// All calendar arithmetic runs in UTC. Week and month windows are date
// ranges at day granularity; time-of-day never participates.

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func formatDate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// weekBounds returns the Monday and Sunday of the ISO week containing now,
// independent of the server locale's week start.
func weekBounds(now time.Time) (monday, sunday time.Time) {
	d := dateOnly(now)
	diff := int(d.Weekday()) - 1
	if d.Weekday() == time.Sunday {
		diff = 6
	}
	monday = d.AddDate(0, 0, -diff)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}

// monthBounds resolves a "YYYY-MM" token to the month's first and last day.
func monthBounds(month string) (first, last time.Time, lastDay int, err error) {
	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, 0, fmt.Errorf("invalid month %q: %w", month, err)
	}
	first = time.Date(parsed.Year(), parsed.Month(), 1, 0, 0, 0, 0, time.UTC)
	last = first.AddDate(0, 1, -1)
	return first, last, last.Day(), nil
}

// journeyDay counts whole UTC days since the routine was created, day of
// creation being day 1. Never 0 or negative.
func journeyDay(createdAt, now time.Time) int {
	days := int(now.UTC().Sub(createdAt.UTC()).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days + 1
}
