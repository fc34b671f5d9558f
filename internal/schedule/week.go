package schedule

import "time"

// Weeks always begin on Monday, never Sunday-first.

// WeekStartOf returns the Monday of the week containing t, at midnight in
// t's location.
func WeekStartOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())

	offset := int(day.Weekday()) - 1
	if day.Weekday() == time.Sunday {
		offset = 6
	}

	return day.AddDate(0, 0, -offset)
}
