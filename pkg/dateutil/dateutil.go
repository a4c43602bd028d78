// Package dateutil computes calendar-derived values: week boundaries,
// fiscal halves, month arithmetic with end-of-month clamping, HHMM time
// arithmetic and labeled year/month sequences.
package dateutil

import "time"

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// EndOfDay returns the end of the day (23:59:59.999999999) for the given date
func EndOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 23, 59, 59, 999999999, date.Location())
}

// StartOfWeek returns the Monday that starts the Monday-Sunday week
// containing date. It steps one day forward and then back to the previous
// Monday, which keeps a Sunday inside the week it ends.
func StartOfWeek(date time.Time) time.Time {
	next := StartOfDay(date).AddDate(0, 0, 1)
	back := (int(next.Weekday()) - int(time.Monday) + 7) % 7
	if back == 0 {
		back = 7
	}
	return next.AddDate(0, 0, -back)
}

// EndOfWeek returns the Sunday of the week for the given date
func EndOfWeek(date time.Time) time.Time {
	return EndOfDay(StartOfWeek(date).AddDate(0, 0, 6))
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}
