package dateutil

import "time"

// MonthsAgo returns the date n months before date, clamped to the last
// day of the target month. The result has the same shape as date.
//
// Example: MonthsAgo("2009-03-31", 1) returns "2009-02-28".
func MonthsAgo[D Date](date D, n int) (D, error) {
	return Wrap(date, -n, addMonthsClamped)
}

// MonthsLater returns the date n months after date, clamped to the last
// day of the target month. n may be negative.
//
// Example: MonthsLater("20090131", 1) returns "20090228", where a plain
// AddDate(0, 1, 0) would overflow into March 3.
func MonthsLater[D Date](date D, n int) (D, error) {
	return Wrap(date, n, addMonthsClamped)
}

// FirstDayOfMonthsLater returns the first day of the month n months after
// date's month.
func FirstDayOfMonthsLater[D Date](date D, n int) (D, error) {
	return Wrap(date, n, firstDayOfMonthOffset)
}

// LastDayOfMonth returns the last day of date's own month.
func LastDayOfMonth[D Date](date D) (D, error) {
	return Wrap(date, 0, lastDayOfThisMonth)
}

// addMonthsClamped is the earlier of "same day n months later" and "last
// day of the month n months later". Clock time is kept.
func addMonthsClamped(t time.Time, n int) time.Time {
	shifted := t.AddDate(0, n, 0)
	last := lastDayOfMonthOffset(t, n)
	if last.Before(shifted) {
		return last
	}
	return shifted
}

func firstDayOfMonthOffset(t time.Time, n int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(n), 1,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func lastDayOfMonthOffset(t time.Time, n int) time.Time {
	// Day 0 of the following month is the last day of the target month.
	return time.Date(t.Year(), t.Month()+time.Month(n)+1, 0,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// lastDayOfThisMonth ignores the offset.
func lastDayOfThisMonth(t time.Time, _ int) time.Time {
	return lastDayOfMonthOffset(t, 0)
}
