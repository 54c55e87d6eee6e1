package timeutil

import "time"

// StartOfDay returns t at 00:00:00.000000000 in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns t at 23:59:59.999999999 in t's location.
func EndOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// StartOfMonth returns the first instant of t's month.
func StartOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last instant of t's month.
func EndOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	// Day zero of the next month normalizes to this month's final day.
	return EndOfDay(time.Date(y, m+1, 0, 0, 0, 0, 0, t.Location()))
}

// StartOfWeek returns the first instant of t's ISO week, i.e. the preceding
// or current Monday at midnight.
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return StartOfDay(t).AddDate(0, 0, 1-weekday)
}
