package timeutil

import (
	"errors"
	"fmt"
	"time"
)

// ErrMonthRange reports a month outside 1..12.
var ErrMonthRange = errors.New("month must be between 1 and 12")

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns the number of days in the given month of year.
func DaysInMonth(year, month int) (int, error) {
	if month < 1 || month > 12 {
		return 0, fmt.Errorf("month %d: %w", month, ErrMonthRange)
	}
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day(), nil
}

// Quarter returns the calendar quarter of t, from 1 to 4.
func Quarter(t time.Time) int {
	return (int(t.Month())-1)/3 + 1
}

// DaysBetween returns the number of calendar days from a to b, positive when
// b falls on a later date. Partial days do not count: adjacent dates are one
// day apart regardless of the clock times.
func DaysBetween(a, b time.Time) int {
	ad := dateOnly(a)
	bd := dateOnly(b)
	return int(bd.Sub(ad) / (24 * time.Hour))
}

// IsSameDay reports whether a and b fall on the same calendar date, each
// observed in its own location.
func IsSameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// AddBusinessDays advances t by n weekdays, skipping Saturdays and Sundays.
// Negative n moves backwards. A zero n returns t unchanged even when t falls
// on a weekend.
func AddBusinessDays(t time.Time, n int) time.Time {
	step := 1
	if n < 0 {
		step = -1
		n = -n
	}
	for n > 0 {
		t = t.AddDate(0, 0, step)
		switch t.Weekday() {
		case time.Saturday, time.Sunday:
		default:
			n--
		}
	}
	return t
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
