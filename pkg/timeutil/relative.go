package timeutil

import (
	"fmt"
	"time"
)

// Relative describes t from the perspective of now, e.g. "3 hours ago" or
// "in 2 days". Instants within a second of now read "just now". Months and
// years are approximated at 30 and 365 days.
func Relative(t, now time.Time) string {
	d := now.Sub(t)
	future := d < 0
	if future {
		d = -d
	}

	var phrase string
	switch {
	case d < time.Second:
		return "just now"
	case d < time.Minute:
		phrase = count(int(d/time.Second), "second")
	case d < time.Hour:
		phrase = count(int(d/time.Minute), "minute")
	case d < 24*time.Hour:
		phrase = count(int(d/time.Hour), "hour")
	case d < 30*24*time.Hour:
		phrase = count(int(d/(24*time.Hour)), "day")
	case d < 365*24*time.Hour:
		phrase = count(int(d/(30*24*time.Hour)), "month")
	default:
		phrase = count(int(d/(365*24*time.Hour)), "year")
	}

	if future {
		return "in " + phrase
	}
	return phrase + " ago"
}

func count(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
