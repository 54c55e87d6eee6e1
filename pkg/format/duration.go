package format

import (
	"strconv"
	"strings"
	"time"
)

// Duration renders d as space-separated units from days down to seconds,
// omitting zero units: "2h 3m 20s", "1d 2h". Durations under a second render
// in milliseconds.
func Duration(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	neg := d < 0
	if neg {
		d = -d
	}

	var out string
	if d < time.Second {
		out = strconv.FormatInt(int64(d/time.Millisecond), 10) + "ms"
	} else {
		parts := make([]string, 0, 4)
		add := func(n time.Duration, unit string) {
			if n > 0 {
				parts = append(parts, strconv.FormatInt(int64(n), 10)+unit)
			}
		}
		add(d/(24*time.Hour), "d")
		add(d%(24*time.Hour)/time.Hour, "h")
		add(d%time.Hour/time.Minute, "m")
		add(d%time.Minute/time.Second, "s")
		out = strings.Join(parts, " ")
	}

	if neg {
		return "-" + out
	}
	return out
}
