package format

import (
	"math"
	"strconv"
	"strings"
)

var byteUnits = []string{"B", "KB", "MB", "GB", "TB", "PB", "EB"}

// Bytes renders a byte count using 1024-based units with at most one decimal
// place: 1536 becomes "1.5 KB", 800 stays "800 B".
func Bytes(n int64) string {
	v := math.Abs(float64(n))
	i := 0
	for v >= 1024 && i < len(byteUnits)-1 {
		v /= 1024
		i++
	}

	s := strconv.FormatFloat(v, 'f', 1, 64)
	s = strings.TrimSuffix(s, ".0")
	if n < 0 {
		s = "-" + s
	}
	return s + " " + byteUnits[i]
}
