package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// PadLeft prepends pad runes until s occupies width terminal cells. Width is
// measured with go-runewidth, so CJK characters count as two cells. Strings
// already at or past width are returned unchanged. The pad rune is expected
// to be a single cell wide.
func PadLeft(s string, width int, pad rune) string {
	n := width - runewidth.StringWidth(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(string(pad), n) + s
}

// PadRight appends pad runes until s occupies width terminal cells.
func PadRight(s string, width int, pad rune) string {
	n := width - runewidth.StringWidth(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(string(pad), n)
}

// Center pads s on both sides to width cells, giving the right side the odd
// rune.
func Center(s string, width int, pad rune) string {
	n := width - runewidth.StringWidth(s)
	if n <= 0 {
		return s
	}
	left := n / 2
	return strings.Repeat(string(pad), left) + s + strings.Repeat(string(pad), n-left)
}
