package strutil

import (
	"strings"
	"unicode"
)

// StripControl removes control characters from s, keeping newline, tab, and
// carriage return. This prevents pasted input from carrying ANSI escapes,
// NULs, or other terminal-corrupting bytes into logs and output.
func StripControl(s string) string {
	// Fast path: most strings are already clean.
	clean := true
	for _, r := range s {
		if unicode.IsControl(r) && !isSafeControl(r) {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsControl(r) || isSafeControl(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isSafeControl(r rune) bool {
	return r == '\n' || r == '\t' || r == '\r'
}
