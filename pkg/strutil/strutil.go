package strutil

import (
	"strings"
	"unicode"
)

// Reverse returns s with its runes in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// Truncate shortens s to at most max runes, appending "..." when it cuts.
// For max <= 3 there is no room for the suffix, so the string is clipped
// instead. A non-positive max returns the empty string.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 3 {
		return string(runes[:max])
	}
	return string(runes[:max-3]) + "..."
}

// Clip shortens s to at most max runes with no suffix.
func Clip(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// Initials returns the uppercased first rune of each word in s.
// "ada lovelace" becomes "AL".
func Initials(s string) string {
	var b strings.Builder
	for _, w := range Words(s) {
		r := []rune(w)[0]
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}

// WordCount returns the number of words in s, using the same boundaries as
// Words.
func WordCount(s string) int {
	return len(Words(s))
}
