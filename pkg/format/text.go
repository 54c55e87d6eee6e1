package format

import "strings"

// Pluralize picks the singular or plural form for n. An empty plural falls
// back to singular + "s". Only n == 1 selects the singular.
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return singular
	}
	if plural == "" {
		return singular + "s"
	}
	return plural
}

// Mask replaces all but the last visible runes of s with '*', keeping the
// original length: Mask("4111111111111111", 4) is "************1111". A
// negative visible masks everything.
func Mask(s string, visible int) string {
	runes := []rune(s)
	if visible < 0 {
		visible = 0
	}
	if visible >= len(runes) {
		return s
	}
	masked := len(runes) - visible
	return strings.Repeat("*", masked) + string(runes[masked:])
}
