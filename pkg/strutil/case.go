package strutil

import (
	"strings"
	"unicode"
)

// Words splits s into words. Boundaries are runs of non-alphanumeric runes,
// lower-to-upper transitions, letter/digit transitions, and the last capital
// of an acronym followed by a lowercase letter ("HTTPServer" becomes
// "HTTP", "Server").
func Words(s string) []string {
	runes := []rune(s)
	words := make([]string, 0, 8)
	start := -1

	flush := func(end int) {
		if start >= 0 {
			words = append(words, string(runes[start:end]))
			start = -1
		}
	}

	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
			continue
		}

		prev := runes[i-1]
		split := false
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(r):
			split = true
		case unicode.IsDigit(prev) != unicode.IsDigit(r):
			split = true
		case unicode.IsUpper(prev) && unicode.IsUpper(r) &&
			i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			split = true
		}
		if split {
			flush(i)
			start = i
		}
	}
	flush(len(runes))

	return words
}

// Capitalize uppercases the first rune of s and lowercases the rest.
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	return string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
}

// CamelCase converts s to camelCase.
func CamelCase(s string) string {
	words := Words(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(Capitalize(w))
	}
	return b.String()
}

// PascalCase converts s to PascalCase.
func PascalCase(s string) string {
	var b strings.Builder
	for _, w := range Words(s) {
		b.WriteString(Capitalize(w))
	}
	return b.String()
}

// SnakeCase converts s to snake_case.
func SnakeCase(s string) string {
	return joinLower(Words(s), '_')
}

// KebabCase converts s to kebab-case.
func KebabCase(s string) string {
	return joinLower(Words(s), '-')
}

// TitleCase capitalizes every word of s and joins them with single spaces.
func TitleCase(s string) string {
	words := Words(s)
	for i, w := range words {
		words[i] = Capitalize(w)
	}
	return strings.Join(words, " ")
}

func joinLower(words []string, sep rune) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteRune(sep)
		}
		b.WriteString(strings.ToLower(w))
	}
	return b.String()
}
