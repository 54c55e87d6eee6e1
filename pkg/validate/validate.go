package validate

import (
	"encoding/json"
	"net/url"
	"regexp"

	"github.com/google/uuid"
)

var (
	emailRe    = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9-]+(\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}$`)
	hexColorRe = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
)

// Email reports whether s looks like a plausible email address. The check is
// pragmatic rather than RFC 5322 complete: one local part, one @, and a
// dotted domain with an alphabetic top-level label.
func Email(s string) bool {
	return emailRe.MatchString(s)
}

// URL reports whether s parses as an absolute URL with both a scheme and a
// host, e.g. "https://example.com/path".
func URL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// UUID reports whether s is a UUID in the canonical 8-4-4-4-12 form, in
// either case. Braced, URN, and undashed variants are rejected.
func UUID(s string) bool {
	if len(s) != 36 {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// JSON reports whether s is a syntactically valid JSON document.
func JSON(s string) bool {
	return json.Valid([]byte(s))
}

// HexColor reports whether s is a CSS hex color: #RGB, #RRGGBB, or #RRGGBBAA.
func HexColor(s string) bool {
	return hexColorRe.MatchString(s)
}

// Alpha reports whether s is non-empty and contains only ASCII letters.
func Alpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isASCIILetter(r) {
			return false
		}
	}
	return true
}

// Alphanumeric reports whether s is non-empty and contains only ASCII
// letters and digits.
func Alphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isASCIILetter(r) && !isASCIIDigit(r) {
			return false
		}
	}
	return true
}

// Numeric reports whether s is non-empty and contains only ASCII digits.
func Numeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isASCIIDigit(r) {
			return false
		}
	}
	return true
}

func isASCIILetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isASCIIDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
