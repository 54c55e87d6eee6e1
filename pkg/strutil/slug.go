package strutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// RemoveDiacritics strips combining marks from s: "Déjà" becomes "Deja".
// The string is decomposed (NFD), marks are removed, and the result is
// recomposed (NFC). On a transform failure the input is returned unchanged.
func RemoveDiacritics(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// Slugify converts s into a URL-safe slug: diacritics are folded to their
// base letters, ASCII letters and digits are lowercased and kept, and every
// other run of characters collapses into a single hyphen. Leading and
// trailing hyphens are trimmed, so Slugify("Déjà Vu!") is "deja-vu".
func Slugify(s string) string {
	folded := strings.ToLower(RemoveDiacritics(s))

	var b strings.Builder
	b.Grow(len(folded))
	lastHyphen := true // suppress a leading hyphen
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
