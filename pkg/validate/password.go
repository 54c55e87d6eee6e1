package validate

import "unicode"

// Strength grades a password from Weak to VeryStrong.
type Strength int

const (
	Weak Strength = iota
	Fair
	Strong
	VeryStrong
)

func (s Strength) String() string {
	switch s {
	case Weak:
		return "weak"
	case Fair:
		return "fair"
	case Strong:
		return "strong"
	case VeryStrong:
		return "very strong"
	default:
		return "unknown"
	}
}

// PasswordStrength grades s by length and the character classes it mixes
// (lowercase, uppercase, digits, symbols):
//
//	VeryStrong: 12+ characters using all four classes
//	Strong:     8+ characters using at least three classes
//	Fair:       6+ characters using at least two classes
//	Weak:       everything else
func PasswordStrength(s string) Strength {
	var lower, upper, digit, symbol bool
	length := 0
	for _, r := range s {
		length++
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}

	classes := 0
	for _, present := range []bool{lower, upper, digit, symbol} {
		if present {
			classes++
		}
	}

	switch {
	case length >= 12 && classes == 4:
		return VeryStrong
	case length >= 8 && classes >= 3:
		return Strong
	case length >= 6 && classes >= 2:
		return Fair
	default:
		return Weak
	}
}

// StrongPassword reports whether s grades at least Strong.
func StrongPassword(s string) bool {
	return PasswordStrength(s) >= Strong
}
