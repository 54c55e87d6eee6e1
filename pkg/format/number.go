package format

import (
	"math"
	"strconv"
	"strings"
)

// Comma renders n with "," thousands separators: 1234567 becomes "1,234,567".
func Comma(n int64) string {
	s := strconv.FormatInt(n, 10)
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	return sign + group(s)
}

// CommaFloat renders v with thousands separators and prec decimal places.
// A negative prec uses the shortest representation that round-trips.
func CommaFloat(v float64, prec int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', prec, 64)
	}
	s := strconv.FormatFloat(v, 'f', prec, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, hasFrac := strings.Cut(s, ".")
	out := sign + group(intPart)
	if hasFrac {
		out += "." + fracPart
	}
	return out
}

// Currency renders an amount with a leading symbol and two decimals:
// Currency(1234.5, "$") is "$1,234.50". The sign precedes the symbol.
func Currency(amount float64, symbol string) string {
	s := symbol + CommaFloat(math.Abs(amount), 2)
	if amount < 0 {
		return "-" + s
	}
	return s
}

// Percent renders a ratio as a percentage with prec decimal places:
// Percent(0.1234, 2) is "12.34%".
func Percent(ratio float64, prec int) string {
	return strconv.FormatFloat(ratio*100, 'f', prec, 64) + "%"
}

// Ordinal renders n with its English ordinal suffix: 1st, 2nd, 3rd, 11th.
func Ordinal(n int) string {
	a := n
	if a < 0 {
		a = -a
	}
	suffix := "th"
	if a%100 < 11 || a%100 > 13 {
		switch a % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// group inserts "," every three digits from the right. The input must hold
// digits only.
func group(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	b.Grow(len(digits) + len(digits)/3)
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
