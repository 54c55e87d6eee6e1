package validate

// CreditCard reports whether s is a plausible payment card number: 12 to 19
// digits passing the Luhn checksum. Spaces and dashes are ignored, any other
// character fails the check.
func CreditCard(s string) bool {
	digits := make([]int, 0, len(s))
	for _, r := range s {
		switch {
		case isASCIIDigit(r):
			digits = append(digits, int(r-'0'))
		case r == ' ' || r == '-':
		default:
			return false
		}
	}
	if len(digits) < 12 || len(digits) > 19 {
		return false
	}
	return luhnOK(digits)
}

// luhnOK runs the Luhn checksum: doubling every second digit from the right,
// folding two-digit products back to one digit, the total must divide by 10.
func luhnOK(digits []int) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := digits[i]
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}
