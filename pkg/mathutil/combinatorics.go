package mathutil

import (
	"fmt"
	"math"
)

// Binomial returns the binomial coefficient C(n, k): the number of ways to
// choose k items from n. Negative arguments are rejected with
// ErrNegativeInput; k > n returns 0 rather than an error.
//
// The coefficient is computed with the multiplicative formula rather than a
// ratio of factorials, which keeps intermediate values small, and the result
// is rounded to the nearest integer to absorb floating-point drift.
func Binomial(n, k int) (int, error) {
	if n < 0 || k < 0 {
		return 0, fmt.Errorf("%w: n=%d k=%d", ErrNegativeInput, n, k)
	}
	if k > n {
		return 0, nil
	}
	if k > n-k {
		k = n - k
	}

	result := 1.0
	for i := 0; i < k; i++ {
		result = result * float64(n-i) / float64(i+1)
	}
	return int(math.Round(result)), nil
}

// Factorial returns n!. Negative n is rejected with ErrNegativeInput, and
// n > 20 with ErrOverflow since 21! exceeds uint64.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: n=%d", ErrNegativeInput, n)
	}
	if n > 20 {
		return 0, fmt.Errorf("%w: n=%d", ErrOverflow, n)
	}
	result := uint64(1)
	for i := uint64(2); i <= uint64(n); i++ {
		result *= i
	}
	return result, nil
}

// GCD returns the greatest common divisor of a and b.
// The result is non-negative; GCD(0, 0) is 0.
func GCD(a, b int) int {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b.
// The result is non-negative; LCM with either argument 0 is 0.
func LCM(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	g := GCD(a, b)
	result := a / g * b
	if result < 0 {
		result = -result
	}
	return result
}
