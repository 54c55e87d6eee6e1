package mathutil

import (
	"fmt"
	"math"
)

// Integer matches every built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Float matches every built-in floating-point type.
type Float interface {
	~float32 | ~float64
}

// Number matches every built-in numeric type.
type Number interface {
	Integer | Float
}

// Clamp constrains v to the inclusive range [lo, hi].
// It returns ErrInvertedBounds when lo > hi. The operation is idempotent:
// clamping an already-clamped value is a no-op.
func Clamp[T Number](v, lo, hi T) (T, error) {
	if lo > hi {
		var zero T
		return zero, fmt.Errorf("%w: lo=%v hi=%v", ErrInvertedBounds, lo, hi)
	}
	if v < lo {
		return lo, nil
	}
	if v > hi {
		return hi, nil
	}
	return v, nil
}

// RoundTo rounds v to the given number of decimal places, half away from zero.
// Negative places round to the left of the decimal point: RoundTo(1234, -2)
// is 1200.
func RoundTo(v float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(v*factor) / factor
}

// MinOf returns the smallest value in the slice.
// The second return is false when the slice is empty.
func MinOf[T Number](values []T) (T, bool) {
	if len(values) == 0 {
		var zero T
		return zero, false
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min, true
}

// MaxOf returns the largest value in the slice.
// The second return is false when the slice is empty.
func MaxOf[T Number](values []T) (T, bool) {
	if len(values) == 0 {
		var zero T
		return zero, false
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max, true
}
