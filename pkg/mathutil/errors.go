package mathutil

import "errors"

var (
	// ErrInvertedBounds is returned when a lower bound exceeds an upper bound.
	ErrInvertedBounds = errors.New("lower bound exceeds upper bound")
	// ErrNegativeInput is returned when an argument must be non-negative.
	ErrNegativeInput = errors.New("argument must be non-negative")
	// ErrOverflow is returned when a result does not fit the return type.
	ErrOverflow = errors.New("result overflows uint64")
)
