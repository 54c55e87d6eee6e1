package randutil

import "errors"

var (
	// ErrInvertedBounds reports a range whose lower bound exceeds its upper.
	ErrInvertedBounds = errors.New("lower bound exceeds upper bound")

	// ErrNegativeLength reports a negative requested length.
	ErrNegativeLength = errors.New("length must be non-negative")

	// ErrEmptyCharset reports an empty character set.
	ErrEmptyCharset = errors.New("charset must not be empty")
)
