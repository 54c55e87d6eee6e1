package sliceutil

import "errors"

var (
	// ErrChunkSize reports a chunk size below 1.
	ErrChunkSize = errors.New("chunk size must be at least 1")

	// ErrNegativeCount reports a negative sample count.
	ErrNegativeCount = errors.New("count must be non-negative")
)
