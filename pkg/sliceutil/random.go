package sliceutil

import (
	"fmt"
	"math/rand/v2"
)

// Shuffle returns a copy of items in uniformly random order.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}

// Sample returns one element of items chosen uniformly at random. The second
// return is false when items is empty.
func Sample[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[rand.IntN(len(items))], true
}

// SampleN returns n elements drawn without replacement, in random order. When
// n exceeds len(items) every element is returned once. A negative n returns
// ErrNegativeCount.
func SampleN[T any](items []T, n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("sample %d: %w", n, ErrNegativeCount)
	}
	shuffled := Shuffle(items)
	if n >= len(shuffled) {
		return shuffled, nil
	}
	return shuffled[:n], nil
}
