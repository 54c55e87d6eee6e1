package sliceutil

import "fmt"

// Chunk splits items into consecutive groups of at most size elements. The
// final group may be shorter. A size below 1 returns ErrChunkSize.
func Chunk[T any](items []T, size int) ([][]T, error) {
	if size < 1 {
		return nil, fmt.Errorf("chunk %d: %w", size, ErrChunkSize)
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for start := 0; start < len(items); start += size {
		end := min(start+size, len(items))
		chunk := make([]T, end-start)
		copy(chunk, items[start:end])
		chunks = append(chunks, chunk)
	}
	return chunks, nil
}

// Unique returns items with duplicates removed, keeping the first occurrence
// of each value in its original position.
func Unique[T comparable](items []T) []T {
	seen := make(map[T]struct{}, len(items))
	out := make([]T, 0, len(items))
	for _, v := range items {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Flatten concatenates the given slices into one.
func Flatten[T any](groups [][]T) []T {
	total := 0
	for _, g := range groups {
		total += len(g)
	}
	out := make([]T, 0, total)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Compact returns items with all zero values removed.
func Compact[T comparable](items []T) []T {
	var zero T
	out := make([]T, 0, len(items))
	for _, v := range items {
		if v != zero {
			out = append(out, v)
		}
	}
	return out
}

// Reverse returns a copy of items in reverse order.
func Reverse[T any](items []T) []T {
	out := make([]T, len(items))
	for i, v := range items {
		out[len(items)-1-i] = v
	}
	return out
}

// First returns the first element of items. The second return is false when
// items is empty.
func First[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[0], true
}

// Last returns the final element of items. The second return is false when
// items is empty.
func Last[T any](items []T) (T, bool) {
	if len(items) == 0 {
		var zero T
		return zero, false
	}
	return items[len(items)-1], true
}
