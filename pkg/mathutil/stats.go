package mathutil

import (
	"math"
	"sort"
)

// Sum returns the total of all values, or 0 for an empty slice.
func Sum[T Number](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	return float64(Sum(values)) / float64(len(values))
}

// Median returns the middle value of the sorted input, or 0 for an empty
// slice. For an even number of values it returns the mean of the two middle
// values: Median([1 2 3 4]) is 2.5. The input is not modified.
func Median[T Number](values []T) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	for i, v := range values {
		sorted[i] = float64(v)
	}
	sort.Float64s(sorted)

	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Mode returns the most frequent values in ascending order.
// Ties are all included, so a uniform input returns every distinct value.
// An empty input returns an empty slice.
func Mode[T Number](values []T) []T {
	counts := make(map[T]int, len(values))
	best := 0
	for _, v := range values {
		counts[v]++
		if counts[v] > best {
			best = counts[v]
		}
	}

	modes := make([]T, 0, len(counts))
	for v, c := range counts {
		if c == best {
			modes = append(modes, v)
		}
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}

// Variance returns the population variance, or 0 for an empty slice.
func Variance[T Number](values []T) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}
	mean := Mean(values)
	var sq float64
	for _, v := range values {
		d := float64(v) - mean
		sq += d * d
	}
	return sq / float64(n)
}

// StdDev returns the population standard deviation, or 0 for an empty slice.
func StdDev[T Number](values []T) float64 {
	return math.Sqrt(Variance(values))
}
