// Package mathutil provides numeric helpers and descriptive statistics over
// slices of any built-in numeric type.
//
// All functions are pure and operate on values supplied by the caller; nothing
// is retained between calls. Aggregates follow a deliberate convention for
// empty input: they return a zero-like value (0, or an empty slice for Mode)
// instead of failing, so callers can fold them over possibly-empty data
// without guarding every call site.
//
// Basic usage:
//
//	samples := []float64{4, 1, 3, 2}
//
//	mathutil.Sum(samples)    // 10
//	mathutil.Median(samples) // 2.5
//	mathutil.StdDev(samples) // ≈1.118
//
//	v, err := mathutil.Clamp(17, 0, 10) // v == 10
//
// Invalid arguments (inverted bounds, negative sieve limits, and the like) are
// reported with sentinel errors that callers can match with errors.Is.
package mathutil
