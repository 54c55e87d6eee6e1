// Package sliceutil provides generic slice helpers: chunking, deduplication,
// set operations, grouping, and random selection.
//
// No function mutates its input. Results are freshly allocated, so callers may
// modify them without affecting the original slice.
package sliceutil
