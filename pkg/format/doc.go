// Package format renders values for human consumption: byte sizes, grouped
// numbers, currency, ordinals, durations, and display-width aware padding.
// Output targets terminals and logs, not locale-correct typography; grouping
// is always "," and the decimal separator is always ".".
package format
