// Package convert bridges JSON, YAML, and TOML documents. Values round-trip
// through plain Go types (map[string]any, []any, scalars), so comments and
// key order from the source document are not preserved. Integers survive
// conversion without passing through float64.
package convert
