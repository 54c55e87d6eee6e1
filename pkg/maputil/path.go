package maputil

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyPath reports an empty path or an empty path segment.
	ErrEmptyPath = errors.New("path must not be empty")

	// ErrPathConflict reports a path segment whose existing value is not an
	// object and therefore cannot be descended into.
	ErrPathConflict = errors.New("path segment is not an object")
)

// Get resolves a dot-separated path like "server.tls.cert" against nested
// map[string]any values. The second return is false when any segment is
// missing or a non-map value is hit before the final segment.
func Get(m map[string]any, path string) (any, bool) {
	if path == "" {
		return nil, false
	}
	segments := strings.Split(path, ".")
	cur := m
	for i, seg := range segments {
		v, ok := cur[seg]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return v, true
		}
		next, ok := v.(map[string]any)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return nil, false
}

// Set writes value at the dot-separated path, creating intermediate maps as
// needed. It fails with ErrPathConflict when an intermediate segment already
// holds a non-map value, and with ErrEmptyPath for an empty path or segment.
// Unlike the rest of this package, Set modifies m in place.
func Set(m map[string]any, path string, value any) error {
	if path == "" {
		return ErrEmptyPath
	}
	segments := strings.Split(path, ".")
	cur := m
	for i, seg := range segments {
		if seg == "" {
			return fmt.Errorf("path %q: %w", path, ErrEmptyPath)
		}
		if i == len(segments)-1 {
			cur[seg] = value
			return nil
		}
		existing, ok := cur[seg]
		if !ok {
			next := make(map[string]any)
			cur[seg] = next
			cur = next
			continue
		}
		next, ok := existing.(map[string]any)
		if !ok {
			prefix := strings.Join(segments[:i+1], ".")
			return fmt.Errorf("path %q at %q: %w", path, prefix, ErrPathConflict)
		}
		cur = next
	}
	return nil
}
