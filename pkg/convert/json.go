package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// PrettyJSON re-indents a JSON document with two-space indentation, keeping
// key order and number precision exactly as written.
func PrettyJSON(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to indent json: %w", err)
	}
	return buf.Bytes(), nil
}

// MinifyJSON strips all insignificant whitespace from a JSON document.
func MinifyJSON(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to compact json: %w", err)
	}
	return buf.Bytes(), nil
}
