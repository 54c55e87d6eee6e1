package maputil

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Decode binds a loosely typed value (typically map[string]any from JSON or
// YAML) onto the struct pointed to by out, honoring `mapstructure` field
// tags. Decoding is weakly typed: "42" fills an int field and 1 fills a bool.
func Decode(input, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("failed to decode input: %w", err)
	}
	return nil
}
