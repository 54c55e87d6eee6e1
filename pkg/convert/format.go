package convert

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Format names a supported document encoding.
type Format int

const (
	JSON Format = iota
	YAML
	TOML
)

var (
	// ErrUnknownFormat reports a file extension or format name this package
	// does not handle.
	ErrUnknownFormat = errors.New("unknown format")

	// ErrTOMLTopLevel reports a document whose top level is not an object;
	// TOML cannot represent those.
	ErrTOMLTopLevel = errors.New("toml requires a top-level object")
)

func (f Format) String() string {
	switch f {
	case JSON:
		return "json"
	case YAML:
		return "yaml"
	case TOML:
		return "toml"
	default:
		return "unknown"
	}
}

// ParseFormat reads a format name such as "json", "yaml", or "toml". The
// match is case-insensitive and accepts "yml" for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// FormatFromExt infers the format from a file path's extension: .json, .yaml,
// .yml, or .toml.
func FormatFromExt(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%q: %w", path, ErrUnknownFormat)
	}
}
