package convert

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Convert re-encodes a document from one format to another. JSON output is
// indented with two spaces; all outputs end with a newline.
func Convert(data []byte, from, to Format) ([]byte, error) {
	v, err := decode(data, from)
	if err != nil {
		return nil, err
	}
	return encode(v, to)
}

// JSONToYAML re-encodes a JSON document as YAML.
func JSONToYAML(data []byte) ([]byte, error) { return Convert(data, JSON, YAML) }

// YAMLToJSON re-encodes a YAML document as JSON.
func YAMLToJSON(data []byte) ([]byte, error) { return Convert(data, YAML, JSON) }

// JSONToTOML re-encodes a JSON document as TOML. The document must be an
// object at the top level.
func JSONToTOML(data []byte) ([]byte, error) { return Convert(data, JSON, TOML) }

// TOMLToJSON re-encodes a TOML document as JSON.
func TOMLToJSON(data []byte) ([]byte, error) { return Convert(data, TOML, JSON) }

func decode(data []byte, from Format) (any, error) {
	switch from {
	case JSON:
		return decodeJSON(data)
	case YAML:
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to parse yaml: %w", err)
		}
		return v, nil
	case TOML:
		var m map[string]any
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, fmt.Errorf("failed to parse toml: %w", err)
		}
		return m, nil
	default:
		return nil, fmt.Errorf("decode: %w", ErrUnknownFormat)
	}
}

func encode(v any, to Format) ([]byte, error) {
	switch to {
	case JSON:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return nil, fmt.Errorf("failed to render json: %w", err)
		}
		return buf.Bytes(), nil
	case YAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to render yaml: %w", err)
		}
		return out, nil
	case TOML:
		m, ok := v.(map[string]any)
		if !ok {
			return nil, ErrTOMLTopLevel
		}
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(m); err != nil {
			return nil, fmt.Errorf("failed to render toml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("encode: %w", ErrUnknownFormat)
	}
}

// decodeJSON keeps integers intact instead of forcing every number through
// float64.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to parse json: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("failed to parse json: trailing data after document")
	}
	return restoreNumbers(v), nil
}

func restoreNumbers(v any) any {
	switch tv := v.(type) {
	case json.Number:
		if i, err := tv.Int64(); err == nil {
			return i
		}
		if f, err := tv.Float64(); err == nil {
			return f
		}
		return tv.String()
	case map[string]any:
		for k, e := range tv {
			tv[k] = restoreNumbers(e)
		}
		return tv
	case []any:
		for i, e := range tv {
			tv[i] = restoreNumbers(e)
		}
		return tv
	default:
		return v
	}
}
