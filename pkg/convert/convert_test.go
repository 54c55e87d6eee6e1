package convert_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Showshin/dev-utils-plus/pkg/convert"
)

func TestFormatFromExt(t *testing.T) {
	testCases := []struct {
		path string
		want convert.Format
	}{
		{"config.json", convert.JSON},
		{"config.yaml", convert.YAML},
		{"config.yml", convert.YAML},
		{"Config.TOML", convert.TOML},
		{"dir/with.dots/file.json", convert.JSON},
	}

	for _, tc := range testCases {
		got, err := convert.FormatFromExt(tc.path)
		require.NoError(t, err, tc.path)
		assert.Equal(t, tc.want, got, tc.path)
	}

	for _, path := range []string{"notes.txt", "noext", ""} {
		_, err := convert.FormatFromExt(path)
		assert.ErrorIs(t, err, convert.ErrUnknownFormat, path)
	}
}

func TestParseFormat(t *testing.T) {
	for name, want := range map[string]convert.Format{
		"json": convert.JSON,
		"YAML": convert.YAML,
		"yml":  convert.YAML,
		"toml": convert.TOML,
	} {
		got, err := convert.ParseFormat(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := convert.ParseFormat("xml")
	assert.ErrorIs(t, err, convert.ErrUnknownFormat)
}

func TestYAMLToJSON(t *testing.T) {
	in := []byte("name: svc\nport: 8080\ntags:\n  - a\n  - b\n")

	out, err := convert.YAMLToJSON(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"svc","port":8080,"tags":["a","b"]}`, string(out))
}

func TestJSONToYAML(t *testing.T) {
	out, err := convert.JSONToYAML([]byte(`{"name":"svc","nested":{"ok":true}}`))
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "name: svc")
	assert.Contains(t, s, "ok: true")
}

func TestIntegersSurviveConversion(t *testing.T) {
	// 2^53+1 cannot be represented as float64.
	out, err := convert.JSONToYAML([]byte(`{"big": 9007199254740993}`))
	require.NoError(t, err)
	assert.Contains(t, string(out), "9007199254740993")
}

func TestJSONToTOML(t *testing.T) {
	out, err := convert.JSONToTOML([]byte(`{"title":"demo","owner":{"name":"x"}}`))
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, `title = "demo"`)
	assert.Contains(t, s, "[owner]")

	t.Run("top-level array rejected", func(t *testing.T) {
		_, err := convert.JSONToTOML([]byte(`[1, 2, 3]`))
		assert.ErrorIs(t, err, convert.ErrTOMLTopLevel)
	})

	t.Run("top-level scalar rejected", func(t *testing.T) {
		_, err := convert.JSONToTOML([]byte(`"plain"`))
		assert.ErrorIs(t, err, convert.ErrTOMLTopLevel)
	})
}

func TestTOMLToJSON(t *testing.T) {
	in := []byte("title = \"demo\"\n\n[owner]\nname = \"x\"\n")

	out, err := convert.TOMLToJSON(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"demo","owner":{"name":"x"}}`, string(out))
}

func TestConvertErrors(t *testing.T) {
	_, err := convert.Convert([]byte("{broken"), convert.JSON, convert.YAML)
	assert.Error(t, err)

	_, err = convert.Convert([]byte(`{"a":1} trailing`), convert.JSON, convert.YAML)
	assert.Error(t, err)

	_, err = convert.Convert([]byte(":\nnot yaml: ["), convert.YAML, convert.JSON)
	assert.Error(t, err)

	_, err = convert.Convert([]byte("= broken"), convert.TOML, convert.JSON)
	assert.Error(t, err)
}

func TestPrettyJSON(t *testing.T) {
	out, err := convert.PrettyJSON([]byte(`{"b":1,"a":[1,2]}`))
	require.NoError(t, err)

	want := strings.Join([]string{
		`{`,
		`  "b": 1,`,
		`  "a": [`,
		`    1,`,
		`    2`,
		`  ]`,
		`}`,
	}, "\n")
	assert.Equal(t, want, string(out), "key order must be preserved")

	_, err = convert.PrettyJSON([]byte("nope"))
	assert.Error(t, err)
}

func TestMinifyJSON(t *testing.T) {
	out, err := convert.MinifyJSON([]byte("{\n  \"a\": 1,\n  \"b\": [1, 2]\n}"))
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":[1,2]}`, string(out))
}
