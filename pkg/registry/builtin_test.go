package registry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Showshin/dev-utils-plus/pkg/registry"
)

func TestBuiltinCatalog(t *testing.T) {
	r := registry.Builtin()
	ops := r.List()
	require.NotEmpty(t, ops)

	seen := map[string]bool{}
	for _, op := range ops {
		assert.NotEmpty(t, op.Name)
		assert.NotEmpty(t, op.Group, op.Name)
		assert.NotEmpty(t, op.Summary, op.Name)
		assert.NotNil(t, op.Handler, op.Name)
		seen[op.Name] = true
	}

	for _, name := range []string{
		"slugify", "case", "uuid", "token", "hash", "validate",
		"format-bytes", "stats", "primes", "binomial", "convert",
	} {
		assert.True(t, seen[name], "missing builtin %q", name)
	}
}

func TestBuiltinExecution(t *testing.T) {
	r := registry.Builtin()
	ctx := context.Background()

	t.Run("slugify", func(t *testing.T) {
		got, err := r.Execute(ctx, "slugify", map[string]any{"text": "Déjà Vu!"})
		require.NoError(t, err)
		assert.Equal(t, "deja-vu", got)
	})

	t.Run("case", func(t *testing.T) {
		got, err := r.Execute(ctx, "case", map[string]any{"text": "Hello World", "to": "snake"})
		require.NoError(t, err)
		assert.Equal(t, "hello_world", got)

		_, err = r.Execute(ctx, "case", map[string]any{"text": "x", "to": "yelling"})
		assert.Error(t, err)
	})

	t.Run("binomial", func(t *testing.T) {
		got, err := r.Execute(ctx, "binomial", map[string]any{"n": 5, "k": 2})
		require.NoError(t, err)
		assert.Equal(t, 10, got)
	})

	t.Run("primes", func(t *testing.T) {
		got, err := r.Execute(ctx, "primes", map[string]any{"limit": 10})
		require.NoError(t, err)
		assert.Equal(t, []int{2, 3, 5, 7}, got)
	})

	t.Run("stats", func(t *testing.T) {
		got, err := r.Execute(ctx, "stats", map[string]any{"values": []any{1, 2, 3, 4}})
		require.NoError(t, err)

		res, ok := got.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, 2.5, res["median"])
		assert.Equal(t, 4, res["count"])
		assert.Equal(t, 1.0, res["min"])
		assert.Equal(t, 4.0, res["max"])
	})

	t.Run("validate", func(t *testing.T) {
		got, err := r.Execute(ctx, "validate", map[string]any{"kind": "email", "value": "user@example.com"})
		require.NoError(t, err)

		res, ok := got.(map[string]any)
		require.True(t, ok)
		assert.Equal(t, true, res["valid"])

		_, err = r.Execute(ctx, "validate", map[string]any{"kind": "zodiac", "value": "x"})
		assert.Error(t, err)
	})

	t.Run("token length", func(t *testing.T) {
		got, err := r.Execute(ctx, "token", map[string]any{"length": 12, "charset": "hex"})
		require.NoError(t, err)
		assert.Len(t, got, 12)
	})

	t.Run("json arguments coerce", func(t *testing.T) {
		// Numbers arrive as float64 when args come from JSON bodies.
		got, err := r.Execute(ctx, "format-bytes", map[string]any{"value": float64(1536)})
		require.NoError(t, err)
		assert.Equal(t, "1.5 KB", got)
	})

	t.Run("convert", func(t *testing.T) {
		got, err := r.Execute(ctx, "convert", map[string]any{
			"data": "port: 8080\n",
			"from": "yaml",
			"to":   "json",
		})
		require.NoError(t, err)
		assert.JSONEq(t, `{"port": 8080}`, got.(string))
	})
}
