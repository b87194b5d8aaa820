package mcpserver

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecInput_Resolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "spec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("openapi: \"3.0.0\"\n"), 0o600))

	t.Run("from file", func(t *testing.T) {
		doc, err := specInput{File: path}.resolve()
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"openapi": "3.0.0"}, doc)
	})

	t.Run("from content", func(t *testing.T) {
		doc, err := specInput{Content: `{"swagger": "2.0"}`}.resolve()
		require.NoError(t, err)
		assert.Equal(t, map[string]any{"swagger": "2.0"}, doc)
	})

	t.Run("neither set", func(t *testing.T) {
		_, err := specInput{}.resolve()
		assert.Error(t, err)
	})

	t.Run("both set", func(t *testing.T) {
		_, err := specInput{File: path, Content: "{}"}.resolve()
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := specInput{File: filepath.Join(t.TempDir(), "nope.yaml")}.resolve()
		assert.Error(t, err)
	})
}
