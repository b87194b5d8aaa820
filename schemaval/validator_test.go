package schemaval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasdiag/diagnose"
)

// testValidator compiles a miniature OAS-flavored meta-schema: a required
// version field, a paths object, a parameter style with a closed value set,
// and no room for unknown top-level properties.
func testValidator(t *testing.T) *Validator {
	t.Helper()
	schemaDoc := map[string]any{
		"type":     "object",
		"required": []any{"openapi"},
		"properties": map[string]any{
			"openapi": map[string]any{"type": "string"},
			"paths":   map[string]any{"type": "object"},
			"style":   map[string]any{"enum": []any{"simple", "form"}},
		},
		"additionalProperties": false,
	}
	v, err := CompileDoc("test-schema.json", schemaDoc)
	require.NoError(t, err)
	return v
}

func TestValidator_ValidDocument(t *testing.T) {
	v := testValidator(t)

	raw := v.Validate(map[string]any{
		"openapi": "3.0.0",
		"paths":   map[string]any{},
	})

	assert.Nil(t, raw)
}

func TestValidator_RequiredAtRoot(t *testing.T) {
	v := testValidator(t)

	raw := v.Validate(map[string]any{"paths": map[string]any{}})

	require.Len(t, raw, 1)
	assert.Equal(t, "required", raw[0].Keyword)
	assert.Empty(t, raw[0].InstancePath, "root violations carry an empty instance path")
	assert.NotEmpty(t, raw[0].Message)
}

func TestValidator_AdditionalProperty(t *testing.T) {
	v := testValidator(t)

	raw := v.Validate(map[string]any{
		"openapi": "3.0.0",
		"extra":   "x",
	})

	require.Len(t, raw, 1)
	assert.Equal(t, "additionalProperties", raw[0].Keyword)
	assert.Empty(t, raw[0].InstancePath)
	assert.Equal(t, "extra", raw[0].Params[diagnose.ParamAdditionalProperty])
}

func TestValidator_AdditionalProperties_FanOut(t *testing.T) {
	v := testValidator(t)

	raw := v.Validate(map[string]any{
		"openapi": "3.0.0",
		"alpha":   1.0,
		"beta":    2.0,
	})

	require.Len(t, raw, 2, "one raw error per unexpected property")
	names := make([]string, 0, len(raw))
	for _, re := range raw {
		assert.Equal(t, "additionalProperties", re.Keyword)
		name, ok := re.Params[diagnose.ParamAdditionalProperty].(string)
		require.True(t, ok)
		names = append(names, name)
	}
	assert.ElementsMatch(t, []string{"alpha", "beta"}, names)
}

func TestValidator_Enum(t *testing.T) {
	v := testValidator(t)

	raw := v.Validate(map[string]any{
		"openapi": "3.0.0",
		"style":   "simpel",
	})

	require.Len(t, raw, 1)
	assert.Equal(t, "enum", raw[0].Keyword)
	assert.Equal(t, "/style", raw[0].InstancePath)
	assert.Equal(t, []any{"simple", "form"}, raw[0].Params[diagnose.ParamAllowedValues])
}

func TestValidator_TypeViolation(t *testing.T) {
	v := testValidator(t)

	raw := v.Validate(map[string]any{
		"openapi": "3.0.0",
		"paths":   "not an object",
	})

	require.Len(t, raw, 1)
	assert.Equal(t, "type", raw[0].Keyword)
	assert.Equal(t, "/paths", raw[0].InstancePath)
}

// TestValidator_PipelineIntegration wires the adapter into the diagnose
// pipeline the way callers do.
func TestValidator_PipelineIntegration(t *testing.T) {
	v := testValidator(t)
	p, err := diagnose.New(
		diagnose.WithValidator(diagnose.VariantOAS30, v.ValidateFunc()),
	)
	require.NoError(t, err)

	t.Run("unexpected property", func(t *testing.T) {
		findings := p.Process(map[string]any{
			"openapi": "3.0.0",
			"paths":   map[string]any{},
			"extra":   "x",
		})

		require.Len(t, findings, 1)
		assert.Equal(t, `Property "extra" is not expected to be here`, findings[0].Message)
		assert.Equal(t, []string{"extra"}, findings[0].Path)
	})

	t.Run("enum suggestion from resolved value", func(t *testing.T) {
		findings := p.Process(map[string]any{
			"openapi": "3.0.0",
			"style":   "simpel",
		})

		require.Len(t, findings, 1)
		assert.Contains(t, findings[0].Message, `Did you mean "simple"?`)
		assert.Equal(t, []string{"style"}, findings[0].Path)
	})
}

func TestCompileDoc_InvalidSchema(t *testing.T) {
	_, err := CompileDoc("bad.json", map[string]any{
		"type": "no-such-type",
	})
	assert.Error(t, err)
}

func TestCompileFile_MissingFile(t *testing.T) {
	_, err := CompileFile("testdata/does-not-exist.json")
	assert.Error(t, err)
}

func TestInstancePointer(t *testing.T) {
	tests := []struct {
		name     string
		location []string
		expected string
	}{
		{
			name:     "root",
			location: nil,
			expected: "",
		},
		{
			name:     "plain segments",
			location: []string{"info", "title"},
			expected: "/info/title",
		},
		{
			name:     "segments needing escapes",
			location: []string{"paths", "/pets", "x~y"},
			expected: "/paths/~1pets/x~0y",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, instancePointer(tt.location))
		})
	}
}
