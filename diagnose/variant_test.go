package diagnose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectVariant(t *testing.T) {
	tests := []struct {
		name     string
		doc      any
		expected Variant
	}{
		{
			name:     "swagger 2.0",
			doc:      map[string]any{"swagger": "2.0"},
			expected: VariantOAS20,
		},
		{
			name:     "swagger 2.0 with patch suffix",
			doc:      map[string]any{"swagger": "2.0.0"},
			expected: VariantOAS20,
		},
		{
			name:     "swagger with surrounding whitespace",
			doc:      map[string]any{"swagger": "  2.0  "},
			expected: VariantOAS20,
		},
		{
			name:     "openapi 3.0.0",
			doc:      map[string]any{"openapi": "3.0.0"},
			expected: VariantOAS30,
		},
		{
			name:     "openapi 3.0.3",
			doc:      map[string]any{"openapi": "3.0.3"},
			expected: VariantOAS30,
		},
		{
			name:     "openapi 3.1.0",
			doc:      map[string]any{"openapi": "3.1.0"},
			expected: VariantOAS31,
		},
		{
			name:     "openapi 3.1 with whitespace",
			doc:      map[string]any{"openapi": " 3.1.1 "},
			expected: VariantOAS31,
		},
		{
			name:     "swagger takes precedence over openapi",
			doc:      map[string]any{"swagger": "2.0", "openapi": "3.1.0"},
			expected: VariantOAS20,
		},
		{
			name:     "unrecognized version defaults to 3.0",
			doc:      map[string]any{"openapi": "4.0.0"},
			expected: VariantOAS30,
		},
		{
			name:     "non-string version field defaults to 3.0",
			doc:      map[string]any{"openapi": 3.1},
			expected: VariantOAS30,
		},
		{
			name:     "missing version fields defaults to 3.0",
			doc:      map[string]any{"info": map[string]any{}},
			expected: VariantOAS30,
		},
		{
			name:     "non-map document defaults to 3.0",
			doc:      "just a string",
			expected: VariantOAS30,
		},
		{
			name:     "nil document defaults to 3.0",
			doc:      nil,
			expected: VariantOAS30,
		},
		{
			name:     "any-keyed map is recognized",
			doc:      map[any]any{"swagger": "2.0"},
			expected: VariantOAS20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectVariant(tt.doc))
		})
	}
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "2.0", VariantOAS20.String())
	assert.Equal(t, "3.0", VariantOAS30.String())
	assert.Equal(t, "3.1", VariantOAS31.String())
	assert.Equal(t, "unknown", Variant(99).String())
}

func TestVariantIsValid(t *testing.T) {
	assert.True(t, VariantOAS20.IsValid())
	assert.True(t, VariantOAS30.IsValid())
	assert.True(t, VariantOAS31.IsValid())
	assert.False(t, Variant(-1).IsValid())
	assert.False(t, Variant(99).IsValid())
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		input    string
		expected Variant
		ok       bool
	}{
		{"2.0", VariantOAS20, true},
		{"3.0", VariantOAS30, true},
		{"3.1", VariantOAS31, true},
		{"3.2", VariantOAS30, false},
		{"", VariantOAS30, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, ok := ParseVariant(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, v)
		})
	}
}
