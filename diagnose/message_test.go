package diagnose

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanMessage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "single quotes become double quotes",
			input:    "must be equal to 'header'",
			expected: `must be equal to "header"`,
		},
		{
			name:     "NOT token lowercased",
			input:    "must NOT have additional properties",
			expected: "must not have additional properties",
		},
		{
			name:     "quotes and NOT combined",
			input:    "NOT allowed to be 'x'",
			expected: `not allowed to be "x"`,
		},
		{
			name:     "double quotes preserved",
			input:    `must match "pattern"`,
			expected: `must match "pattern"`,
		},
		{
			name:     "empty message",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, cleanMessage(tt.input))
		})
	}
}

func TestFormatMessage(t *testing.T) {
	prop := "style"

	assert.Equal(t,
		`"style" property must be equal to one of the allowed values`,
		formatMessage(&prop, "must be equal to one of the allowed values"))

	assert.Equal(t,
		"must have required property \"info\"",
		formatMessage(nil, "must have required property 'info'"))
}

func TestRenderValues(t *testing.T) {
	tests := []struct {
		name     string
		values   []any
		expected string
	}{
		{
			name:     "strings are quoted",
			values:   []any{"simple", "form"},
			expected: `"simple", "form"`,
		},
		{
			name:     "mixed scalar types",
			values:   []any{"a", float64(1), true, nil},
			expected: `"a", 1, true, null`,
		},
		{
			name:     "empty list",
			values:   nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, renderValues(tt.values))
		})
	}
}
