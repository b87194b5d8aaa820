package diagnose

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// cleanMessage canonicalizes validator message text: ASCII single quotes
// become double quotes, and the capitalized "NOT" token some validators emit
// in negation messages is lowercased.
func cleanMessage(msg string) string {
	msg = strings.ReplaceAll(msg, "'", `"`)
	return strings.ReplaceAll(msg, "NOT", "not")
}

// formatMessage cleans msg and, when the error points at a named property,
// prefixes it so the reader knows which field is at fault:
//
//	"style" property must be equal to one of the allowed values
//
// property is nil for errors at the document root.
func formatMessage(property *string, msg string) string {
	cleaned := cleanMessage(msg)
	if property == nil {
		return cleaned
	}
	return fmt.Sprintf("%q property %s", *property, cleaned)
}

// renderValue formats an allowed value the way it would appear in the
// document source: strings quoted, null spelled out, everything else in its
// JSON form.
func renderValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(t)
	case bool:
		return strconv.FormatBool(t)
	default:
		if b, err := json.Marshal(t); err == nil {
			return string(b)
		}
		return fmt.Sprintf("%v", t)
	}
}

// renderValues joins the literal renderings of allowed values for enum
// messages.
func renderValues(values []any) string {
	rendered := make([]string, len(values))
	for i, v := range values {
		rendered[i] = renderValue(v)
	}
	return strings.Join(rendered, ", ")
}
