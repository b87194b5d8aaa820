package diagnose

import "strings"

// Variant identifies which OpenAPI Specification dialect a document declares.
type Variant int

const (
	// VariantOAS20 OpenAPI Specification Version 2.0 (Swagger)
	VariantOAS20 Variant = iota
	// VariantOAS30 OpenAPI Specification Version 3.0.x
	VariantOAS30
	// VariantOAS31 OpenAPI Specification Version 3.1.x
	VariantOAS31
)

var variantToString = map[Variant]string{
	VariantOAS20: "2.0",
	VariantOAS30: "3.0",
	VariantOAS31: "3.1",
}

func (v Variant) String() string {
	if s, ok := variantToString[v]; ok {
		return s
	}
	return "unknown"
}

// IsValid returns true if this is a supported variant
func (v Variant) IsValid() bool {
	_, ok := variantToString[v]
	return ok
}

// ParseVariant maps a version series string ("2.0", "3.0", "3.1") to its
// Variant, and returns false if the string names no supported variant.
func ParseVariant(s string) (Variant, bool) {
	for v, str := range variantToString {
		if s == str {
			return v, true
		}
	}
	return VariantOAS30, false
}

// DetectVariant inspects a document's declared version fields and selects the
// schema variant to validate against. A string "swagger" field starting with
// "2.0" selects OAS 2.0; a string "openapi" field starting with "3.1" or
// "3.0" selects the matching 3.x series. Everything else, including non-map
// input and missing declarations, falls back to OAS 3.0. Detection never
// fails: an unrecognized document still gets validated against a known
// variant rather than rejected outright.
func DetectVariant(doc any) Variant {
	if swagger, ok := stringField(doc, "swagger"); ok {
		if strings.HasPrefix(strings.TrimSpace(swagger), "2.0") {
			return VariantOAS20
		}
	}
	if openapi, ok := stringField(doc, "openapi"); ok {
		trimmed := strings.TrimSpace(openapi)
		if strings.HasPrefix(trimmed, "3.1") {
			return VariantOAS31
		}
	}
	return VariantOAS30
}

// stringField looks up a top-level string field, tolerating both map shapes
// that JSON and YAML decoders produce.
func stringField(doc any, key string) (string, bool) {
	switch m := doc.(type) {
	case map[string]any:
		s, ok := m[key].(string)
		return s, ok
	case map[any]any:
		s, ok := m[key].(string)
		return s, ok
	}
	return "", false
}
