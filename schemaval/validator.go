package schemaval

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/santhosh-tekuri/jsonschema/v6/kind"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/erraggy/oasdiag/diagnose"
)

// Validator adapts a compiled JSON Schema to the diagnose pipeline.
type Validator struct {
	schema  *jsonschema.Schema
	printer *message.Printer
}

// New wraps an already-compiled schema.
func New(schema *jsonschema.Schema) *Validator {
	return &Validator{
		schema:  schema,
		printer: message.NewPrinter(language.English),
	}
}

// CompileDoc compiles an in-memory schema document registered under the
// given resource URL and wraps it.
func CompileDoc(url string, doc any) (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("schemaval: add resource %s: %w", url, err)
	}
	schema, err := compiler.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("schemaval: compile %s: %w", url, err)
	}
	return New(schema), nil
}

// CompileFile loads a JSON Schema from a file and compiles it.
func CompileFile(path string) (*Validator, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("schemaval: open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := jsonschema.UnmarshalJSON(f)
	if err != nil {
		return nil, fmt.Errorf("schemaval: parse %s: %w", path, err)
	}
	return CompileDoc(path, doc)
}

// ValidateFunc returns the validator in the shape the diagnose pipeline
// consumes.
func (v *Validator) ValidateFunc() diagnose.ValidateFunc {
	return v.Validate
}

// Validate runs the schema against doc and flattens the resulting error tree
// into raw errors, leaf causes first to last. A valid document yields nil.
// Errors that are not schema violations (panics aside, the underlying
// library only returns *jsonschema.ValidationError) are reported as a single
// raw error at the document root.
func (v *Validator) Validate(doc any) []diagnose.RawError {
	err := v.schema.Validate(doc)
	if err == nil {
		return nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return []diagnose.RawError{{Keyword: "schema", Message: err.Error()}}
	}
	return v.flatten(verr, nil)
}

// flatten walks the cause tree depth-first, emitting raw errors only for
// leaves; intermediate nodes restate their children.
func (v *Validator) flatten(verr *jsonschema.ValidationError, out []diagnose.RawError) []diagnose.RawError {
	if len(verr.Causes) > 0 {
		for _, cause := range verr.Causes {
			out = v.flatten(cause, out)
		}
		return out
	}
	return append(out, v.rawErrors(verr)...)
}

// rawErrors converts a single leaf validation error. An
// additionalProperties violation listing several unexpected properties fans
// out into one raw error per property, matching how the pipeline points a
// finding at each offender.
func (v *Validator) rawErrors(verr *jsonschema.ValidationError) []diagnose.RawError {
	instancePath := instancePointer(verr.InstanceLocation)

	if verr.ErrorKind == nil {
		return []diagnose.RawError{{Keyword: "schema", InstancePath: instancePath, Message: verr.Error()}}
	}

	keyword := "schema"
	if keywordPath := verr.ErrorKind.KeywordPath(); len(keywordPath) > 0 {
		keyword = keywordPath[len(keywordPath)-1]
	}
	msg := verr.ErrorKind.LocalizedString(v.printer)

	switch k := verr.ErrorKind.(type) {
	case *kind.Enum:
		return []diagnose.RawError{{
			Keyword:      "enum",
			InstancePath: instancePath,
			Message:      msg,
			Params:       map[string]any{diagnose.ParamAllowedValues: k.Want},
		}}
	case *kind.AdditionalProperties:
		if len(k.Properties) == 0 {
			return []diagnose.RawError{{Keyword: "additionalProperties", InstancePath: instancePath, Message: msg}}
		}
		raw := make([]diagnose.RawError, 0, len(k.Properties))
		for _, prop := range k.Properties {
			raw = append(raw, diagnose.RawError{
				Keyword:      "additionalProperties",
				InstancePath: instancePath,
				Message:      msg,
				Params:       map[string]any{diagnose.ParamAdditionalProperty: prop},
			})
		}
		return raw
	default:
		return []diagnose.RawError{{Keyword: keyword, InstancePath: instancePath, Message: msg}}
	}
}

// instancePointer renders an instance location as a JSON-Pointer path with
// RFC 6901 escaping; the root location renders as the empty string.
func instancePointer(location []string) string {
	if len(location) == 0 {
		return ""
	}
	var b strings.Builder
	for _, segment := range location {
		b.WriteByte('/')
		b.WriteString(escapeToken(segment))
	}
	return b.String()
}

// escapeToken applies RFC 6901 escaping to a single reference token,
// "~" before "/" so the escapes cannot collide.
func escapeToken(token string) string {
	if !strings.ContainsAny(token, "~/") {
		return token
	}
	token = strings.ReplaceAll(token, "~", "~0")
	return strings.ReplaceAll(token, "/", "~1")
}
