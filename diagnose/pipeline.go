package diagnose

import (
	"fmt"

	"github.com/erraggy/oasdiag/internal/jsonpointer"
	"github.com/erraggy/oasdiag/internal/stringutil"
)

// Pipeline transforms raw schema validation errors into findings.
// Construct one with New; the zero value has no validators registered.
type Pipeline struct {
	validators map[Variant]ValidateFunc
	logger     Logger
}

// New creates a Pipeline from the given options. The validator registry is
// fixed at construction, which keeps Process free of shared mutable state.
func New(opts ...Option) (*Pipeline, error) {
	p := &Pipeline{
		validators: make(map[Variant]ValidateFunc),
		logger:     NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, fmt.Errorf("diagnose: invalid options: %w", err)
		}
	}
	return p, nil
}

// Process detects the document's OAS variant, runs the validator registered
// for it, and transforms the resulting errors into findings. When no
// validator is registered for the detected variant, Process returns nil: the
// capability is absent, which is not an error. Callers that need to tell
// "valid document" from "no validator available" must check the registry up
// front.
func (p *Pipeline) Process(doc any) []Finding {
	variant := DetectVariant(doc)
	validate, ok := p.validators[variant]
	if !ok {
		p.logger.Debug("no validator registered for detected variant", "variant", variant.String())
		return nil
	}
	rawErrors := validate(doc)
	p.logger.Debug("validator finished", "variant", variant.String(), "errors", len(rawErrors))
	return p.Transform(doc, rawErrors)
}

// HasValidator reports whether a validator is registered for the variant.
func (p *Pipeline) HasValidator(v Variant) bool {
	_, ok := p.validators[v]
	return ok
}

// Transform reshapes raw validation errors into findings, in input order.
// Errors for the "if" keyword are dropped; they are artifacts of schema
// composition whose "then"/"else" branches carry the actionable diagnostic.
// Every other error produces exactly one finding, so the output is never
// longer than the input. The document is only read, never mutated.
func (p *Pipeline) Transform(doc any, rawErrors []RawError) []Finding {
	if len(rawErrors) == 0 {
		return nil
	}
	findings := make([]Finding, 0, len(rawErrors))
	for _, rawErr := range rawErrors {
		if rawErr.Keyword == "if" {
			continue
		}

		segments := jsonpointer.Segments(rawErr.InstancePath)
		var property *string
		if len(segments) > 0 {
			property = &segments[len(segments)-1]
		}

		switch rawErr.Keyword {
		case "additionalProperties":
			findings = append(findings, additionalPropertiesFinding(rawErr, segments, property))
		case "enum":
			findings = append(findings, enumFinding(doc, rawErr, segments, property))
		case "errorMessage":
			// Author-supplied custom message; pass through untouched.
			findings = append(findings, Finding{Message: rawErr.Message, Path: segments})
		default:
			findings = append(findings, Finding{
				Message: formatMessage(property, rawErr.Message),
				Path:    segments,
			})
		}
	}
	return findings
}

// additionalPropertiesFinding points the finding at the unexpected property
// itself by extending the path with the property name. Without a name in
// Params the error degrades to the generic message at the original path.
func additionalPropertiesFinding(rawErr RawError, segments []string, property *string) Finding {
	name, ok := rawErr.Params[ParamAdditionalProperty].(string)
	if !ok {
		return Finding{Message: formatMessage(property, rawErr.Message), Path: segments}
	}
	return Finding{
		Message: fmt.Sprintf("Property %q is not expected to be here", name),
		Path:    append(segments, name),
	}
}

// enumFinding lists the allowed values and, when the supplied value is a
// string within editing distance of one of them, proposes the correction.
// A failed pointer resolution only suppresses the suggestion, never the
// finding.
func enumFinding(doc any, rawErr RawError, segments []string, property *string) Finding {
	allowed, _ := rawErr.Params[ParamAllowedValues].([]any)
	msg := formatMessage(property, rawErr.Message) + ": " + renderValues(allowed)

	if value, ok := jsonpointer.Resolve(doc, "#"+rawErr.InstancePath); ok {
		if supplied, ok := value.(string); ok {
			if match, ok := stringutil.BestMatch(supplied, allowed); ok {
				msg += fmt.Sprintf(". Did you mean %q?", match)
			}
		}
	}
	return Finding{Message: msg, Path: segments}
}
