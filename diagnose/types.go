package diagnose

// Params keys the pipeline understands. Validators populate these per
// keyword; anything else in Params is carried but ignored.
const (
	// ParamAdditionalProperty names the unexpected property reported by an
	// "additionalProperties" violation.
	ParamAdditionalProperty = "additionalProperty"
	// ParamAllowedValues holds the ordered allowed values ([]any) reported
	// by an "enum" violation.
	ParamAllowedValues = "allowedValues"
)

// RawError is a single diagnostic emitted by an external schema validator,
// prior to reshaping.
type RawError struct {
	// Keyword is the violated constraint category (e.g. "enum", "required",
	// "additionalProperties").
	Keyword string
	// InstancePath is a JSON-Pointer-style path locating the offending node
	// within the document. The empty string means the document root.
	InstancePath string
	// Message is the validator's human-readable description of the violation.
	Message string
	// Params carries keyword-specific details; its shape depends on Keyword.
	// See the Param* constants for the keys the pipeline reads.
	Params map[string]any
}

// Finding is a reshaped, user-facing diagnostic: what is wrong and where.
// Path is the sequence of unescaped segments leading to the offending node;
// an empty path denotes the document root. Consumers map Path back onto
// source locations.
type Finding struct {
	Message string   `json:"message"`
	Path    []string `json:"path"`
}

// ValidateFunc validates a whole document against one schema variant and
// reports raw violations. A nil or empty result means the document is valid
// for that variant.
type ValidateFunc func(doc any) []RawError
