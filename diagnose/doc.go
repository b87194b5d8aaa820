// Package diagnose transforms raw JSON Schema validation errors for OpenAPI
// documents into user-facing findings.
//
// A Pipeline holds a registry of validators keyed by OAS Variant. Process
// detects the variant a document declares, runs the registered validator, and
// reshapes each RawError it reports into a Finding: a cleaned-up message plus
// a path of segments into the document. Errors from schema composition
// artifacts (the "if" keyword) are dropped, unexpected-property errors gain a
// path segment pointing at the offending property, and enum violations get a
// "Did you mean ...?" suggestion when the supplied value is a near miss of an
// allowed one.
//
// The pipeline never mutates the document, never panics on malformed
// validator output, and holds no state across invocations, so a single
// Pipeline is safe for concurrent use.
//
// Example:
//
//	p, err := diagnose.New(
//	    diagnose.WithValidator(diagnose.VariantOAS30, validateFn),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range p.Process(doc) {
//	    fmt.Printf("%v: %s\n", f.Path, f.Message)
//	}
//
// Validators are external collaborators: anything that can produce RawError
// values qualifies. The schemaval package adapts compiled schemas from
// github.com/santhosh-tekuri/jsonschema/v6.
package diagnose
