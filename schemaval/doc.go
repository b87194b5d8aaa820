// Package schemaval binds compiled JSON Schemas to the diagnose pipeline.
//
// It wraps github.com/santhosh-tekuri/jsonschema/v6: a compiled schema
// becomes a diagnose.ValidateFunc whose output the pipeline can reshape. The
// validator's nested ValidationError tree is flattened to its leaf causes,
// one diagnose.RawError per leaf, with the violated keyword taken from the
// error kind's keyword path and keyword-specific parameters (allowed enum
// values, unexpected property names) extracted from the kind itself.
//
// Example:
//
//	v, err := schemaval.CompileFile("schemas/oas3.0.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, err := diagnose.New(
//	    diagnose.WithValidator(diagnose.VariantOAS30, v.ValidateFunc()),
//	)
//
// Compiling the meta-schemas themselves is ordinary JSON Schema compilation;
// this package adds nothing to it beyond convenience constructors.
package schemaval
