// Package oasdiag turns low-level JSON Schema validator output for OpenAPI
// Specification (OAS) documents into user-facing diagnostics.
//
// Schema validators report violations in their own vocabulary: a keyword such
// as "enum" or "additionalProperties", a JSON Pointer into the instance, and a
// machine-flavored message. oasdiag reshapes that output into findings a
// human can act on: a cleaned-up message plus a path of segments into the
// document, with "Did you mean ...?" suggestions for misspelled enum values.
//
// # Overview
//
// The library consists of two primary packages:
//
//   - diagnose: detect the OAS variant of a document and transform raw
//     validator errors into findings
//   - schemaval: bind compiled JSON Schemas from
//     github.com/santhosh-tekuri/jsonschema/v6 to the diagnose pipeline
//
// Supported OAS variants:
//   - OAS 2.0 (Swagger): https://spec.openapis.org/oas/v2.0.html
//   - OAS 3.0.x: https://spec.openapis.org/oas/v3.0.0.html
//   - OAS 3.1.x: https://spec.openapis.org/oas/v3.1.0.html
//
// # Installation
//
// Install the library using go get:
//
//	go get github.com/erraggy/oasdiag
//
// # Quick Start
//
// Transform validator errors into findings:
//
//	import "github.com/erraggy/oasdiag/diagnose"
//
//	p, err := diagnose.New(
//	    diagnose.WithValidator(diagnose.VariantOAS30, validateFn),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, f := range p.Process(doc) {
//	    fmt.Printf("%s: %s\n", strings.Join(f.Path, "."), f.Message)
//	}
//
// Wrap a compiled JSON Schema as a validator:
//
//	import "github.com/erraggy/oasdiag/schemaval"
//
//	v, err := schemaval.CompileFile("schemas/oas3.0.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	p, err := diagnose.New(
//	    diagnose.WithValidator(diagnose.VariantOAS30, v.ValidateFunc()),
//	)
//
// # Diagnose Package
//
// The diagnose package is the core of the library. It detects which OAS
// variant a document declares (defaulting to 3.0 when the declaration is
// missing or unrecognized), dispatches per-keyword message construction, and
// resolves the offending value to propose enum corrections. The pipeline is a
// pure function of its inputs and safe for concurrent use.
//
// # Schemaval Package
//
// The schemaval package adapts github.com/santhosh-tekuri/jsonschema/v6
// validation errors into the flat error shape the diagnose pipeline consumes,
// flattening nested causes and extracting keyword parameters such as allowed
// enum values and unexpected property names.
//
// # Command-Line Interface
//
// In addition to the library packages, oasdiag provides a command-line
// interface:
//
//	# Detect the OAS variant of a document
//	oasdiag detect openapi.yaml
//
//	# Validate a document against a meta-schema and print findings
//	oasdiag lint -schema schemas/oas3.0.json openapi.yaml
//
//	# Run the MCP server over stdio
//	oasdiag mcp
//
// Install the CLI:
//
//	go install github.com/erraggy/oasdiag/cmd/oasdiag@latest
//
// # Additional Resources
//
//   - GitHub Repository: https://github.com/erraggy/oasdiag
//   - OpenAPI Specification: https://spec.openapis.org
//   - JSON Schema Specification: https://json-schema.org
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/oasdiag
//
// # License
//
// This library is released under the MIT License. See the LICENSE file in the
// repository for full details.
package oasdiag
