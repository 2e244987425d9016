// Package jsonschema implements a JSON Schema validator for Draft-07 and
// Draft 2019-09, with limited Draft-06 compatibility. Validation produces a
// boolean verdict plus, optionally, structured error and annotation reports
// keyed by schema and instance location.
//
// Credit to https://github.com/santhosh-tekuri/jsonschema for format validators.
package jsonschema
