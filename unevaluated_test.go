package jsonschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnevaluatedProperties(t *testing.T) {
	tests := []struct {
		name     string
		schema   string
		instance string
		valid    bool
	}{
		{
			"sees through allOf",
			`{"allOf":[{"properties":{"a":true}}],"unevaluatedProperties":false}`,
			`{"a":1}`, true,
		},
		{
			"rejects members no branch evaluated",
			`{"allOf":[{"properties":{"a":true}}],"unevaluatedProperties":false}`,
			`{"a":1,"b":2}`, false,
		},
		{
			"sees patternProperties",
			`{"patternProperties":{"^x_":true},"unevaluatedProperties":false}`,
			`{"x_a":1}`, true,
		},
		{
			"sees additionalProperties",
			`{"properties":{"a":true},"additionalProperties":true,"unevaluatedProperties":false}`,
			`{"a":1,"b":2}`, true,
		},
		{
			"failed branch contributes nothing",
			`{"anyOf":[{"properties":{"b":{"type":"string"}},"required":["b"]},{"properties":{"a":true}}],"unevaluatedProperties":false}`,
			`{"a":1,"b":2}`, false,
		},
		{
			"applies a real subschema to leftovers",
			`{"properties":{"a":true},"unevaluatedProperties":{"type":"number"}}`,
			`{"a":"s","b":2}`, true,
		},
		{
			"leftover fails the subschema",
			`{"properties":{"a":true},"unevaluatedProperties":{"type":"number"}}`,
			`{"a":"s","b":"x"}`, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, validate(t, tt.schema, tt.instance))
		})
	}
}

func TestUnevaluatedItems(t *testing.T) {
	tests := []struct {
		name     string
		schema   string
		instance string
		valid    bool
	}{
		{
			"covers beyond array-form items",
			`{"items":[{"type":"integer"}],"unevaluatedItems":{"type":"string"}}`,
			`[1,"a","b"]`, true,
		},
		{
			"rejects uncovered elements",
			`{"items":[{"type":"integer"}],"unevaluatedItems":false}`,
			`[1,2]`, false,
		},
		{
			"schema-form items covers everything",
			`{"items":{"type":"integer"},"unevaluatedItems":false}`,
			`[1,2,3]`, true,
		},
		{
			"sees items through allOf",
			`{"allOf":[{"items":[true,true]}],"unevaluatedItems":false}`,
			`[1,2]`, true,
		},
		{
			"additionalItems covers the tail",
			`{"items":[{"type":"integer"}],"additionalItems":true,"unevaluatedItems":false}`,
			`[1,"x"]`, true,
		},
		{
			"empty array has nothing unevaluated",
			`{"unevaluatedItems":false}`,
			`[]`, true,
		},
		{
			"bare unevaluatedItems applies to all",
			`{"unevaluatedItems":{"type":"integer"}}`,
			`[1,"x"]`, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, validate(t, tt.schema, tt.instance))
		})
	}
}
