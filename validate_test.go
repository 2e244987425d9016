package jsonschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsonschema "github.com/nivalis/jsonschema"
)

const testBaseURI = "https://example.com/schema"

func parse(t *testing.T, source string) *jsonschema.Value {
	t.Helper()
	value, err := jsonschema.Parse([]byte(source))
	require.NoError(t, err)
	return value
}

func validate(t *testing.T, schema, instance string, opts ...*jsonschema.Options) bool {
	t.Helper()
	valid, err := jsonschema.Validate(parse(t, schema), parse(t, instance), testBaseURI, opts...)
	require.NoError(t, err)
	return valid
}

func TestEndToEndScenarios(t *testing.T) {
	tests := []struct {
		name     string
		schema   string
		instance string
		valid    bool
	}{
		{
			name:     "draft-07 integer range accepts zero",
			schema:   `{"$schema":"http://json-schema.org/draft-07/schema#","type":"integer","minimum":0,"exclusiveMaximum":10}`,
			instance: `0`,
			valid:    true,
		},
		{
			name:     "draft-07 integer range rejects the exclusive bound",
			schema:   `{"$schema":"http://json-schema.org/draft-07/schema#","type":"integer","minimum":0,"exclusiveMaximum":10}`,
			instance: `10`,
			valid:    false,
		},
		{
			name:     "draft-07 integer range rejects a fraction",
			schema:   `{"$schema":"http://json-schema.org/draft-07/schema#","type":"integer","minimum":0,"exclusiveMaximum":10}`,
			instance: `9.9`,
			valid:    false,
		},
		{
			name:     "draft-07 integer range rejects a string",
			schema:   `{"$schema":"http://json-schema.org/draft-07/schema#","type":"integer","minimum":0,"exclusiveMaximum":10}`,
			instance: `"5"`,
			valid:    false,
		},
		{
			name:     "unevaluatedProperties admits evaluated members",
			schema:   `{"properties":{"a":{"type":"string"}},"unevaluatedProperties":false}`,
			instance: `{"a":"x"}`,
			valid:    true,
		},
		{
			name:     "unevaluatedProperties rejects extras",
			schema:   `{"properties":{"a":{"type":"string"}},"unevaluatedProperties":false}`,
			instance: `{"a":"x","b":1}`,
			valid:    false,
		},
		{
			name:     "additionalProperties ignores allOf branches",
			schema:   `{"allOf":[{"type":"object"}],"properties":{"n":{"type":"number"}},"additionalProperties":false}`,
			instance: `{"n":1,"x":2}`,
			valid:    false,
		},
		{
			name:     "additionalProperties admits declared members",
			schema:   `{"allOf":[{"type":"object"}],"properties":{"n":{"type":"number"}},"additionalProperties":false}`,
			instance: `{"n":1}`,
			valid:    true,
		},
		{
			name:     "ref into $defs accepts integers",
			schema:   `{"$id":"https://e.x/s","items":{"$ref":"#/$defs/T"},"$defs":{"T":{"type":"integer"}}}`,
			instance: `[1,2,3]`,
			valid:    true,
		},
		{
			name:     "ref into $defs rejects a string element",
			schema:   `{"$id":"https://e.x/s","items":{"$ref":"#/$defs/T"},"$defs":{"T":{"type":"integer"}}}`,
			instance: `[1,"x"]`,
			valid:    false,
		},
		{
			name:     "oneOf rejects a double match",
			schema:   `{"oneOf":[{"type":"number"},{"type":"integer"}]}`,
			instance: `5`,
			valid:    false,
		},
		{
			name:     "oneOf accepts a single match",
			schema:   `{"oneOf":[{"type":"number"},{"type":"integer"}]}`,
			instance: `5.5`,
			valid:    true,
		},
		{
			name:     "contains with minContains met",
			schema:   `{"contains":{"const":42},"minContains":2}`,
			instance: `[1,42,42,3]`,
			valid:    true,
		},
		{
			name:     "contains with minContains unmet",
			schema:   `{"contains":{"const":42},"minContains":2}`,
			instance: `[42]`,
			valid:    false,
		},
		{
			name:     "multipleOf uses exact decimals",
			schema:   `{"multipleOf":0.1}`,
			instance: `0.3`,
			valid:    true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, validate(t, tt.schema, tt.instance))
		})
	}
}

func TestAnnotationOnlyKeywordsNeverChangeVerdict(t *testing.T) {
	plain := `{"type":"string"}`
	annotated := `{"type":"string","title":"T","description":"D","default":42,"examples":[1,2],"readOnly":true,"deprecated":false}`

	for _, instance := range []string{`"ok"`, `17`} {
		assert.Equal(t, validate(t, plain, instance), validate(t, annotated, instance))
	}
}

func TestNotWrapInvertsVerdict(t *testing.T) {
	schemas := []string{
		`{"type":"integer"}`,
		`{"properties":{"a":{"minimum":3}},"required":["a"]}`,
	}
	instances := []string{`5`, `"x"`, `{"a":4}`, `{"b":1}`}

	for _, schema := range schemas {
		wrapped := `{"not":` + schema + `}`
		for _, instance := range instances {
			assert.Equal(t, !validate(t, schema, instance), validate(t, wrapped, instance),
				"schema %s instance %s", schema, instance)
		}
	}
}

func TestEnumEquivalentToAnyOfConst(t *testing.T) {
	enum := `{"enum":[1,"two",{"k":3.0}]}`
	anyOf := `{"anyOf":[{"const":1},{"const":"two"},{"const":{"k":3}}]}`

	for _, instance := range []string{`1`, `1.0`, `"two"`, `{"k":3}`, `{"k":3.5}`, `null`} {
		assert.Equal(t, validate(t, enum, instance), validate(t, anyOf, instance), "instance %s", instance)
	}
}

func TestEqualInstancesValidateIdentically(t *testing.T) {
	schema := `{"properties":{"n":{"multipleOf":0.01}},"additionalProperties":false}`
	// 1.30 and 1.3 are the same JSON value.
	assert.Equal(t, validate(t, schema, `{"n":1.30}`), validate(t, schema, `{"n":1.3}`))
}

func TestBooleanSchemas(t *testing.T) {
	assert.True(t, validate(t, `true`, `{"anything":1}`))
	assert.False(t, validate(t, `false`, `null`))
	assert.True(t, validate(t, `{}`, `[1,2,3]`), "the empty schema is vacuous")
}

func TestMalformedSchemaIsFatal(t *testing.T) {
	tests := []struct {
		name   string
		schema string
	}{
		{"non-numeric minimum", `{"minimum":"zero"}`},
		{"negative multipleOf", `{"multipleOf":-2}`},
		{"allOf empty", `{"allOf":[]}`},
		{"unknown type name", `{"type":"integerish"}`},
		{"bad pattern", `{"pattern":"[unclosed"}`},
		{"non-schema subschema", `{"items":12}`},
		{"unresolvable ref", `{"$ref":"https://nowhere.invalid/missing"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jsonschema.Validate(parse(t, tt.schema), parse(t, `{}`), testBaseURI)
			var serr *jsonschema.SchemaError
			require.ErrorAs(t, err, &serr)
			assert.NotEmpty(t, serr.KeywordURI, "schema errors carry the absolute keyword URI")
		})
	}
}

func TestValidationFailureIsNotAnError(t *testing.T) {
	valid, err := jsonschema.Validate(parse(t, `{"type":"string"}`), parse(t, `1`), testBaseURI)
	require.NoError(t, err)
	assert.False(t, valid)
}
