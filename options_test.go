package jsonschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsonschema "github.com/nivalis/jsonschema"
)

func TestDefaultSpecificationOption(t *testing.T) {
	// dependentRequired exists only from Draft 2019-09; under Draft-07 it is
	// an unknown keyword and is ignored.
	schema := `{"dependentRequired":{"a":["b"]}}`
	instance := `{"a":1}`

	assert.False(t, validate(t, schema, instance))

	draft07 := jsonschema.NewOptions().Set(jsonschema.OptionDefaultSpecification, jsonschema.Draft07)
	assert.True(t, validate(t, schema, instance, draft07))
}

func TestFailFastStopsAtFirstError(t *testing.T) {
	schema := parse(t, `{"properties":{"a":{"type":"string"},"b":{"type":"string"},"c":{"type":"string"}}}`)
	instance := parse(t, `{"a":1,"b":2,"c":3}`)

	collect := func(opts *jsonschema.Options) int {
		errs := jsonschema.ErrorMap{}
		valid, err := jsonschema.ValidateDetailed(schema, instance, testBaseURI, opts, nil, nil, errs)
		require.NoError(t, err)
		require.False(t, valid)
		count := 0
		for _, byInstance := range errs {
			count += len(byInstance)
		}
		return count
	}

	full := collect(nil)
	assert.GreaterOrEqual(t, full, 3, "without fail-fast every member failure is recorded")

	failFast := collect(jsonschema.NewOptions().Set(jsonschema.OptionFailFast, true))
	assert.Less(t, failFast, full)
}

func TestErrorReportKeying(t *testing.T) {
	schema := parse(t, `{"properties":{"a":{"type":"string"}}}`)
	instance := parse(t, `{"a":1}`)

	bySchema := jsonschema.ErrorMap{}
	_, err := jsonschema.ValidateDetailed(schema, instance, testBaseURI, nil, nil, nil, bySchema)
	require.NoError(t, err)
	assert.Contains(t, bySchema, "/properties/a/type")
	assert.Contains(t, bySchema["/properties/a/type"], "/a")

	swapped := jsonschema.ErrorMap{}
	opts := jsonschema.NewOptions().Set(jsonschema.OptionErrorsKeyedByInstance, true)
	_, err = jsonschema.ValidateDetailed(schema, instance, testBaseURI, opts, nil, nil, swapped)
	require.NoError(t, err)
	assert.Contains(t, swapped, "/a")
	assert.Contains(t, swapped["/a"], "/properties/a/type")
}

func TestAnnotationCollection(t *testing.T) {
	schema := parse(t, `{"properties":{"a":{"title":"A"}},"additionalProperties":true}`)
	instance := parse(t, `{"a":1,"b":2}`)

	annotations := jsonschema.AnnotationMap{}
	valid, err := jsonschema.ValidateDetailed(schema, instance, testBaseURI, nil, nil, annotations, nil)
	require.NoError(t, err)
	require.True(t, valid)

	root := annotations[""]
	require.NotNil(t, root)
	properties := root["properties"]["/properties"]
	assert.ElementsMatch(t, []string{"a"}, properties.Value)
	additional := root["additionalProperties"]["/additionalProperties"]
	assert.ElementsMatch(t, []string{"b"}, additional.Value)

	title := annotations["/a"]["title"]["/properties/a/title"]
	require.NotNil(t, title.Value)
}

func TestCollectAnnotationsForFailedOption(t *testing.T) {
	schema := parse(t, `{"properties":{"a":true},"required":["missing"]}`)
	instance := parse(t, `{"a":1}`)

	dropped := jsonschema.AnnotationMap{}
	valid, err := jsonschema.ValidateDetailed(schema, instance, testBaseURI, nil, nil, dropped, nil)
	require.NoError(t, err)
	require.False(t, valid)
	assert.Empty(t, dropped, "annotations of a failed schema object are removed")

	kept := jsonschema.AnnotationMap{}
	opts := jsonschema.NewOptions().Set(jsonschema.OptionCollectAnnotationsForFailed, true)
	valid, err = jsonschema.ValidateDetailed(schema, instance, testBaseURI, opts, nil, kept, nil)
	require.NoError(t, err)
	require.False(t, valid)
	assert.NotEmpty(t, kept)
}

func TestAutoResolveOption(t *testing.T) {
	schema := parse(t, `{"$id":"relative/id.json"}`)

	_, err := jsonschema.Validate(schema, parse(t, `{}`), testBaseURI)
	require.NoError(t, err, "relative $id resolves against the base URI by default")

	opts := jsonschema.NewOptions().Set(jsonschema.OptionAutoResolve, false)
	_, err = jsonschema.Validate(schema, parse(t, `{}`), testBaseURI, opts)
	var serr *jsonschema.SchemaError
	assert.ErrorAs(t, err, &serr)
}

func TestIDMapCollection(t *testing.T) {
	schema := parse(t, `{"$id":"https://e.x/s","$defs":{"a":{"$anchor":"a"}}}`)
	ids := map[jsonschema.Id]*jsonschema.Value{}
	_, err := jsonschema.ValidateDetailed(schema, parse(t, `{}`), "https://e.x/s", nil, ids, nil, nil)
	require.NoError(t, err)

	found := map[string]bool{}
	for id := range ids {
		found[id.ID] = true
	}
	assert.True(t, found["https://e.x/s"])
	assert.True(t, found["https://e.x/s#a"])
}
