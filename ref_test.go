package jsonschema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jsonschema "github.com/nivalis/jsonschema"
)

func TestRefToAnchor(t *testing.T) {
	schema := `{
		"$id": "https://e.x/s",
		"properties": {"v": {"$ref": "#num"}},
		"$defs": {"T": {"$anchor": "num", "type": "integer"}}
	}`
	assert.True(t, validate(t, schema, `{"v":3}`))
	assert.False(t, validate(t, schema, `{"v":"x"}`))
}

func TestRefToDraft07AnchorID(t *testing.T) {
	schema := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"$id": "https://e.x/s",
		"properties": {"v": {"$ref": "#num"}},
		"definitions": {"T": {"$id": "#num", "type": "integer"}}
	}`
	assert.True(t, validate(t, schema, `{"v":3}`))
	assert.False(t, validate(t, schema, `{"v":"x"}`))
}

func TestRefAcrossEmbeddedResources(t *testing.T) {
	schema := `{
		"$id": "https://e.x/root",
		"properties": {"v": {"$ref": "https://e.x/other"}},
		"$defs": {
			"embedded": {
				"$id": "https://e.x/other",
				"$defs": {"inner": {"type": "string"}},
				"$ref": "#/$defs/inner"
			}
		}
	}`
	assert.True(t, validate(t, schema, `{"v":"x"}`),
		"a pointer fragment inside the embedded resource resolves against its own base")
	assert.False(t, validate(t, schema, `{"v":1}`))
}

func TestRefCycleTerminatesOnFiniteInstance(t *testing.T) {
	schema := `{
		"properties": {"next": {"$ref": "#"}},
		"type": "object"
	}`
	assert.True(t, validate(t, schema, `{"next":{"next":{"next":{}}}}`))
	assert.False(t, validate(t, schema, `{"next":{"next":1}}`))
}

func TestRefToKnownMetaschema(t *testing.T) {
	schema := `{"$ref": "http://json-schema.org/draft-07/schema"}`

	valid, err := jsonschema.Validate(parse(t, schema), parse(t, `{"type":"string","minLength":1}`), testBaseURI)
	require.NoError(t, err)
	assert.True(t, valid, "a well-formed draft-07 schema satisfies its meta-schema")

	valid, err = jsonschema.Validate(parse(t, schema), parse(t, `{"type":12}`), testBaseURI)
	require.NoError(t, err)
	assert.False(t, valid, "a numeric type keyword violates the meta-schema")
}

func TestRecursiveRefPromotion(t *testing.T) {
	// The classic tree / strictTree pair: strictTree extends tree and
	// $recursiveRef must land back on strictTree at every depth.
	strictTree := `{
		"$id": "https://e.x/strictTree",
		"$recursiveAnchor": true,
		"$ref": "https://e.x/tree",
		"unevaluatedProperties": false,
		"$defs": {
			"tree": {
				"$id": "https://e.x/tree",
				"$recursiveAnchor": true,
				"type": "object",
				"properties": {
					"data": true,
					"children": {
						"type": "array",
						"items": {"$recursiveRef": "#"}
					}
				}
			}
		}
	}`

	assert.True(t, validate(t, strictTree, `{"data":1,"children":[{"data":2,"children":[]}]}`))
	assert.False(t, validate(t, strictTree, `{"children":[{"daat":1}]}`),
		"the misspelled member at depth one lands on strictTree, not tree")
}

func TestRecursiveRefWithoutAnchorActsAsRef(t *testing.T) {
	schema := `{
		"type": "object",
		"properties": {"next": {"$recursiveRef": "#"}}
	}`
	assert.True(t, validate(t, schema, `{"next":{}}`))
	assert.False(t, validate(t, schema, `{"next":1}`))
}

func TestScanIDsExposedForPreflight(t *testing.T) {
	schema := parse(t, `{"$id":"https://e.x/s","$defs":{"a":{"$anchor":"a"}}}`)
	ids, err := jsonschema.ScanIDs("https://e.x/s", schema, jsonschema.Draft201909)
	require.NoError(t, err)

	found := map[string]bool{}
	for id := range ids {
		found[id.ID] = true
	}
	assert.True(t, found["https://e.x/s"])
	assert.True(t, found["https://e.x/s#a"])
}
