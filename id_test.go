package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, source string) *Value {
	t.Helper()
	value, err := Parse([]byte(source))
	require.NoError(t, err)
	return value
}

func idIndexOf(t *testing.T, ids map[Id]*Value) map[string]*Value {
	t.Helper()
	return buildIDIndex(ids)
}

func TestScanIDsRegistersRoot(t *testing.T) {
	schema := mustParse(t, `{"type":"object"}`)
	ids, err := ScanIDs("https://example.com/root", schema, Draft201909)
	require.NoError(t, err)

	index := idIndexOf(t, ids)
	assert.Same(t, schema, index["https://example.com/root"])
}

func TestScanIDsResolvesNestedIDs(t *testing.T) {
	schema := mustParse(t, `{
		"$id": "https://example.com/root",
		"$defs": {
			"a": {"$id": "sub/a.json", "$defs": {"deep": {"$id": "deep.json"}}},
			"b": {"$id": "https://other.example/b"}
		}
	}`)
	ids, err := ScanIDs("https://example.com/root", schema, Draft201909)
	require.NoError(t, err)
	index := idIndexOf(t, ids)

	assert.Contains(t, index, "https://example.com/sub/a.json")
	assert.Contains(t, index, "https://example.com/sub/deep.json", "nested $id resolves against the embedded base")
	assert.Contains(t, index, "https://other.example/b")
}

func TestScanIDsAnchors(t *testing.T) {
	schema := mustParse(t, `{
		"$id": "https://example.com/root",
		"$defs": {"a": {"$anchor": "first"}}
	}`)
	ids, err := ScanIDs("https://example.com/root", schema, Draft201909)
	require.NoError(t, err)
	index := idIndexOf(t, ids)

	node := index["https://example.com/root#first"]
	require.NotNil(t, node)
	anchorValue, _ := node.Get("$anchor")
	assert.Equal(t, "first", anchorValue.Str())

	for id := range ids {
		if id.ID == "https://example.com/root#first" {
			assert.True(t, id.IsAnchor())
		}
	}
}

func TestScanIDsDraft07FragmentID(t *testing.T) {
	schema := mustParse(t, `{"$defs": {"a": {"$id": "#legacy"}}}`)

	ids, err := ScanIDs("https://example.com/root", schema, Draft07)
	require.NoError(t, err)
	assert.Contains(t, idIndexOf(t, ids), "https://example.com/root#legacy")

	// Draft 2019-09 forbids fragments in $id.
	_, err = ScanIDs("https://example.com/root", schema, Draft201909)
	var serr *SchemaError
	require.ErrorAs(t, err, &serr)
}

func TestScanIDsInvalidAnchorFragment(t *testing.T) {
	schema := mustParse(t, `{"$defs": {"a": {"$id": "#not a name"}}}`)
	_, err := ScanIDs("https://example.com/root", schema, Draft07)
	var serr *SchemaError
	assert.ErrorAs(t, err, &serr)
}

func TestScanIDsDuplicates(t *testing.T) {
	duplicateID := mustParse(t, `{
		"$id": "https://example.com/root",
		"$defs": {
			"a": {"$id": "same.json"},
			"b": {"$id": "same.json"}
		}
	}`)
	_, err := ScanIDs("https://example.com/root", duplicateID, Draft201909)
	assert.ErrorIs(t, err, ErrDuplicateID)

	duplicateAnchor := mustParse(t, `{
		"$defs": {
			"a": {"$anchor": "dup"},
			"b": {"$anchor": "dup"}
		}
	}`)
	_, err = ScanIDs("https://example.com/root", duplicateAnchor, Draft201909)
	assert.ErrorIs(t, err, ErrDuplicateAnchor)
}

func TestScanIDsBaseURIChecks(t *testing.T) {
	schema := mustParse(t, `{}`)

	_, err := ScanIDs("relative/base", schema, Draft201909)
	assert.ErrorIs(t, err, ErrBaseURINotAbsolute)

	_, err = ScanIDs("https://example.com/root#frag", schema, Draft201909)
	assert.ErrorIs(t, err, ErrBaseURIHasFragment)
}

func TestScanIDsSkipsPropertyNamedID(t *testing.T) {
	// A member of "properties" called "$id" is user data, not a keyword.
	schema := mustParse(t, `{
		"properties": {"$id": {"type": "string"}}
	}`)
	ids, err := ScanIDs("https://example.com/root", schema, Draft201909)
	require.NoError(t, err)
	assert.Len(t, ids, 1, "only the document root is registered")
}

func TestScanIDsIgnoresIDsInsideEnum(t *testing.T) {
	schema := mustParse(t, `{"enum": [{"$id": "https://example.com/not-a-schema"}]}`)
	ids, err := ScanIDs("https://example.com/root", schema, Draft201909)
	require.NoError(t, err)
	assert.Len(t, ids, 1)
}
