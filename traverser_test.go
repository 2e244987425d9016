package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraverseSchemaClassifiesPositions(t *testing.T) {
	schema := mustParse(t, `{
		"type": "object",
		"properties": {"a": {"type": "string"}},
		"enum": [{"properties": 1}],
		"allOf": [{"minimum": 0}]
	}`)

	states := map[string]bool{}
	TraverseSchema(schema, func(element, parent *Value, path Pointer, state VisitState) bool {
		states[path.String()] = state.IsNotKeyword()
		return true
	})

	require.Contains(t, states, "")
	assert.False(t, states[""], "root is a schema position")
	assert.True(t, states["/properties"], "the properties map itself is not a keyword position")
	assert.False(t, states["/properties/a"], "a property's value is a schema again")
	assert.False(t, states["/properties/a/type"])
	assert.True(t, states["/enum/0"], "enum values are data")
	assert.True(t, states["/enum/0/properties"], "members of enum values stay data")
	assert.False(t, states["/allOf/0/minimum"], "allOf members are schema positions")
}

func TestTraverseSchemaStopsDescent(t *testing.T) {
	schema := mustParse(t, `{"properties": {"a": {"type": "string"}}}`)

	visited := []string{}
	TraverseSchema(schema, func(element, parent *Value, path Pointer, state VisitState) bool {
		visited = append(visited, path.String())
		return path.String() != "/properties"
	})

	assert.Contains(t, visited, "/properties")
	assert.NotContains(t, visited, "/properties/a")
}
