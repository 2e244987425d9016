package jsonschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePreservesMemberOrder(t *testing.T) {
	value, err := Parse([]byte(`{"b":1,"a":2,"c":{"z":null,"y":[1,2]}}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a", "c"}, value.Keys())

	nested, ok := value.Get("c")
	require.True(t, ok)
	assert.Equal(t, []string{"z", "y"}, nested.Keys())
}

func TestParseNumbersKeepExactValue(t *testing.T) {
	value, err := Parse([]byte(`[0.1, 1.0, 1e2, 3.141592653589793238462643383279]`))
	require.NoError(t, err)
	items := value.Items()

	assert.Equal(t, "0.1", FormatRat(items[0].Number()))
	assert.True(t, items[1].IsInteger(), "1.0 normalizes to an integer")
	assert.True(t, items[2].IsInteger())
	assert.Equal(t, "100", FormatRat(items[2].Number()))
	assert.False(t, items[3].IsInteger())
}

func TestParseRejectsTrailingData(t *testing.T) {
	_, err := Parse([]byte(`{} {}`))
	assert.ErrorIs(t, err, ErrUnexpectedTrailingData)
}

func TestValueEquality(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		equal bool
	}{
		{"numbers by exact value", `1.0`, `1`, true},
		{"same decimal lexeme", `0.1`, `0.1`, true},
		{"different numbers", `0.1`, `0.2`, false},
		{"objects ignore member order", `{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{"objects differ by value", `{"a":1}`, `{"a":2}`, false},
		{"arrays are positional", `[1,2]`, `[2,1]`, false},
		{"nested equality", `{"a":[1,{"b":2.0}]}`, `{"a":[1,{"b":2}]}`, true},
		{"null vs false", `null`, `false`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Parse([]byte(tt.a))
			require.NoError(t, err)
			b, err := Parse([]byte(tt.b))
			require.NoError(t, err)
			assert.Equal(t, tt.equal, a.Equals(b))
			assert.Equal(t, tt.equal, b.Equals(a))
		})
	}
}

func TestPointerRoundTrip(t *testing.T) {
	root, err := Parse([]byte(`{"a":{"b~/c":[10,20,{"":"deep"}]}}`))
	require.NoError(t, err)

	var paths []Pointer
	var collect func(node *Value, path Pointer)
	collect = func(node *Value, path Pointer) {
		paths = append(paths, path)
		switch node.Kind() {
		case KindObject:
			for _, key := range node.Keys() {
				member, _ := node.Get(key)
				collect(member, path.Append(key))
			}
		case KindArray:
			for i, item := range node.Items() {
				collect(item, path.Append(itoa(i)))
			}
		}
	}
	collect(root, Pointer{})

	for _, path := range paths {
		rendered := path.String()
		parsed, err := ParsePointer(rendered)
		require.NoError(t, err)
		assert.NotNil(t, Follow(root, parsed), "pointer %q should resolve", rendered)
		assert.Equal(t, Follow(root, path), Follow(root, parsed))
	}
}

func itoa(i int) string {
	return string(rune('0' + i))
}

func TestPointerEscaping(t *testing.T) {
	p := Pointer{"a/b", "c~d"}
	assert.Equal(t, "/a~1b/c~0d", p.String())

	parsed, err := ParsePointer("/a~1b/c~0d")
	require.NoError(t, err)
	assert.Equal(t, p, parsed)

	_, err = ParsePointer("/bad~2token")
	assert.ErrorIs(t, err, ErrInvalidPointer)
	_, err = ParsePointer("no-slash")
	assert.ErrorIs(t, err, ErrInvalidPointer)
}

func TestFollowArraysByNumericToken(t *testing.T) {
	root, err := Parse([]byte(`{"items":[{"x":1},{"x":2}]}`))
	require.NoError(t, err)

	node, err := FollowString(root, "/items/1/x")
	require.NoError(t, err)
	require.NotNil(t, node)
	assert.Equal(t, "2", FormatRat(node.Number()))

	assert.Nil(t, Follow(root, Pointer{"items", "9"}))
	assert.Nil(t, Follow(root, Pointer{"items", "x"}))
}

func TestParseYAMLPreservesMappingOrder(t *testing.T) {
	value, err := ParseYAML([]byte("b: 1\na: [true, null]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a"}, value.Keys())

	member, ok := value.Get("a")
	require.True(t, ok)
	assert.Equal(t, KindArray, member.Kind())
	assert.True(t, member.Items()[1].IsNull())
}
