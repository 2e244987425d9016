package jsonschema_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"

	jsonschema "github.com/nivalis/jsonschema"
)

func b64(s string) string { return base64.StdEncoding.EncodeToString([]byte(s)) }

func TestContentAnnotatesByDefault(t *testing.T) {
	schema := `{"contentEncoding":"base64","contentMediaType":"application/json"}`
	assert.True(t, validate(t, schema, `"definitely !!! not base64"`),
		"without the CONTENT option the keywords only annotate")
}

func TestContentEnforcement(t *testing.T) {
	content := jsonschema.NewOptions().Set(jsonschema.OptionContent, true)

	tests := []struct {
		name     string
		schema   string
		instance string
		valid    bool
	}{
		{
			"valid base64",
			`{"contentEncoding":"base64"}`,
			`"` + b64("hello") + `"`, true,
		},
		{
			"invalid base64",
			`{"contentEncoding":"base64"}`,
			`"!!!"`, false,
		},
		{
			"base64 wrapping json",
			`{"contentEncoding":"base64","contentMediaType":"application/json"}`,
			`"` + b64(`{"a":1}`) + `"`, true,
		},
		{
			"base64 wrapping broken json",
			`{"contentEncoding":"base64","contentMediaType":"application/json"}`,
			`"` + b64(`{oops`) + `"`, false,
		},
		{
			"plain json media type",
			`{"contentMediaType":"application/json"}`,
			`"[1,2,3]"`, true,
		},
		{
			"unknown encoding is ignored",
			`{"contentEncoding":"rot13"}`,
			`"anything"`, true,
		},
		{
			"non-string instances pass",
			`{"contentEncoding":"base64"}`,
			`42`, true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, validate(t, tt.schema, tt.instance, content))
		})
	}
}

func TestContentSchema(t *testing.T) {
	content := jsonschema.NewOptions().Set(jsonschema.OptionContent, true)

	schema := `{
		"contentEncoding": "base64",
		"contentMediaType": "application/json",
		"contentSchema": {"required": ["user"]}
	}`
	assert.True(t, validate(t, schema, `"`+b64(`{"user":"x"}`)+`"`, content))
	assert.False(t, validate(t, schema, `"`+b64(`{"other":1}`)+`"`, content))
}

func TestContentYAMLMediaType(t *testing.T) {
	content := jsonschema.NewOptions().Set(jsonschema.OptionContent, true)

	schema := `{"contentMediaType":"application/yaml"}`
	assert.True(t, validate(t, schema, `"a: 1\nb: [2, 3]\n"`, content))
}
