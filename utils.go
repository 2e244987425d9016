package jsonschema

import (
	"fmt"
	"regexp"
	"strings"
)

// replace substitutes placeholders in a template string with actual parameter values.
func replace(template string, params map[string]any) string {
	for key, value := range params {
		placeholder := "{" + key + "}"
		template = strings.ReplaceAll(template, placeholder, fmt.Sprint(value))
	}

	return template
}

// anchorPattern is the plain-name anchor syntax shared by $anchor and the
// pre-2019-09 fragment form of $id.
var anchorPattern = regexp.MustCompile(`^[A-Z_a-z][-A-Z_a-z.0-9]*$`)

func isValidAnchor(name string) bool {
	return anchorPattern.MatchString(name)
}

// codePointLength counts Unicode code points, not UTF-16 units or bytes.
func codePointLength(s string) int {
	return len([]rune(s))
}

// numericKeywordValue enforces that a keyword value is a number.
func numericKeywordValue(ctx *Context, value *Value) (*Rat, *SchemaError) {
	if value.Kind() != KindNumber {
		return nil, ctx.SchemaError("%s must be a number", ctx.state.currentKeyword)
	}
	return value.Number(), nil
}

// nonNegativeIntegerKeywordValue enforces that a keyword value is an integer >= 0.
func nonNegativeIntegerKeywordValue(ctx *Context, value *Value) (int, *SchemaError) {
	if value.Kind() != KindNumber || !value.IsInteger() {
		return 0, ctx.SchemaError("%s must be a non-negative integer", ctx.state.currentKeyword)
	}
	n := value.Number().Num().Int64()
	if n < 0 {
		return 0, ctx.SchemaError("%s must be a non-negative integer", ctx.state.currentKeyword)
	}
	return int(n), nil
}

// stringArrayKeywordValue enforces that a keyword value is an array of strings.
func stringArrayKeywordValue(ctx *Context, value *Value) ([]string, *SchemaError) {
	if value.Kind() != KindArray {
		return nil, ctx.SchemaError("%s must be an array of strings", ctx.state.currentKeyword)
	}
	names := make([]string, 0, len(value.Items()))
	for _, item := range value.Items() {
		if item.Kind() != KindString {
			return nil, ctx.SchemaError("%s must be an array of strings", ctx.state.currentKeyword)
		}
		names = append(names, item.Str())
	}
	return names, nil
}
