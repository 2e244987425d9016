package jsonschema

// evaluateMaxLength checks a string instance's length in Unicode code
// points, not UTF-16 units or bytes.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-validation#rfc.section.6.3.1
func evaluateMaxLength(ctx *Context, value, instance *Value) (bool, error) {
	maxLen, serr := nonNegativeIntegerKeywordValue(ctx, value)
	if serr != nil {
		return false, serr
	}
	if instance.Kind() != KindString {
		return true, nil
	}
	if length := codePointLength(instance.Str()); length > maxLen {
		ctx.AddError(NewValidationError("maxLength", "string_too_long", "Value should be at most {max_length} characters", map[string]any{
			"max_length": maxLen,
			"length":     length,
		}))
		return false, nil
	}
	return true, nil
}
