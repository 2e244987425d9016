package jsonschema

// evaluateMinLength checks a string instance's length in Unicode code
// points, not UTF-16 units or bytes.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-validation#rfc.section.6.3.2
func evaluateMinLength(ctx *Context, value, instance *Value) (bool, error) {
	minLen, serr := nonNegativeIntegerKeywordValue(ctx, value)
	if serr != nil {
		return false, serr
	}
	if instance.Kind() != KindString {
		return true, nil
	}
	if length := codePointLength(instance.Str()); length < minLen {
		ctx.AddError(NewValidationError("minLength", "string_too_short", "Value should be at least {min_length} characters", map[string]any{
			"min_length": minLen,
			"length":     length,
		}))
		return false, nil
	}
	return true, nil
}
