package jsonschema

// evaluateMultipleOf checks that a numeric instance divides evenly by the
// keyword value, which must be strictly positive. The division is exact
// decimal arithmetic, so 0.3 is a multiple of 0.1.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-validation#rfc.section.6.2.1
func evaluateMultipleOf(ctx *Context, value, instance *Value) (bool, error) {
	step, serr := numericKeywordValue(ctx, value)
	if serr != nil {
		return false, serr
	}
	if step.Sign() <= 0 {
		return false, ctx.SchemaError("multipleOf must be greater than 0")
	}
	if instance.Kind() != KindNumber {
		return true, nil
	}
	if !ratIsMultipleOf(instance.Number(), step) {
		ctx.AddError(NewValidationError("multipleOf", "not_multiple_of", "{value} should be a multiple of {multiple_of}", map[string]any{
			"value":       FormatRat(instance.Number()),
			"multiple_of": FormatRat(step),
		}))
		return false, nil
	}
	return true, nil
}
