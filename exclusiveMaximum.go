package jsonschema

// evaluateExclusiveMaximum checks that a numeric instance is strictly less
// than the exclusive upper limit.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-validation#rfc.section.6.2.3
func evaluateExclusiveMaximum(ctx *Context, value, instance *Value) (bool, error) {
	bound, serr := numericKeywordValue(ctx, value)
	if serr != nil {
		return false, serr
	}
	if instance.Kind() != KindNumber {
		return true, nil
	}
	if instance.Number().Cmp(bound.Rat) >= 0 {
		ctx.AddError(NewValidationError("exclusiveMaximum", "value_at_or_above_exclusive_maximum", "{value} should be less than {exclusive_maximum}", map[string]any{
			"value":             FormatRat(instance.Number()),
			"exclusive_maximum": FormatRat(bound),
		}))
		return false, nil
	}
	return true, nil
}
