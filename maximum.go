package jsonschema

// evaluateMaximum checks that a numeric instance is less than or exactly
// equal to the inclusive upper limit. Comparison is exact decimal.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-validation#rfc.section.6.2.2
func evaluateMaximum(ctx *Context, value, instance *Value) (bool, error) {
	bound, serr := numericKeywordValue(ctx, value)
	if serr != nil {
		return false, serr
	}
	if instance.Kind() != KindNumber {
		return true, nil
	}
	if instance.Number().Cmp(bound.Rat) > 0 {
		ctx.AddError(NewValidationError("maximum", "value_above_maximum", "{value} should be at most {maximum}", map[string]any{
			"value":   FormatRat(instance.Number()),
			"maximum": FormatRat(bound),
		}))
		return false, nil
	}
	return true, nil
}
