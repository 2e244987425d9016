package jsonschema

// evaluateMinimum checks that a numeric instance is greater than or exactly
// equal to the inclusive lower limit. Comparison is exact decimal.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-validation#rfc.section.6.2.4
func evaluateMinimum(ctx *Context, value, instance *Value) (bool, error) {
	bound, serr := numericKeywordValue(ctx, value)
	if serr != nil {
		return false, serr
	}
	if instance.Kind() != KindNumber {
		return true, nil
	}
	if instance.Number().Cmp(bound.Rat) < 0 {
		ctx.AddError(NewValidationError("minimum", "value_below_minimum", "{value} should be at least {minimum}", map[string]any{
			"value":   FormatRat(instance.Number()),
			"minimum": FormatRat(bound),
		}))
		return false, nil
	}
	return true, nil
}
