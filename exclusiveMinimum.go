package jsonschema

// evaluateExclusiveMinimum checks that a numeric instance is strictly
// greater than the exclusive lower limit.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-validation#rfc.section.6.2.5
func evaluateExclusiveMinimum(ctx *Context, value, instance *Value) (bool, error) {
	bound, serr := numericKeywordValue(ctx, value)
	if serr != nil {
		return false, serr
	}
	if instance.Kind() != KindNumber {
		return true, nil
	}
	if instance.Number().Cmp(bound.Rat) <= 0 {
		ctx.AddError(NewValidationError("exclusiveMinimum", "value_at_or_below_exclusive_minimum", "{value} should be greater than {exclusive_minimum}", map[string]any{
			"value":             FormatRat(instance.Number()),
			"exclusive_minimum": FormatRat(bound),
		}))
		return false, nil
	}
	return true, nil
}
