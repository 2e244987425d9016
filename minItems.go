package jsonschema

// evaluateMinItems checks an array instance's element count lower bound.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-validation#rfc.section.6.4.2
func evaluateMinItems(ctx *Context, value, instance *Value) (bool, error) {
	minItems, serr := nonNegativeIntegerKeywordValue(ctx, value)
	if serr != nil {
		return false, serr
	}
	if instance.Kind() != KindArray {
		return true, nil
	}
	if len(instance.Items()) < minItems {
		ctx.AddError(NewValidationError("minItems", "too_few_items", "Array should have at least {min_items} items", map[string]any{
			"min_items": minItems,
			"count":     len(instance.Items()),
		}))
		return false, nil
	}
	return true, nil
}
