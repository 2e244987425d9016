package jsonschema

// evaluateMaxItems checks an array instance's element count upper bound.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-validation#rfc.section.6.4.1
func evaluateMaxItems(ctx *Context, value, instance *Value) (bool, error) {
	maxItems, serr := nonNegativeIntegerKeywordValue(ctx, value)
	if serr != nil {
		return false, serr
	}
	if instance.Kind() != KindArray {
		return true, nil
	}
	if len(instance.Items()) > maxItems {
		ctx.AddError(NewValidationError("maxItems", "too_many_items", "Array should have at most {max_items} items", map[string]any{
			"max_items": maxItems,
			"count":     len(instance.Items()),
		}))
		return false, nil
	}
	return true, nil
}
