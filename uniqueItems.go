package jsonschema

// evaluateUniqueItems checks that no two array elements are structurally
// equal. Numbers compare by exact decimal value, objects independent of
// member order.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-validation#rfc.section.6.4.3
func evaluateUniqueItems(ctx *Context, value, instance *Value) (bool, error) {
	if value.Kind() != KindBoolean {
		return false, ctx.SchemaError("uniqueItems must be a boolean")
	}
	if !value.Bool() || instance.Kind() != KindArray {
		return true, nil
	}

	items := instance.Items()
	for i := 1; i < len(items); i++ {
		for j := 0; j < i; j++ {
			if items[i].Equals(items[j]) {
				ctx.AddError(NewValidationError("uniqueItems", "items_not_unique", "Array items at {first} and {second} are equal", map[string]any{
					"first":  j,
					"second": i,
				}))
				return false, nil
			}
		}
	}
	return true, nil
}
