package jsonschema

// evaluateEnum checks the instance for structural equality against one of
// the listed values. Numbers compare by exact decimal value.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-validation#rfc.section.6.1.2
func evaluateEnum(ctx *Context, value, instance *Value) (bool, error) {
	if value.Kind() != KindArray {
		return false, ctx.SchemaError("enum must be an array")
	}
	for _, candidate := range value.Items() {
		if instance.Equals(candidate) {
			return true, nil
		}
	}
	ctx.AddError(NewValidationError("enum", "enum_mismatch", "Value {value} is not one of the allowed values", map[string]any{
		"value": instance.String(),
	}))
	return false, nil
}
