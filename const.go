package jsonschema

// evaluateConst checks the instance for structural equality against the
// single allowed value.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-validation#rfc.section.6.1.3
func evaluateConst(ctx *Context, value, instance *Value) (bool, error) {
	if instance.Equals(value) {
		return true, nil
	}
	ctx.AddError(NewValidationError("const", "const_mismatch", "Value {value} does not equal the constant {constant}", map[string]any{
		"value":    instance.String(),
		"constant": value.String(),
	}))
	return false, nil
}
