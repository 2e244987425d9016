package jsonschema

// evaluateType checks the instance against the "type" keyword, a string or
// an array of strings. "integer" admits any number whose fractional part is
// zero after normalization, so 1.0 is an integer.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-validation#rfc.section.6.1.1
func evaluateType(ctx *Context, value, instance *Value) (bool, error) {
	var names []string
	switch value.Kind() {
	case KindString:
		names = []string{value.Str()}
	case KindArray:
		parsed, serr := stringArrayKeywordValue(ctx, value)
		if serr != nil {
			return false, serr
		}
		names = parsed
	default:
		return false, ctx.SchemaError("type must be a string or an array of strings")
	}

	for _, name := range names {
		ok, err := instanceHasType(ctx, name, instance)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}

	ctx.AddError(NewValidationError("type", "type_mismatch", "Value is {got} but should be {want}", map[string]any{
		"got":  instance.Kind().String(),
		"want": names,
	}))
	return false, nil
}

func instanceHasType(ctx *Context, name string, instance *Value) (bool, error) {
	switch name {
	case "null":
		return instance.Kind() == KindNull, nil
	case "boolean":
		return instance.Kind() == KindBoolean, nil
	case "number":
		return instance.Kind() == KindNumber, nil
	case "integer":
		return instance.IsInteger(), nil
	case "string":
		return instance.Kind() == KindString, nil
	case "array":
		return instance.Kind() == KindArray, nil
	case "object":
		return instance.Kind() == KindObject, nil
	}
	return false, ctx.SchemaError("unknown type name: %q", name)
}
