package jsonschema

// evaluateMaxProperties checks an object instance's member count upper bound.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-validation#rfc.section.6.5.1
func evaluateMaxProperties(ctx *Context, value, instance *Value) (bool, error) {
	maxProps, serr := nonNegativeIntegerKeywordValue(ctx, value)
	if serr != nil {
		return false, serr
	}
	if instance.Kind() != KindObject {
		return true, nil
	}
	if instance.Len() > maxProps {
		ctx.AddError(NewValidationError("maxProperties", "too_many_properties", "Object should have at most {max_properties} properties", map[string]any{
			"max_properties": maxProps,
			"count":          instance.Len(),
		}))
		return false, nil
	}
	return true, nil
}
