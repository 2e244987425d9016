package jsonschema

// evaluateMinProperties checks an object instance's member count lower bound.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-validation#rfc.section.6.5.2
func evaluateMinProperties(ctx *Context, value, instance *Value) (bool, error) {
	minProps, serr := nonNegativeIntegerKeywordValue(ctx, value)
	if serr != nil {
		return false, serr
	}
	if instance.Kind() != KindObject {
		return true, nil
	}
	if instance.Len() < minProps {
		ctx.AddError(NewValidationError("minProperties", "too_few_properties", "Object should have at least {min_properties} properties", map[string]any{
			"min_properties": minProps,
			"count":          instance.Len(),
		}))
		return false, nil
	}
	return true, nil
}
