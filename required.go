package jsonschema

// evaluateRequired checks that every listed member name exists on an object
// instance.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-validation#rfc.section.6.5.3
func evaluateRequired(ctx *Context, value, instance *Value) (bool, error) {
	names, serr := stringArrayKeywordValue(ctx, value)
	if serr != nil {
		return false, serr
	}
	if instance.Kind() != KindObject {
		return true, nil
	}

	missing := []string{}
	for _, name := range names {
		if _, ok := instance.Get(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		ctx.AddError(NewValidationError("required", "required_property_missing", "Required properties {properties} are missing", map[string]any{
			"properties": missing,
		}))
		return false, nil
	}
	return true, nil
}
