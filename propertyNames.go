package jsonschema

// evaluatePropertyNames applies the subschema to each member name of an
// object instance, treated as a string instance.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-core#rfc.section.9.3.2.5
func evaluatePropertyNames(ctx *Context, value, instance *Value) (bool, error) {
	if serr := ctx.CheckValidSchema(value); serr != nil {
		return false, serr
	}
	if instance.Kind() != KindObject {
		return true, nil
	}

	failed := []string{}
	for _, key := range instance.Keys() {
		valid, err := ctx.Apply(value, nil, NewString(key), []string{key})
		if err != nil {
			return false, err
		}
		if !valid {
			failed = append(failed, key)
			if ctx.failFastTripped {
				break
			}
		}
	}

	if len(failed) > 0 {
		ctx.AddError(NewValidationError("propertyNames", "property_names_mismatch", "Property names {properties} do not match the schema", map[string]any{
			"properties": failed,
		}))
		return false, nil
	}
	return true, nil
}
