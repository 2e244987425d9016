package jsonschema

// evaluateUnevaluatedProperties applies the subschema to every instance
// member not annotated by properties, patternProperties,
// additionalProperties or another unevaluatedProperties anywhere under the
// enclosing schema object's dynamic location, including through $ref.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-core#rfc.section.9.3.2.4
func evaluateUnevaluatedProperties(ctx *Context, value, instance *Value) (bool, error) {
	if serr := ctx.CheckValidSchema(value); serr != nil {
		return false, serr
	}
	if instance.Kind() != KindObject {
		return true, nil
	}

	covered := annotatedPropertyKeys(ctx, false,
		"properties", "patternProperties", "additionalProperties", "unevaluatedProperties")

	matched := []string{}
	failed := []string{}
	for _, key := range instance.Keys() {
		if covered[key] {
			continue
		}
		member, _ := instance.Get(key)
		valid, err := ctx.Apply(value, nil, member, []string{key})
		if err != nil {
			return false, err
		}
		if valid {
			matched = append(matched, key)
		} else {
			failed = append(failed, key)
			if ctx.failFastTripped {
				break
			}
		}
	}

	if len(failed) > 0 {
		ctx.AddError(NewValidationError("unevaluatedProperties", "unevaluated_properties_mismatch", "Unevaluated properties {properties} do not match the schema", map[string]any{
			"properties": failed,
		}))
		return false, nil
	}
	ctx.AddAnnotation("unevaluatedProperties", matched)
	return true, nil
}
