package jsonschema

// evaluateDependencies handles the pre-2019-09 keyword whose map values are
// either an array of required dependents or a conditional subschema. Draft
// 2019-09 split the two halves into dependentRequired and dependentSchemas.
//
// Reference: https://json-schema.org/draft-07/json-schema-validation#rfc.section.6.5.7
func evaluateDependencies(ctx *Context, value, instance *Value) (bool, error) {
	if value.Kind() != KindObject {
		return false, ctx.SchemaError("dependencies must be an object")
	}
	if instance.Kind() != KindObject {
		return true, nil
	}

	valid := true
	for _, key := range value.Keys() {
		dependent, _ := value.Get(key)
		if _, present := instance.Get(key); !present {
			continue
		}

		switch {
		case dependent.Kind() == KindArray:
			names, serr := stringArrayKeywordValue(ctx, dependent)
			if serr != nil {
				return false, serr
			}
			if !requireDependents(ctx, key, names, instance) {
				valid = false
			}
		case dependent.isSchema():
			schemaValid, err := ctx.Apply(dependent, []string{key}, instance, nil)
			if err != nil {
				return false, err
			}
			if !schemaValid {
				ctx.AddError(NewValidationError("dependencies", "dependency_schema_mismatch", "Value does not match the schema required when {property} is present", map[string]any{
					"property": key,
				}))
				valid = false
			}
		default:
			return false, ctx.schemaErrorAt([]string{key}, "dependency must be an array or a schema")
		}
		if !valid && ctx.failFastTripped {
			break
		}
	}
	return valid, nil
}

// evaluateDependentRequired is the array half of dependencies.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-validation#rfc.section.6.5.4
func evaluateDependentRequired(ctx *Context, value, instance *Value) (bool, error) {
	if value.Kind() != KindObject {
		return false, ctx.SchemaError("dependentRequired must be an object")
	}
	if instance.Kind() != KindObject {
		return true, nil
	}

	valid := true
	for _, key := range value.Keys() {
		dependent, _ := value.Get(key)
		names, serr := stringArrayKeywordValue(ctx, dependent)
		if serr != nil {
			return false, serr
		}
		if _, present := instance.Get(key); !present {
			continue
		}
		if !requireDependents(ctx, key, names, instance) {
			valid = false
			if ctx.failFastTripped {
				break
			}
		}
	}
	return valid, nil
}

// evaluateDependentSchemas is the schema half of dependencies.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-core#rfc.section.9.2.2.4
func evaluateDependentSchemas(ctx *Context, value, instance *Value) (bool, error) {
	if value.Kind() != KindObject {
		return false, ctx.SchemaError("dependentSchemas must be an object")
	}
	if instance.Kind() != KindObject {
		return true, nil
	}

	valid := true
	for _, key := range value.Keys() {
		dependent, _ := value.Get(key)
		if serr := ctx.CheckValidSchema(dependent, key); serr != nil {
			return false, serr
		}
		if _, present := instance.Get(key); !present {
			continue
		}
		schemaValid, err := ctx.Apply(dependent, []string{key}, instance, nil)
		if err != nil {
			return false, err
		}
		if !schemaValid {
			ctx.AddError(NewValidationError("dependentSchemas", "dependency_schema_mismatch", "Value does not match the schema required when {property} is present", map[string]any{
				"property": key,
			}))
			valid = false
			if ctx.failFastTripped {
				break
			}
		}
	}
	return valid, nil
}

func requireDependents(ctx *Context, key string, names []string, instance *Value) bool {
	missing := []string{}
	for _, name := range names {
		if _, ok := instance.Get(name); !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		ctx.AddError(NewValidationError("dependentRequired", "dependent_property_missing", "Properties {properties} are required when {property} is present", map[string]any{
			"properties": missing,
			"property":   key,
		}))
		return false
	}
	return true
}
