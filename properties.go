package jsonschema

// evaluateProperties applies each named subschema to the matching instance
// member. On success the set of matched keys is annotated; sibling
// additionalProperties and the unevaluated keywords consume that set.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-core#rfc.section.9.3.2.1
func evaluateProperties(ctx *Context, value, instance *Value) (bool, error) {
	if value.Kind() != KindObject {
		return false, ctx.SchemaError("properties must be an object")
	}
	if instance.Kind() != KindObject {
		return true, nil
	}

	matched := []string{}
	failed := []string{}
	for _, key := range value.Keys() {
		sub, _ := value.Get(key)
		if serr := ctx.CheckValidSchema(sub, key); serr != nil {
			return false, serr
		}
		member, ok := instance.Get(key)
		if !ok {
			continue
		}
		valid, err := ctx.Apply(sub, []string{key}, member, []string{key})
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
		ctx.AddError(NewValidationError("properties", "properties_mismatch", "Properties {properties} do not match their schemas", map[string]any{
			"properties": failed,
		}))
		return false, nil
	}
	ctx.AddAnnotation("properties", matched)
	return true, nil
}

// annotatedPropertyKeys collects the instance keys annotated by the named
// keywords at the current instance location. With siblingOnly, only
// annotations contributed by direct siblings of the current keyword count;
// otherwise any annotation whose dynamic location lies under the enclosing
// schema object does.
func annotatedPropertyKeys(ctx *Context, siblingOnly bool, names ...string) map[string]bool {
	parent := ctx.SchemaParentLocation()
	covered := make(map[string]bool)
	for _, name := range names {
		sibling := parent.Append(name).String()
		for location, annotation := range ctx.GetAnnotations(name) {
			if siblingOnly {
				if location != sibling {
					continue
				}
			} else {
				ptr, err := ParsePointer(location)
				if err != nil || !ptr.HasPrefix(parent) {
					continue
				}
			}
			if keys, ok := annotation.Value.([]string); ok {
				for _, key := range keys {
					covered[key] = true
				}
			}
		}
	}
	return covered
}
