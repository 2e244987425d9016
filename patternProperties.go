package jsonschema

// evaluatePatternProperties applies each subschema to every instance member
// whose name matches the pattern. Matched keys are annotated on success.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-core#rfc.section.9.3.2.2
func evaluatePatternProperties(ctx *Context, value, instance *Value) (bool, error) {
	if value.Kind() != KindObject {
		return false, ctx.SchemaError("patternProperties must be an object")
	}
	if instance.Kind() != KindObject {
		return true, nil
	}

	matched := []string{}
	valid := true
	for _, pattern := range value.Keys() {
		sub, _ := value.Get(pattern)
		if serr := ctx.CheckValidSchema(sub, pattern); serr != nil {
			return false, serr
		}
		compiled, err := compilePattern(pattern)
		if err != nil {
			return false, ctx.schemaErrorAt([]string{pattern}, "invalid pattern: %v", err)
		}
		for _, key := range instance.Keys() {
			if !compiled.MatchString(key) {
				continue
			}
			member, _ := instance.Get(key)
			memberValid, err := ctx.Apply(sub, []string{pattern}, member, []string{key})
			if err != nil {
				return false, err
			}
			if memberValid {
				matched = append(matched, key)
			} else {
				valid = false
				if ctx.failFastTripped {
					return false, nil
				}
			}
		}
	}

	if !valid {
		ctx.AddError(NewValidationError("patternProperties", "pattern_properties_mismatch", "Properties matching a pattern do not match its schema"))
		return false, nil
	}
	ctx.AddAnnotation("patternProperties", matched)
	return true, nil
}
