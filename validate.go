package jsonschema

// Validate checks the instance against the schema and returns the verdict.
// baseURI must be absolute and carry no non-empty fragment. A returned error
// means the schema or the base URI is malformed, never that the instance
// failed.
func Validate(schema, instance *Value, baseURI string, opts ...*Options) (bool, error) {
	var options *Options
	if len(opts) > 0 {
		options = opts[0]
	}
	return ValidateDetailed(schema, instance, baseURI, options, nil, nil, nil)
}

// ValidateDetailed is Validate with optional collection of the ID map,
// annotations and errors. Each non-nil out map opts into that category; nil
// disables its collection.
func ValidateDetailed(schema, instance *Value, baseURI string, options *Options,
	idsOut map[Id]*Value, annotationsOut AnnotationMap, errorsOut ErrorMap) (bool, error) {

	if !schema.isSchema() {
		return false, newSchemaError(baseURI, "schema must be an object or a boolean")
	}

	spec := options.DefaultSpecification()
	if schema.Kind() == KindObject {
		if schemaValue, ok := schema.Get("$schema"); ok {
			if schemaValue.Kind() != KindString {
				return false, newSchemaError(baseURI, "$schema must be a string")
			}
			declared, ok := specificationFromURI(schemaValue.Str())
			if !ok {
				return false, newSchemaError(baseURI, "unsupported $schema: %q", schemaValue.Str())
			}
			spec = declared
		}
		if err := checkRootID(schema, baseURI, options); err != nil {
			return false, err
		}
	}

	ids, err := ScanIDs(baseURI, schema, spec)
	if err != nil {
		return false, err
	}
	for id, node := range ids {
		if idsOut != nil {
			idsOut[id] = node
		}
	}

	base, err := ParseURI(baseURI)
	if err != nil {
		return false, err
	}

	ctx := newContext(schema, ids, base.Normalize(), spec, options, errorsOut)
	valid, err := ctx.Apply(schema, nil, instance, nil)
	if err != nil {
		return false, err
	}

	if annotationsOut != nil {
		for _, byName := range ctx.annotations {
			for _, byLocation := range byName {
				for _, annotation := range byLocation {
					if !annotation.suppressed {
						annotationsOut.add(annotation)
					}
				}
			}
		}
	}
	return valid, nil
}

// checkRootID enforces the AUTO_RESOLVE option: with auto-resolution off, a
// relative root $id has no base to resolve against and is malformed.
func checkRootID(schema *Value, baseURI string, options *Options) error {
	if options.Bool(OptionAutoResolve) {
		return nil
	}
	idValue, ok := schema.Get("$id")
	if !ok || idValue.Kind() != KindString {
		return nil
	}
	id, err := ParseURI(idValue.Str())
	if err != nil {
		return newSchemaError(baseURI, "$id is not a valid URI-reference: %q", idValue.Str())
	}
	if !id.IsAbsolute() {
		return newSchemaError(baseURI, "relative $id %q with automatic resolution disabled", idValue.Str())
	}
	return nil
}
