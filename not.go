package jsonschema

// evaluateNot inverts the subschema's verdict. It never contributes
// annotations.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-core#rfc.section.9.2.1.4
func evaluateNot(ctx *Context, value, instance *Value) (bool, error) {
	if serr := ctx.CheckValidSchema(value); serr != nil {
		return false, serr
	}

	savedCollect := ctx.state.collectSubAnnotations
	ctx.SetCollectSubAnnotations(false)
	valid, err := probeApply(ctx, value, nil, instance, nil)
	ctx.SetCollectSubAnnotations(savedCollect)
	if err != nil {
		return false, err
	}

	if valid {
		ctx.AddError(NewValidationError("not", "not_mismatch", "Value matches the schema it should not match"))
		return false, nil
	}
	return true, nil
}
