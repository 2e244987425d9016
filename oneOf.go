package jsonschema

import "strconv"

// evaluateOneOf applies every subschema; exactly one must pass. When more
// than one passes, annotations collected under this keyword are discarded
// along with the verdict.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-core#rfc.section.9.2.1.3
func evaluateOneOf(ctx *Context, value, instance *Value) (bool, error) {
	if value.Kind() != KindArray || value.Len() == 0 {
		return false, ctx.SchemaError("oneOf must be a non-empty array")
	}

	validCount := 0
	for i, sub := range value.Items() {
		if serr := ctx.CheckValidSchema(sub, strconv.Itoa(i)); serr != nil {
			return false, serr
		}
		branchValid, err := probeApply(ctx, sub, []string{strconv.Itoa(i)}, instance, nil)
		if err != nil {
			return false, err
		}
		if branchValid {
			validCount++
		}
	}

	if validCount == 1 {
		return true, nil
	}
	if validCount > 1 {
		ctx.removeAnnotations(ctx.SchemaLocation())
		ctx.AddError(NewValidationError("oneOf", "one_of_too_many_matches", "Value matches {count} schemas but should match exactly one", map[string]any{
			"count": validCount,
		}))
		return false, nil
	}
	ctx.AddError(NewValidationError("oneOf", "one_of_no_match", "Value does not match any of the schemas"))
	return false, nil
}
