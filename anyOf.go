package jsonschema

import "strconv"

// evaluateAnyOf applies every subschema of a non-empty array to collect
// annotations, passing if at least one branch passes. Failed branches
// contribute neither annotations nor errors.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-core#rfc.section.9.2.1.2
func evaluateAnyOf(ctx *Context, value, instance *Value) (bool, error) {
	if value.Kind() != KindArray || value.Len() == 0 {
		return false, ctx.SchemaError("anyOf must be a non-empty array")
	}

	anyValid := false
	for i, sub := range value.Items() {
		if serr := ctx.CheckValidSchema(sub, strconv.Itoa(i)); serr != nil {
			return false, serr
		}
		branchValid, err := probeApply(ctx, sub, []string{strconv.Itoa(i)}, instance, nil)
		if err != nil {
			return false, err
		}
		if branchValid {
			anyValid = true
		}
	}
	if !anyValid {
		ctx.AddError(NewValidationError("anyOf", "any_of_mismatch", "Value does not match any of the schemas"))
		return false, nil
	}
	return true, nil
}
