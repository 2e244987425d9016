package jsonschema

import "strconv"

// evaluateAllOf applies every subschema of a non-empty array; all must pass.
// Annotations of every branch are retained.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-core#rfc.section.9.2.1.1
func evaluateAllOf(ctx *Context, value, instance *Value) (bool, error) {
	if value.Kind() != KindArray || value.Len() == 0 {
		return false, ctx.SchemaError("allOf must be a non-empty array")
	}

	valid := true
	for i, sub := range value.Items() {
		if serr := ctx.CheckValidSchema(sub, strconv.Itoa(i)); serr != nil {
			return false, serr
		}
		branchValid, err := ctx.Apply(sub, []string{strconv.Itoa(i)}, instance, nil)
		if err != nil {
			return false, err
		}
		if !branchValid {
			valid = false
			if ctx.failFastTripped {
				break
			}
		}
	}
	if !valid {
		ctx.AddError(NewValidationError("allOf", "all_of_mismatch", "Value does not match all schemas"))
		return false, nil
	}
	return true, nil
}
