package jsonschema

// evaluateIf applies the condition subschema and records the outcome as an
// annotation for the sibling then/else keywords. The condition itself never
// fails the enclosing schema; annotations of a failed condition are rolled
// back by the apply machinery.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-core#rfc.section.9.2.2.1
func evaluateIf(ctx *Context, value, instance *Value) (bool, error) {
	if serr := ctx.CheckValidSchema(value); serr != nil {
		return false, serr
	}
	valid, err := probeApply(ctx, value, nil, instance, nil)
	if err != nil {
		return false, err
	}
	ctx.AddAnnotation("if", valid)
	return true, nil
}

// evaluateThen applies when the sibling condition held.
func evaluateThen(ctx *Context, value, instance *Value) (bool, error) {
	return evaluateBranch(ctx, "then", true, value, instance)
}

// evaluateElse applies when the sibling condition did not hold.
func evaluateElse(ctx *Context, value, instance *Value) (bool, error) {
	return evaluateBranch(ctx, "else", false, value, instance)
}

func evaluateBranch(ctx *Context, name string, want bool, value, instance *Value) (bool, error) {
	if serr := ctx.CheckValidSchema(value); serr != nil {
		return false, serr
	}

	sibling := ctx.SchemaParentLocation().Append("if").String()
	annotation, ok := ctx.GetAnnotations("if")[sibling]
	if !ok {
		// Without an if there is no branch to take.
		return true, nil
	}
	condition, ok := annotation.Value.(bool)
	if !ok || condition != want {
		return true, nil
	}

	valid, err := ctx.Apply(value, nil, instance, nil)
	if err != nil {
		return false, err
	}
	if !valid {
		code := "if_then_mismatch"
		message := "Value meets the 'if' condition but does not match the 'then' schema"
		if name == "else" {
			code = "if_else_mismatch"
			message = "Value fails the 'if' condition and does not match the 'else' schema"
		}
		ctx.AddError(NewValidationError(name, code, message))
		return false, nil
	}
	return true, nil
}
