package jsonschema

import "strconv"

// evaluateContains counts the array elements matching the subschema and
// annotates the count. The lower bound comes from a sibling minContains
// (default 1); minContains of 0 passes even with no match. The upper bound
// is enforced by the sibling maxContains once this annotation exists.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-core#rfc.section.9.3.1.4
func evaluateContains(ctx *Context, value, instance *Value) (bool, error) {
	if serr := ctx.CheckValidSchema(value); serr != nil {
		return false, serr
	}
	if instance.Kind() != KindArray {
		return true, nil
	}

	count := 0
	for i, item := range instance.Items() {
		matched, err := probeApply(ctx, value, nil, item, []string{strconv.Itoa(i)})
		if err != nil {
			return false, err
		}
		if matched {
			count++
		}
	}
	ctx.AddAnnotation("contains", count)

	minContains := 1
	if sibling, ok := ctx.ParentObject().Get("minContains"); ok && ctx.Specification() >= Draft201909 {
		if sibling.Kind() == KindNumber && sibling.IsInteger() && sibling.Number().Sign() >= 0 {
			minContains = int(sibling.Number().Num().Int64())
		}
	}

	if count < minContains {
		ctx.AddError(NewValidationError("contains", "contains_too_few_items", "Array should contain at least {min_contains} matching items", map[string]any{
			"min_contains": minContains,
			"count":        count,
		}))
		return false, nil
	}
	return true, nil
}

// evaluateMinContains validates its own shape; the lower bound itself is
// enforced by the sibling contains so the failure is reported once.
func evaluateMinContains(ctx *Context, value, _ *Value) (bool, error) {
	if _, serr := nonNegativeIntegerKeywordValue(ctx, value); serr != nil {
		return false, serr
	}
	return true, nil
}

// evaluateMaxContains bounds the count annotated by the sibling contains.
// Without that annotation there is nothing to bound.
func evaluateMaxContains(ctx *Context, value, _ *Value) (bool, error) {
	maxContains, serr := nonNegativeIntegerKeywordValue(ctx, value)
	if serr != nil {
		return false, serr
	}

	sibling := ctx.SchemaParentLocation().Append("contains").String()
	annotation, ok := ctx.GetAnnotations("contains")[sibling]
	if !ok {
		return true, nil
	}
	count, ok := annotation.Value.(int)
	if !ok {
		return true, nil
	}

	if count > maxContains {
		ctx.AddError(NewValidationError("maxContains", "contains_too_many_items", "Array should contain at most {max_contains} matching items", map[string]any{
			"max_contains": maxContains,
			"count":        count,
		}))
		return false, nil
	}
	return true, nil
}
