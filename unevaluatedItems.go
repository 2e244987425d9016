package jsonschema

import "strconv"

// evaluateUnevaluatedItems applies the subschema to elements at indexes not
// covered by items, additionalItems or another unevaluatedItems anywhere
// under the enclosing schema object's dynamic location.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-core#rfc.section.9.3.1.3
func evaluateUnevaluatedItems(ctx *Context, value, instance *Value) (bool, error) {
	if serr := ctx.CheckValidSchema(value); serr != nil {
		return false, serr
	}
	if instance.Kind() != KindArray {
		return true, nil
	}

	start, all := coveredItemCount(ctx)
	if all || start >= len(instance.Items()) {
		return true, nil
	}

	valid := true
	for i := start; i < len(instance.Items()); i++ {
		itemValid, err := ctx.Apply(value, nil, instance.Items()[i], []string{strconv.Itoa(i)})
		if err != nil {
			return false, err
		}
		if !itemValid {
			valid = false
			if ctx.failFastTripped {
				break
			}
		}
	}
	if !valid {
		ctx.AddError(NewValidationError("unevaluatedItems", "unevaluated_items_mismatch", "Unevaluated array items do not match the schema"))
		return false, nil
	}
	ctx.AddAnnotation("unevaluatedItems", true)
	return true, nil
}

// coveredItemCount folds the item coverage annotations under the enclosing
// schema object: an integer covers a prefix, true covers everything.
func coveredItemCount(ctx *Context) (int, bool) {
	parent := ctx.SchemaParentLocation()
	covered := 0
	for _, name := range []string{"items", "additionalItems", "unevaluatedItems"} {
		for location, annotation := range ctx.GetAnnotations(name) {
			ptr, err := ParsePointer(location)
			if err != nil || !ptr.HasPrefix(parent) {
				continue
			}
			switch v := annotation.Value.(type) {
			case bool:
				if v {
					return 0, true
				}
			case int:
				if v > covered {
					covered = v
				}
			}
		}
	}
	return covered, false
}
