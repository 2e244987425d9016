package jsonschema

import "strconv"

// evaluateItems handles both forms of "items". The schema form applies to
// every element and annotates true. The array form applies schema[i] to
// element[i] for the shorter of the two lengths and annotates the count
// applied; additionalItems picks up from there.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-core#rfc.section.9.3.1.1
func evaluateItems(ctx *Context, value, instance *Value) (bool, error) {
	if value.Kind() == KindArray {
		return evaluateItemsArray(ctx, value, instance)
	}
	if serr := ctx.CheckValidSchema(value); serr != nil {
		return false, serr
	}
	if instance.Kind() != KindArray {
		return true, nil
	}

	valid := true
	for i, item := range instance.Items() {
		itemValid, err := ctx.Apply(value, nil, item, []string{strconv.Itoa(i)})
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
		ctx.AddError(NewValidationError("items", "items_mismatch", "Array items do not match the schema"))
		return false, nil
	}
	ctx.AddAnnotation("items", true)
	return true, nil
}

// An empty array form is a lint finding, not a validation error.
func evaluateItemsArray(ctx *Context, value, instance *Value) (bool, error) {
	for i, sub := range value.Items() {
		if serr := ctx.CheckValidSchema(sub, strconv.Itoa(i)); serr != nil {
			return false, serr
		}
	}
	if instance.Kind() != KindArray {
		return true, nil
	}

	count := len(value.Items())
	if len(instance.Items()) < count {
		count = len(instance.Items())
	}

	valid := true
	for i := 0; i < count; i++ {
		token := strconv.Itoa(i)
		itemValid, err := ctx.Apply(value.Items()[i], []string{token}, instance.Items()[i], []string{token})
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
		ctx.AddError(NewValidationError("items", "items_mismatch", "Array items do not match their positional schemas"))
		return false, nil
	}
	ctx.AddAnnotation("items", count)
	return true, nil
}

// evaluateAdditionalItems applies the subschema to elements beyond the count
// annotated by an array-form sibling "items". Without an array-form items
// the keyword has nothing to do.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-core#rfc.section.9.3.1.2
func evaluateAdditionalItems(ctx *Context, value, instance *Value) (bool, error) {
	if serr := ctx.CheckValidSchema(value); serr != nil {
		return false, serr
	}
	items, ok := ctx.ParentObject().Get("items")
	if !ok || items.Kind() != KindArray {
		return true, nil
	}
	if instance.Kind() != KindArray {
		return true, nil
	}

	start, ok := siblingItemsCount(ctx)
	if !ok {
		return true, nil
	}

	applied := false
	valid := true
	for i := start; i < len(instance.Items()); i++ {
		applied = true
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
		ctx.AddError(NewValidationError("additionalItems", "additional_items_mismatch", "Array items beyond position {count} do not match the schema", map[string]any{
			"count": start,
		}))
		return false, nil
	}
	if applied {
		ctx.AddAnnotation("additionalItems", true)
	}
	return true, nil
}

// siblingItemsCount reads the element count annotated by the direct sibling
// "items" keyword.
func siblingItemsCount(ctx *Context) (int, bool) {
	sibling := ctx.SchemaParentLocation().Append("items").String()
	annotation, ok := ctx.GetAnnotations("items")[sibling]
	if !ok {
		return 0, false
	}
	count, ok := annotation.Value.(int)
	return count, ok
}
