package jsonschema

import (
	"net/url"
	"strings"
)

// evaluateRef dereferences the target URI and applies it to the instance.
// Pre-2019-09, a sibling $ref suppressed every other keyword before this
// reducer ran (see orderedKeywords).
func evaluateRef(ctx *Context, value, instance *Value) (bool, error) {
	if value.Kind() != KindString {
		return false, ctx.SchemaError("$ref must be a string")
	}
	ref, err := ParseURI(value.Str())
	if err != nil {
		return false, ctx.SchemaError("$ref is not a valid URI-reference: %q", value.Str())
	}
	target := ctx.BaseURI().Resolve(ref)
	return applyReference(ctx, "$ref", target, instance)
}

// evaluateRecursiveRef resolves against the previous recursive base when one
// is in scope; otherwise it behaves exactly like $ref.
func evaluateRecursiveRef(ctx *Context, value, instance *Value) (bool, error) {
	if value.Kind() != KindString {
		return false, ctx.SchemaError("$recursiveRef must be a string")
	}
	ref, err := ParseURI(value.Str())
	if err != nil {
		return false, ctx.SchemaError("$recursiveRef is not a valid URI-reference: %q", value.Str())
	}

	base := ctx.BaseURI()
	if ctx.state.prevRecursiveBaseURI != nil {
		base = ctx.state.prevRecursiveBaseURI
	}
	target := base.Resolve(ref)
	return applyReference(ctx, "$recursiveRef", target, instance)
}

// applyReference locates the target schema node, moves the context into the
// target's resource, applies it, and restores the context. The dynamic
// keyword location keeps running through the $ref keyword; the static
// location jumps to the target URI.
func applyReference(ctx *Context, keywordName string, target *URI, instance *Value) (bool, error) {
	fragment := target.RawFragment()

	var node *Value
	var resource *URI

	if fragment == "" || strings.HasPrefix(fragment, "/") {
		// Pointer form: locate the resource root, then follow the pointer.
		resource = target.StripFragment().Normalize()
		root, ok := ctx.idIndex[resource.String()]
		if !ok {
			var err error
			root, err = loadKnownResource(ctx, resource)
			if err != nil {
				return false, ctx.SchemaError("cannot resolve %s target %q", keywordName, target.String())
			}
		}
		ptr, err := parseFragmentPointer(fragment)
		if err != nil {
			return false, ctx.SchemaError("%s fragment is not a valid pointer: %q", keywordName, fragment)
		}
		node = Follow(root, ptr)
		if node == nil {
			return false, ctx.SchemaError("%s target not found: %q", keywordName, target.String())
		}
		if serr := ctx.CheckValidSchema(node); serr != nil {
			return false, serr
		}

		saved := ctx.state
		ctx.state.baseURI = baseForPointerTarget(root, ptr, resource, ctx.Specification())
		ctx.state.absKeywordLocation = appendFragmentTokens(resource, ptr...)
		switchSpecificationForResource(ctx, root)

		valid, err := ctx.Apply(node, nil, instance, nil)
		ctx.state = saved
		if err != nil {
			return false, err
		}
		if !valid {
			ctx.AddError(NewValidationError(keywordName, "ref_mismatch", "Value does not match the reference schema"))
		}
		return valid, nil
	}

	// Anchor form: the full URI is the registered identity.
	saved := ctx.state
	node, ok := ctx.findAndSetRoot(target)
	if !ok {
		ctx.state = saved
		return false, ctx.SchemaError("cannot resolve %s target %q", keywordName, target.String())
	}
	resource = target.StripFragment().Normalize()
	if root, ok := ctx.idIndex[resource.String()]; ok {
		switchSpecificationForResource(ctx, root)
	}

	valid, err := ctx.Apply(node, nil, instance, nil)
	ctx.state = saved
	if err != nil {
		return false, err
	}
	if !valid {
		ctx.AddError(NewValidationError(keywordName, "ref_mismatch", "Value does not match the reference schema"))
	}
	return valid, nil
}

// parseFragmentPointer percent-decodes a fragment and parses it as a JSON
// Pointer.
func parseFragmentPointer(fragment string) (Pointer, error) {
	decoded, err := url.PathUnescape(fragment)
	if err != nil {
		return nil, err
	}
	return ParsePointer(decoded)
}

// baseForPointerTarget walks from the resource root toward the target node,
// picking up any $id that changes the base on the way. A pointer may lead
// into an embedded resource whose base differs from the document's.
func baseForPointerTarget(root *Value, ptr Pointer, resource *URI, spec Specification) *URI {
	base := resource
	node := root
	for i := 0; i <= len(ptr); i++ {
		if node != nil && node.Kind() == KindObject && isResourceRoot(node, spec) {
			id, _ := node.Get("$id")
			if ref, err := ParseURI(id.Str()); err == nil {
				base = base.Resolve(ref).StripFragment().Normalize()
			}
		}
		if i == len(ptr) {
			break
		}
		node = Follow(node, Pointer{ptr[i]})
	}
	return base
}

// switchSpecificationForResource honors the $schema of a resource root when
// a reference crosses into another document.
func switchSpecificationForResource(ctx *Context, root *Value) {
	if root.Kind() != KindObject {
		return
	}
	schemaValue, ok := root.Get("$schema")
	if !ok || schemaValue.Kind() != KindString {
		return
	}
	if spec, ok := specificationFromURI(schemaValue.Str()); ok {
		ctx.state.specification = spec
	}
}
