package jsonschema

// evaluateID re-resolves the base URI during evaluation so sibling keywords
// and subschemas resolve references against the closest enclosing $id. The
// heavy lifting (registration, duplicate detection) happened in the ID scan.
func evaluateID(ctx *Context, value, _ *Value) (bool, error) {
	if value.Kind() != KindString {
		return false, ctx.SchemaError("$id must be a string")
	}
	ref, err := ParseURI(value.Str())
	if err != nil {
		return false, ctx.SchemaError("$id is not a valid URI-reference: %q", value.Str())
	}

	if ref.HasNonEmptyFragment() {
		if ctx.Specification() >= Draft201909 {
			return false, ctx.SchemaError("$id must not contain a fragment")
		}
		// Pre-2019-09 anchor form: no change of base.
		return true, nil
	}

	base := ctx.BaseURI().Resolve(ref).StripFragment().Normalize()
	ctx.state.baseURI = base
	ctx.state.absSchemaLocation = base
	return true, nil
}

// evaluateSchemaKeyword switches the specification in effect when $schema
// appears at the root of a resource.
func evaluateSchemaKeyword(ctx *Context, value, _ *Value) (bool, error) {
	if value.Kind() != KindString {
		return false, ctx.SchemaError("$schema must be a string")
	}
	if !ctx.state.isRoot {
		// $schema is only honored at a resource root.
		return true, nil
	}
	spec, ok := specificationFromURI(value.Str())
	if !ok {
		return false, ctx.SchemaError("unsupported $schema: %q", value.Str())
	}
	ctx.state.specification = spec
	return true, nil
}

// evaluateAnchor validates the anchor syntax; registration happened during
// the ID scan.
func evaluateAnchor(ctx *Context, value, _ *Value) (bool, error) {
	if value.Kind() != KindString {
		return false, ctx.SchemaError("$anchor must be a string")
	}
	if !isValidAnchor(value.Str()) {
		return false, ctx.SchemaError("invalid $anchor: %q", value.Str())
	}
	return true, nil
}

// evaluateRecursiveAnchor promotes the recursive base: the previous recursive
// base becomes what the current one was, and the current recursive base
// becomes the current base. The first anchor seen points both at the current
// base.
func evaluateRecursiveAnchor(ctx *Context, value, _ *Value) (bool, error) {
	if value.Kind() != KindBoolean {
		return false, ctx.SchemaError("$recursiveAnchor must be a boolean")
	}
	if !value.Bool() {
		return true, nil
	}
	base := ctx.BaseURI()
	if ctx.state.recursiveBaseURI == nil {
		ctx.state.prevRecursiveBaseURI = base
		ctx.state.recursiveBaseURI = base
	} else {
		ctx.state.prevRecursiveBaseURI = ctx.state.recursiveBaseURI
		ctx.state.recursiveBaseURI = base
	}
	return true, nil
}

// knownVocabularies are the 2019-09 vocabularies this validator implements.
var knownVocabularies = map[string]bool{
	"https://json-schema.org/draft/2019-09/vocab/core":       true,
	"https://json-schema.org/draft/2019-09/vocab/applicator": true,
	"https://json-schema.org/draft/2019-09/vocab/validation": true,
	"https://json-schema.org/draft/2019-09/vocab/meta-data":  true,
	"https://json-schema.org/draft/2019-09/vocab/format":     true,
	"https://json-schema.org/draft/2019-09/vocab/content":    true,
}

// evaluateVocabulary checks the URI → bool vocabulary map. A required
// vocabulary this validator does not know is malformed.
func evaluateVocabulary(ctx *Context, value, _ *Value) (bool, error) {
	if value.Kind() != KindObject {
		return false, ctx.SchemaError("$vocabulary must be an object")
	}
	for _, uri := range value.Keys() {
		required, _ := value.Get(uri)
		if required.Kind() != KindBoolean {
			return false, ctx.schemaErrorAt([]string{uri}, "$vocabulary values must be booleans")
		}
		if required.Bool() && !knownVocabularies[uri] {
			serr := ctx.SchemaError("unknown required vocabulary: %q", uri)
			serr.Err = ErrUnknownVocabulary
			return false, serr
		}
	}
	return true, nil
}

// evaluateDefs holds reusable subschemas. Nothing applies here; the value
// shape is still checked so a malformed $defs surfaces at its location.
func evaluateDefs(ctx *Context, value, _ *Value) (bool, error) {
	if value.Kind() != KindObject {
		return false, ctx.SchemaError("%s must be an object", ctx.state.currentKeyword)
	}
	for _, name := range value.Keys() {
		def, _ := value.Get(name)
		if serr := ctx.CheckValidSchema(def, name); serr != nil {
			return false, serr
		}
	}
	return true, nil
}

func evaluateComment(ctx *Context, value, _ *Value) (bool, error) {
	if value.Kind() != KindString {
		return false, ctx.SchemaError("$comment must be a string")
	}
	return true, nil
}
