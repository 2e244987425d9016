package jsonschema

import "sort"

// contextState is the mutable portion of a Context. It is snapshotted on
// entering a subschema and restored on unwind; the annotation store and ID
// map stay shared.
type contextState struct {
	baseURI               *URI
	specification         Specification
	recursiveBaseURI      *URI
	prevRecursiveBaseURI  *URI
	schemaObject          *Value
	isRoot                bool
	keywordLocation       Pointer // dynamic: follows $ref indirections
	keywordParentLocation Pointer // dynamic location of the enclosing schema object
	absSchemaLocation     *URI    // static location of the enclosing schema object; never traverses $ref
	absKeywordLocation    *URI    // static location of the keyword being applied
	instanceLocation      Pointer
	collectSubAnnotations bool
	currentKeyword        string
}

// Context threads the per-evaluation state through every keyword apply. It
// lives for exactly one Validate call.
type Context struct {
	rootSchema       *Value
	ids              map[Id]*Value
	idIndex          map[string]*Value
	options          *Options
	annotations      AnnotationMap
	errors           ErrorMap
	collectErrors    bool
	validatedSchemas map[string]bool
	failFastTripped  bool

	state contextState
}

func newContext(root *Value, ids map[Id]*Value, baseURI *URI, spec Specification, options *Options, errors ErrorMap) *Context {
	return &Context{
		rootSchema:       root,
		ids:              ids,
		idIndex:          buildIDIndex(ids),
		options:          options,
		annotations:      make(AnnotationMap),
		errors:           errors,
		collectErrors:    errors != nil,
		validatedSchemas: make(map[string]bool),
		state: contextState{
			baseURI:               baseURI,
			specification:         spec,
			schemaObject:          root,
			isRoot:                true,
			absSchemaLocation:     baseURI,
			absKeywordLocation:    baseURI,
			collectSubAnnotations: true,
		},
	}
}

// Specification returns the draft currently in effect.
func (ctx *Context) Specification() Specification { return ctx.state.specification }

// BaseURI returns the URI of the closest enclosing $id.
func (ctx *Context) BaseURI() *URI { return ctx.state.baseURI }

// RecursiveBaseURI returns the innermost $recursiveAnchor base in scope.
func (ctx *Context) RecursiveBaseURI() *URI { return ctx.state.recursiveBaseURI }

// ParentObject returns the schema object enclosing the keyword being applied.
func (ctx *Context) ParentObject() *Value { return ctx.state.schemaObject }

// SchemaLocation returns the dynamic location of the keyword being applied.
func (ctx *Context) SchemaLocation() Pointer { return ctx.state.keywordLocation }

// SchemaParentLocation returns the dynamic location of the enclosing schema
// object.
func (ctx *Context) SchemaParentLocation() Pointer { return ctx.state.keywordParentLocation }

// InstanceLocation returns the JSON Pointer into the instance under test.
func (ctx *Context) InstanceLocation() Pointer { return ctx.state.instanceLocation }

// AbsoluteKeywordLocation returns the static URI form of the current keyword
// location.
func (ctx *Context) AbsoluteKeywordLocation() *URI {
	return ctx.state.absKeywordLocation
}

// IsOption reports an option's effective boolean value.
func (ctx *Context) IsOption(option Option) bool { return ctx.options.Bool(option) }

// IsFailFast reports whether the evaluation stops at the first error.
func (ctx *Context) IsFailFast() bool { return ctx.options.Bool(OptionFailFast) }

// SetCollectSubAnnotations toggles annotation collection for subschemas
// applied from the current keyword. The previous value is restored when the
// enclosing apply unwinds.
func (ctx *Context) SetCollectSubAnnotations(collect bool) {
	ctx.state.collectSubAnnotations = collect
}

// SchemaError builds a fatal malformed-schema error at the current keyword.
// schemaErrorAt extends the location by a relative path.
func (ctx *Context) SchemaError(format string, args ...any) *SchemaError {
	return newSchemaError(ctx.AbsoluteKeywordLocation().String(), format, args...)
}

func (ctx *Context) schemaErrorAt(relPath []string, format string, args ...any) *SchemaError {
	at := appendFragmentTokens(ctx.AbsoluteKeywordLocation(), relPath...)
	return newSchemaError(at.String(), format, args...)
}

// CheckValidSchema verifies that value can stand as a subschema.
func (ctx *Context) CheckValidSchema(value *Value, relPath ...string) *SchemaError {
	if value.isSchema() {
		return nil
	}
	return ctx.schemaErrorAt(relPath, "subschema must be an object or a boolean")
}

// AddError records a validation failure at the current keyword and instance
// locations. It never aborts evaluation by itself; FAIL_FAST short-circuits
// at the enclosing apply.
func (ctx *Context) AddError(err *ValidationError) {
	if ctx.collectErrors {
		schemaLoc := ctx.state.keywordLocation.String()
		instanceLoc := ctx.state.instanceLocation.String()
		if ctx.options.Bool(OptionErrorsKeyedByInstance) {
			ctx.errors.add(instanceLoc, schemaLoc, err.Error())
		} else {
			ctx.errors.add(schemaLoc, instanceLoc, err.Error())
		}
	}
	if ctx.IsFailFast() {
		ctx.failFastTripped = true
	}
}

// AddAnnotation stores an annotation for the current keyword at the current
// instance location. Annotations stored while sub-annotation collection is
// off stay visible to sibling keywords but are withheld from the report.
func (ctx *Context) AddAnnotation(name string, value any) {
	ctx.annotations.add(Annotation{
		Name:                    name,
		KeywordLocation:         ctx.state.keywordLocation.String(),
		AbsoluteKeywordLocation: ctx.AbsoluteKeywordLocation().String(),
		InstanceLocation:        ctx.state.instanceLocation.String(),
		Value:                   value,
		suppressed:              !ctx.state.collectSubAnnotations,
	})
}

// probeApply applies a subschema without contributing to the error report
// or tripping fail-fast. Used where a failing application is an expected
// outcome: contains counting, anyOf/oneOf branches, not, if.
func probeApply(ctx *Context, schema *Value, schemaTokens []string, instance *Value, instanceTokens []string) (bool, error) {
	savedCollect := ctx.collectErrors
	savedTripped := ctx.failFastTripped
	ctx.collectErrors = false
	valid, err := ctx.Apply(schema, schemaTokens, instance, instanceTokens)
	ctx.collectErrors = savedCollect
	ctx.failFastTripped = savedTripped
	return valid, err
}

// GetAnnotations returns the annotations with the given name at the current
// instance location, keyed by dynamic keyword location. Callers filter by
// prefix against SchemaParentLocation to scope to sibling applicators.
func (ctx *Context) GetAnnotations(name string) map[string]Annotation {
	byName, ok := ctx.annotations[ctx.state.instanceLocation.String()]
	if !ok {
		return nil
	}
	return byName[name]
}

// removeAnnotations drops every annotation whose keyword location starts with
// keywordPrefix and whose instance location starts with the current instance
// location. Called when a keyword or schema object fails.
func (ctx *Context) removeAnnotations(keywordPrefix Pointer) {
	if ctx.options.Bool(OptionCollectAnnotationsForFailed) {
		return
	}
	instancePrefix := ctx.state.instanceLocation
	for instanceLoc, byName := range ctx.annotations {
		loc, err := ParsePointer(instanceLoc)
		if err != nil || !loc.HasPrefix(instancePrefix) {
			continue
		}
		for name, byLocation := range byName {
			for keywordLoc := range byLocation {
				kloc, err := ParsePointer(keywordLoc)
				if err == nil && kloc.HasPrefix(keywordPrefix) {
					delete(byLocation, keywordLoc)
				}
			}
			if len(byLocation) == 0 {
				delete(byName, name)
			}
		}
		if len(byName) == 0 {
			delete(ctx.annotations, instanceLoc)
		}
	}
}

// findAndSetRoot moves the context into the resource identified by uri:
// base URI, static location and root flag all move together. Reports whether
// the resource is known.
func (ctx *Context) findAndSetRoot(uri *URI) (*Value, bool) {
	node, ok := ctx.idIndex[uri.Normalize().String()]
	if !ok {
		return nil, false
	}
	ctx.state.baseURI = uri.StripFragment().Normalize()
	ctx.state.absKeywordLocation = uri.Normalize()
	ctx.state.isRoot = true
	return node, true
}

// Apply evaluates a subschema against an instance node. It is the single
// point of recursion of the engine. schemaTokens extend the dynamic keyword
// location, instanceTokens the instance location.
func (ctx *Context) Apply(schema *Value, schemaTokens []string, instance *Value, instanceTokens []string) (bool, error) {
	if schema == nil {
		return false, ctx.SchemaError("subschema is missing")
	}

	// Boolean schemas short-circuit.
	if schema.Kind() == KindBoolean {
		if schema.Bool() {
			return true, nil
		}
		saved := ctx.state
		ctx.state.keywordLocation = ctx.state.keywordLocation.Append(schemaTokens...)
		ctx.state.instanceLocation = ctx.state.instanceLocation.Append(instanceTokens...)
		ctx.AddError(NewValidationError("schema", "false_schema", "Value disallowed by schema"))
		ctx.state = saved
		return false, nil
	}

	if schema.Kind() != KindObject {
		return false, ctx.schemaErrorAt(schemaTokens, "subschema must be an object or a boolean")
	}

	// The empty schema object accepts everything.
	if schema.Len() == 0 {
		return true, nil
	}

	saved := ctx.state
	defer func() { ctx.state = saved }()

	ctx.state.keywordParentLocation = ctx.state.keywordLocation.Append(schemaTokens...)
	ctx.state.keywordLocation = ctx.state.keywordParentLocation
	ctx.state.absSchemaLocation = appendFragmentTokens(ctx.state.absKeywordLocation, schemaTokens...)
	ctx.state.instanceLocation = ctx.state.instanceLocation.Append(instanceTokens...)
	ctx.state.schemaObject = schema
	ctx.state.isRoot = schema == ctx.rootSchema || isResourceRoot(schema, ctx.state.specification)

	objectLocation := ctx.state.keywordParentLocation

	ordered := orderedKeywords(schema, ctx.state.specification)

	valid := true
	for _, name := range ordered {
		value, _ := schema.Get(name)
		kw := keywordRegistry[name]

		ctx.state.currentKeyword = name
		ctx.state.keywordLocation = objectLocation.Append(name)
		ctx.state.absKeywordLocation = appendFragmentTokens(ctx.state.absSchemaLocation, name)

		keywordValid, err := kw.apply(ctx, value, instance)
		if err != nil {
			return false, err
		}
		if !keywordValid {
			valid = false
			ctx.removeAnnotations(objectLocation.Append(name))
			if ctx.failFastTripped {
				break
			}
		}
	}

	if !valid {
		ctx.removeAnnotations(objectLocation)
	}
	return valid, nil
}

// isResourceRoot reports whether the schema object starts a new resource.
func isResourceRoot(schema *Value, spec Specification) bool {
	id, ok := schema.Get("$id")
	if !ok || id.Kind() != KindString {
		return false
	}
	if spec >= Draft201909 {
		return true
	}
	u, err := ParseURI(id.Str())
	return err == nil && !u.HasNonEmptyFragment()
}

// orderedKeywords returns the schema object's keys that are keywords of the
// draft in effect, ordered by evaluation class then insertion order. A
// pre-2019-09 sibling $ref suppresses every other keyword.
func orderedKeywords(schema *Value, spec Specification) []string {
	if spec < Draft201909 {
		if _, ok := schema.Get("$ref"); ok {
			return []string{"$ref"}
		}
	}

	type entry struct {
		name  string
		class int
		index int
	}
	entries := make([]entry, 0, schema.Len())
	for i, key := range schema.Keys() {
		kw, ok := keywordRegistry[key]
		if !ok || !kw.inSpecification(spec) {
			continue
		}
		entries = append(entries, entry{name: key, class: kw.class, index: i})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].class != entries[j].class {
			return entries[i].class < entries[j].class
		}
		return entries[i].index < entries[j].index
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}
