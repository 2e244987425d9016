package jsonschema

// Evaluation classes. Within one schema object, keywords run class by class;
// inside a class, the schema's insertion order decides.
const (
	classIdentity       = 1 // $id, $schema, anchors, $vocabulary, $defs
	classAssertion      = 2 // assertions and unordered applicators
	classPostApplicator = 3 // then/else, additional*, min/maxContains
	classUnevaluated    = 4 // unevaluatedItems, unevaluatedProperties
)

// applyFunc is one keyword reducer over (value, instance, context).
// A false return is a validation failure; a non-nil error is a fatal
// malformed-schema condition.
type applyFunc func(ctx *Context, value, instance *Value) (bool, error)

type keyword struct {
	name  string
	class int
	min   Specification // first draft carrying the keyword
	max   Specification // last draft carrying it; 0 means still current
	apply applyFunc
}

func (k *keyword) inSpecification(spec Specification) bool {
	if spec < k.min {
		return false
	}
	return k.max == 0 || spec <= k.max
}

// keywordRegistry is the process-wide immutable keyword table.
var keywordRegistry = map[string]*keyword{}

func register(name string, class int, min, max Specification, apply applyFunc) {
	keywordRegistry[name] = &keyword{name: name, class: class, min: min, max: max, apply: apply}
}

func init() {
	// Identity and structure.
	register("$id", classIdentity, Draft06, 0, evaluateID)
	register("$recursiveAnchor", classIdentity, Draft201909, 0, evaluateRecursiveAnchor)
	register("$schema", classIdentity, Draft06, 0, evaluateSchemaKeyword)
	register("$anchor", classIdentity, Draft201909, 0, evaluateAnchor)
	register("$vocabulary", classIdentity, Draft201909, 0, evaluateVocabulary)
	register("$defs", classIdentity, Draft201909, 0, evaluateDefs)
	register("definitions", classIdentity, Draft06, 0, evaluateDefs)
	register("$comment", classIdentity, Draft07, 0, evaluateComment)

	// Assertions.
	register("type", classAssertion, Draft06, 0, evaluateType)
	register("enum", classAssertion, Draft06, 0, evaluateEnum)
	register("const", classAssertion, Draft06, 0, evaluateConst)
	register("multipleOf", classAssertion, Draft06, 0, evaluateMultipleOf)
	register("maximum", classAssertion, Draft06, 0, evaluateMaximum)
	register("exclusiveMaximum", classAssertion, Draft06, 0, evaluateExclusiveMaximum)
	register("minimum", classAssertion, Draft06, 0, evaluateMinimum)
	register("exclusiveMinimum", classAssertion, Draft06, 0, evaluateExclusiveMinimum)
	register("maxLength", classAssertion, Draft06, 0, evaluateMaxLength)
	register("minLength", classAssertion, Draft06, 0, evaluateMinLength)
	register("pattern", classAssertion, Draft06, 0, evaluatePattern)
	register("maxItems", classAssertion, Draft06, 0, evaluateMaxItems)
	register("minItems", classAssertion, Draft06, 0, evaluateMinItems)
	register("uniqueItems", classAssertion, Draft06, 0, evaluateUniqueItems)
	register("maxProperties", classAssertion, Draft06, 0, evaluateMaxProperties)
	register("minProperties", classAssertion, Draft06, 0, evaluateMinProperties)
	register("required", classAssertion, Draft06, 0, evaluateRequired)
	register("dependentRequired", classAssertion, Draft201909, 0, evaluateDependentRequired)
	register("format", classAssertion, Draft06, 0, evaluateFormat)

	// Content vocabulary.
	register("contentEncoding", classAssertion, Draft07, 0, evaluateContentEncoding)
	register("contentMediaType", classAssertion, Draft07, 0, evaluateContentMediaType)
	register("contentSchema", classAssertion, Draft201909, 0, evaluateContentSchema)

	// Unordered applicators.
	register("allOf", classAssertion, Draft06, 0, evaluateAllOf)
	register("anyOf", classAssertion, Draft06, 0, evaluateAnyOf)
	register("oneOf", classAssertion, Draft06, 0, evaluateOneOf)
	register("not", classAssertion, Draft06, 0, evaluateNot)
	register("if", classAssertion, Draft07, 0, evaluateIf)
	register("properties", classAssertion, Draft06, 0, evaluateProperties)
	register("patternProperties", classAssertion, Draft06, 0, evaluatePatternProperties)
	register("items", classAssertion, Draft06, 0, evaluateItems)
	register("contains", classAssertion, Draft06, 0, evaluateContains)
	register("dependencies", classAssertion, Draft06, Draft07, evaluateDependencies)
	register("dependentSchemas", classAssertion, Draft201909, 0, evaluateDependentSchemas)
	register("propertyNames", classAssertion, Draft06, 0, evaluatePropertyNames)
	register("$ref", classAssertion, Draft06, 0, evaluateRef)
	register("$recursiveRef", classAssertion, Draft201909, 0, evaluateRecursiveRef)

	// Annotation-only metadata.
	register("title", classAssertion, Draft06, 0, annotateValue("title"))
	register("description", classAssertion, Draft06, 0, annotateValue("description"))
	register("default", classAssertion, Draft06, 0, annotateValue("default"))
	register("deprecated", classAssertion, Draft201909, 0, annotateValue("deprecated"))
	register("readOnly", classAssertion, Draft07, 0, annotateValue("readOnly"))
	register("writeOnly", classAssertion, Draft07, 0, annotateValue("writeOnly"))
	register("examples", classAssertion, Draft06, 0, annotateValue("examples"))

	// Post-applicators: consume annotations of class 2.
	register("then", classPostApplicator, Draft07, 0, evaluateThen)
	register("else", classPostApplicator, Draft07, 0, evaluateElse)
	register("additionalItems", classPostApplicator, Draft06, 0, evaluateAdditionalItems)
	register("additionalProperties", classPostApplicator, Draft06, 0, evaluateAdditionalProperties)
	register("maxContains", classPostApplicator, Draft201909, 0, evaluateMaxContains)
	register("minContains", classPostApplicator, Draft201909, 0, evaluateMinContains)

	// Unevaluated: consume annotations from every prior class.
	register("unevaluatedItems", classUnevaluated, Draft201909, 0, evaluateUnevaluatedItems)
	register("unevaluatedProperties", classUnevaluated, Draft201909, 0, evaluateUnevaluatedProperties)
}

// annotateValue builds the reducer shared by metadata keywords: store the
// keyword value as an annotation, never affect the verdict.
func annotateValue(name string) applyFunc {
	return func(ctx *Context, value, _ *Value) (bool, error) {
		ctx.AddAnnotation(name, value)
		return true, nil
	}
}
