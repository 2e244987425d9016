package jsonschema

import "strconv"

// Keyword is a schema builder option that sets one keyword on a schema
// object under construction.
type Keyword func(*Value)

// buildSchema assembles a schema object from keyword options.
func buildSchema(keywords ...Keyword) *Value {
	schema := NewObject()
	for _, kw := range keywords {
		kw(schema)
	}
	return schema
}

// Object builds {"type":"object", ...}.
func Object(keywords ...Keyword) *Value {
	return buildSchema(append([]Keyword{Type("object")}, keywords...)...)
}

// String builds {"type":"string", ...}.
func String(keywords ...Keyword) *Value {
	return buildSchema(append([]Keyword{Type("string")}, keywords...)...)
}

// Integer builds {"type":"integer", ...}.
func Integer(keywords ...Keyword) *Value {
	return buildSchema(append([]Keyword{Type("integer")}, keywords...)...)
}

// Number builds {"type":"number", ...}.
func Number(keywords ...Keyword) *Value {
	return buildSchema(append([]Keyword{Type("number")}, keywords...)...)
}

// Boolean builds {"type":"boolean"}.
func Boolean() *Value {
	return buildSchema(Type("boolean"))
}

// Array builds {"type":"array", ...}.
func Array(keywords ...Keyword) *Value {
	return buildSchema(append([]Keyword{Type("array")}, keywords...)...)
}

// Any builds a schema object without a type constraint.
func Any(keywords ...Keyword) *Value {
	return buildSchema(keywords...)
}

// ===============================
// Generic keywords
// ===============================

// Type sets the type keyword
func Type(names ...string) Keyword {
	return func(s *Value) {
		if len(names) == 1 {
			s.Set("type", NewString(names[0]))
			return
		}
		items := make([]*Value, 0, len(names))
		for _, name := range names {
			items = append(items, NewString(name))
		}
		s.Set("type", NewArray(items...))
	}
}

// Enum sets the enum keyword
func Enum(values ...*Value) Keyword {
	return func(s *Value) {
		s.Set("enum", NewArray(values...))
	}
}

// Const sets the const keyword
func Const(value *Value) Keyword {
	return func(s *Value) {
		s.Set("const", value)
	}
}

// ===============================
// String keywords
// ===============================

// MinLen sets the minLength keyword
func MinLen(min int) Keyword {
	return func(s *Value) {
		s.Set("minLength", NewNumberFromLexeme(strconv.Itoa(min)))
	}
}

// MaxLen sets the maxLength keyword
func MaxLen(max int) Keyword {
	return func(s *Value) {
		s.Set("maxLength", NewNumberFromLexeme(strconv.Itoa(max)))
	}
}

// Pattern sets the pattern keyword
func Pattern(pattern string) Keyword {
	return func(s *Value) {
		s.Set("pattern", NewString(pattern))
	}
}

// Format sets the format keyword
func Format(format string) Keyword {
	return func(s *Value) {
		s.Set("format", NewString(format))
	}
}

// ===============================
// Number keywords
// ===============================

// Min sets the minimum keyword
func Min(min string) Keyword {
	return func(s *Value) {
		s.Set("minimum", NewNumberFromLexeme(min))
	}
}

// Max sets the maximum keyword
func Max(max string) Keyword {
	return func(s *Value) {
		s.Set("maximum", NewNumberFromLexeme(max))
	}
}

// ExclusiveMin sets the exclusiveMinimum keyword
func ExclusiveMin(min string) Keyword {
	return func(s *Value) {
		s.Set("exclusiveMinimum", NewNumberFromLexeme(min))
	}
}

// ExclusiveMax sets the exclusiveMaximum keyword
func ExclusiveMax(max string) Keyword {
	return func(s *Value) {
		s.Set("exclusiveMaximum", NewNumberFromLexeme(max))
	}
}

// MultipleOf sets the multipleOf keyword
func MultipleOf(multiple string) Keyword {
	return func(s *Value) {
		s.Set("multipleOf", NewNumberFromLexeme(multiple))
	}
}

// ===============================
// Array keywords
// ===============================

// Items sets the schema form of the items keyword
func Items(itemSchema *Value) Keyword {
	return func(s *Value) {
		s.Set("items", itemSchema)
	}
}

// TupleItems sets the array form of the items keyword
func TupleItems(itemSchemas ...*Value) Keyword {
	return func(s *Value) {
		s.Set("items", NewArray(itemSchemas...))
	}
}

// MinItems sets the minItems keyword
func MinItems(min int) Keyword {
	return func(s *Value) {
		s.Set("minItems", NewNumberFromLexeme(strconv.Itoa(min)))
	}
}

// MaxItems sets the maxItems keyword
func MaxItems(max int) Keyword {
	return func(s *Value) {
		s.Set("maxItems", NewNumberFromLexeme(strconv.Itoa(max)))
	}
}

// UniqueItems sets the uniqueItems keyword
func UniqueItems(unique bool) Keyword {
	return func(s *Value) {
		s.Set("uniqueItems", NewBool(unique))
	}
}

// Contains sets the contains keyword
func Contains(schema *Value) Keyword {
	return func(s *Value) {
		s.Set("contains", schema)
	}
}

// MinContains sets the minContains keyword
func MinContains(min int) Keyword {
	return func(s *Value) {
		s.Set("minContains", NewNumberFromLexeme(strconv.Itoa(min)))
	}
}

// MaxContains sets the maxContains keyword
func MaxContains(max int) Keyword {
	return func(s *Value) {
		s.Set("maxContains", NewNumberFromLexeme(strconv.Itoa(max)))
	}
}

// ===============================
// Object keywords
// ===============================

// Prop adds one named subschema to the properties keyword
func Prop(name string, schema *Value) Keyword {
	return func(s *Value) {
		properties, ok := s.Get("properties")
		if !ok {
			properties = NewObject()
			s.Set("properties", properties)
		}
		properties.Set(name, schema)
	}
}

// Required sets the required keyword
func Required(names ...string) Keyword {
	return func(s *Value) {
		items := make([]*Value, 0, len(names))
		for _, name := range names {
			items = append(items, NewString(name))
		}
		s.Set("required", NewArray(items...))
	}
}

// AdditionalProps sets the additionalProperties keyword
func AdditionalProps(schema *Value) Keyword {
	return func(s *Value) {
		s.Set("additionalProperties", schema)
	}
}

// UnevaluatedProps sets the unevaluatedProperties keyword
func UnevaluatedProps(schema *Value) Keyword {
	return func(s *Value) {
		s.Set("unevaluatedProperties", schema)
	}
}

// PropNames sets the propertyNames keyword
func PropNames(schema *Value) Keyword {
	return func(s *Value) {
		s.Set("propertyNames", schema)
	}
}

// ===============================
// Combinators and references
// ===============================

// AllOf sets the allOf keyword
func AllOf(schemas ...*Value) Keyword {
	return func(s *Value) {
		s.Set("allOf", NewArray(schemas...))
	}
}

// AnyOf sets the anyOf keyword
func AnyOf(schemas ...*Value) Keyword {
	return func(s *Value) {
		s.Set("anyOf", NewArray(schemas...))
	}
}

// OneOf sets the oneOf keyword
func OneOf(schemas ...*Value) Keyword {
	return func(s *Value) {
		s.Set("oneOf", NewArray(schemas...))
	}
}

// Not sets the not keyword
func Not(schema *Value) Keyword {
	return func(s *Value) {
		s.Set("not", schema)
	}
}

// Ref sets the $ref keyword
func Ref(uri string) Keyword {
	return func(s *Value) {
		s.Set("$ref", NewString(uri))
	}
}

// ID sets the $id keyword
func ID(uri string) Keyword {
	return func(s *Value) {
		s.Set("$id", NewString(uri))
	}
}

// Defs adds one named subschema to the $defs keyword
func Defs(name string, schema *Value) Keyword {
	return func(s *Value) {
		defs, ok := s.Get("$defs")
		if !ok {
			defs = NewObject()
			s.Set("$defs", defs)
		}
		defs.Set(name, schema)
	}
}
