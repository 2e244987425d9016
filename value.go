package jsonschema

import (
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBoolean
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBoolean:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "unknown"
}

// Value is a JSON value; object values are extended only through Set.
// Numbers retain arbitrary precision,
// objects preserve member insertion order with unique keys.
type Value struct {
	kind    Kind
	boolean bool
	number  *Rat
	str     string
	items   []*Value
	keys    []string
	members map[string]*Value
}

var nullValue = &Value{kind: KindNull}
var trueValue = &Value{kind: KindBoolean, boolean: true}
var falseValue = &Value{kind: KindBoolean}

// NewNull returns the JSON null value.
func NewNull() *Value { return nullValue }

// NewBool returns a JSON boolean value.
func NewBool(b bool) *Value {
	if b {
		return trueValue
	}
	return falseValue
}

// NewNumber returns a JSON number value backed by the given Rat.
func NewNumber(r *Rat) *Value { return &Value{kind: KindNumber, number: r} }

// NewNumberFromLexeme parses a JSON numeric literal into a number value.
// Returns nil if the lexeme does not parse as a number.
func NewNumberFromLexeme(lexeme string) *Value {
	r := NewRat(lexeme)
	if r == nil {
		return nil
	}
	return NewNumber(r)
}

// NewString returns a JSON string value.
func NewString(s string) *Value { return &Value{kind: KindString, str: s} }

// NewArray returns a JSON array value holding the given elements.
func NewArray(items ...*Value) *Value { return &Value{kind: KindArray, items: items} }

// NewObject returns an empty JSON object value. Members are added with Set.
func NewObject() *Value {
	return &Value{kind: KindObject, members: make(map[string]*Value)}
}

// Kind reports the variant of the value.
func (v *Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is JSON null.
func (v *Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload. Valid only for KindBoolean.
func (v *Value) Bool() bool { return v.boolean }

// Number returns the exact decimal payload. Valid only for KindNumber.
func (v *Value) Number() *Rat { return v.number }

// IsInteger reports whether the value is a number with no fractional part.
// 1.0 is an integer; 1.5 is not.
func (v *Value) IsInteger() bool { return v.kind == KindNumber && v.number.IsInt() }

// Str returns the string payload. Valid only for KindString.
func (v *Value) Str() string { return v.str }

// Items returns the element slice of an array value.
func (v *Value) Items() []*Value { return v.items }

// Keys returns the member names of an object value, in insertion order.
func (v *Value) Keys() []string { return v.keys }

// Get returns the member of an object value by name.
func (v *Value) Get(key string) (*Value, bool) {
	if v.kind != KindObject {
		return nil, false
	}
	m, ok := v.members[key]
	return m, ok
}

// Set adds or replaces a member of an object value. A replaced member keeps
// its original position.
func (v *Value) Set(key string, member *Value) *Value {
	if _, ok := v.members[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.members[key] = member
	return v
}

// Len returns the element count of an array or the member count of an object.
func (v *Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.items)
	case KindObject:
		return len(v.keys)
	}
	return 0
}

// Equals reports structural equality: numbers by exact decimal value,
// objects independent of member order, arrays positionally.
func (v *Value) Equals(other *Value) bool {
	if v == other {
		return true
	}
	if v == nil || other == nil || v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBoolean:
		return v.boolean == other.boolean
	case KindNumber:
		return v.number.Cmp(other.number.Rat) == 0
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.items) != len(other.items) {
			return false
		}
		for i, item := range v.items {
			if !item.Equals(other.items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.keys) != len(other.keys) {
			return false
		}
		for key, member := range v.members {
			otherMember, ok := other.members[key]
			if !ok || !member.Equals(otherMember) {
				return false
			}
		}
		return true
	}
	return false
}

// String renders the value as compact JSON text. Used in error messages.
func (v *Value) String() string {
	var sb strings.Builder
	v.render(&sb)
	return sb.String()
}

func (v *Value) render(sb *strings.Builder) {
	switch v.kind {
	case KindNull:
		sb.WriteString("null")
	case KindBoolean:
		sb.WriteString(strconv.FormatBool(v.boolean))
	case KindNumber:
		sb.WriteString(FormatRat(v.number))
	case KindString:
		sb.WriteString(strconv.Quote(v.str))
	case KindArray:
		sb.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				sb.WriteByte(',')
			}
			item.render(sb)
		}
		sb.WriteByte(']')
	case KindObject:
		sb.WriteByte('{')
		for i, key := range v.keys {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.Quote(key))
			sb.WriteByte(':')
			v.members[key].render(sb)
		}
		sb.WriteByte('}')
	}
}

// isSchema reports whether the value can stand as a schema: an object or a
// boolean.
func (v *Value) isSchema() bool {
	return v != nil && (v.kind == KindObject || v.kind == KindBoolean)
}
