package jsonschema

import "strconv"

type traverseMode int

const (
	modeSchema traverseMode = iota // element is (or belongs to) a schema position
	modeMap                        // element is a map of user-named subschemas
	modeData                       // element is opaque data
)

// VisitState accompanies every traverser callback.
type VisitState struct {
	mode traverseMode
}

// IsNotKeyword reports whether the visited element sits at a non-keyword
// position: the map value of properties, patternProperties,
// $defs/definitions, dependentSchemas or dependencies (whose member names are
// user data; the members themselves are schema positions again), or an
// enum/const/examples/default value and anything nested inside it.
func (s VisitState) IsNotKeyword() bool { return s.mode != modeSchema }

// VisitFunc receives each element of a schema walk. Returning false stops
// descent below the element.
type VisitFunc func(element, parent *Value, path Pointer, state VisitState) bool

// keywords whose value is a map of user-named subschemas.
var schemaMapKeywords = map[string]bool{
	"properties":        true,
	"patternProperties": true,
	"$defs":             true,
	"definitions":       true,
	"dependentSchemas":  true,
	"dependencies":      true,
}

// keywords whose value is opaque data, never a subschema.
var dataKeywords = map[string]bool{
	"enum":     true,
	"const":    true,
	"examples": true,
	"default":  true,
}

// TraverseSchema walks a schema value, visiting every element with its
// parent, path and keyword/non-keyword classification. Used by the ID
// scanner; also the hook for linters and coverage reporters built on top of
// this package.
func TraverseSchema(root *Value, visit VisitFunc) {
	traverseSchema(root, nil, Pointer{}, VisitState{}, visit)
}

func traverseSchema(element, parent *Value, path Pointer, state VisitState, visit VisitFunc) {
	if element == nil {
		return
	}
	if !visit(element, parent, path, state) {
		return
	}

	switch element.Kind() {
	case KindObject:
		for _, key := range element.Keys() {
			member, _ := element.Get(key)
			childState := state
			switch state.mode {
			case modeSchema:
				if schemaMapKeywords[key] {
					childState.mode = modeMap
				} else if dataKeywords[key] {
					childState.mode = modeData
				}
			case modeMap:
				// A member of a schema map is a schema position again.
				childState.mode = modeSchema
			}
			traverseSchema(member, element, path.Append(key), childState, visit)
		}
	case KindArray:
		for i, item := range element.Items() {
			traverseSchema(item, element, path.Append(strconv.Itoa(i)), state, visit)
		}
	}
}
