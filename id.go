package jsonschema

import "fmt"

// Id records one addressable point in a schema document: the document root,
// a subschema carrying $id, or an anchor. Identity is the resolved ID URI
// alone; the remaining fields are provenance.
type Id struct {
	ID    string // resolved, normalized URI
	Value string // original lexeme, "" for the document root
	Base  string // base URI in effect at the declaration
	Path  string // static JSON Pointer to the schema node
	Root  string // URI of the enclosing document
}

// IsAnchor reports whether the ID addresses a plain-name anchor.
func (id Id) IsAnchor() bool {
	u, err := ParseURI(id.ID)
	return err == nil && u.HasNonEmptyFragment()
}

// ScanIDs walks the schema and builds the map used by $ref and $recursiveRef
// resolution. baseURI must be absolute and carry no non-empty fragment.
// Duplicate IDs or duplicate anchors under one base are malformed.
func ScanIDs(baseURI string, schema *Value, spec Specification) (map[Id]*Value, error) {
	base, err := ParseURI(baseURI)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBaseURINotAbsolute, baseURI)
	}
	if !base.IsAbsolute() {
		return nil, fmt.Errorf("%w: %q", ErrBaseURINotAbsolute, baseURI)
	}
	if base.HasNonEmptyFragment() {
		return nil, fmt.Errorf("%w: %q", ErrBaseURIHasFragment, baseURI)
	}
	if !schema.isSchema() {
		return nil, newSchemaError(baseURI, "root schema must be an object or a boolean")
	}

	root := base.Normalize()
	scan := &idScanner{
		spec:  spec,
		root:  root.String(),
		ids:   make(map[Id]*Value),
		index: make(map[string]*Value),
	}
	scan.record(Id{ID: root.String(), Base: root.String(), Root: scan.root}, schema)

	scan.bases = append(scan.bases, scopedBase{path: Pointer{}, base: root})

	TraverseSchema(schema, func(element, parent *Value, path Pointer, state VisitState) bool {
		if scan.err != nil {
			return false
		}
		if state.IsNotKeyword() || element.Kind() != KindObject {
			return true
		}
		scan.enterSchemaObject(element, path)
		return scan.err == nil
	})

	if scan.err != nil {
		return nil, scan.err
	}
	return scan.ids, nil
}

type scopedBase struct {
	path Pointer
	base *URI
}

type idScanner struct {
	spec  Specification
	root  string
	bases []scopedBase
	ids   map[Id]*Value
	index map[string]*Value
	err   error
}

// currentBase returns the innermost base whose scope covers path.
func (s *idScanner) currentBase(path Pointer) *URI {
	for i := len(s.bases) - 1; i >= 0; i-- {
		if path.HasPrefix(s.bases[i].path) {
			s.bases = s.bases[:i+1]
			return s.bases[i].base
		}
	}
	return s.bases[0].base
}

func (s *idScanner) record(id Id, node *Value) {
	if existing, ok := s.index[id.ID]; ok {
		if existing == node {
			return
		}
		if id.IsAnchor() {
			s.err = fmt.Errorf("%w: %q", ErrDuplicateAnchor, id.ID)
		} else {
			s.err = fmt.Errorf("%w: %q", ErrDuplicateID, id.ID)
		}
		return
	}
	s.index[id.ID] = node
	s.ids[id] = node
}

func (s *idScanner) enterSchemaObject(element *Value, path Pointer) {
	base := s.currentBase(path)

	if idValue, ok := element.Get("$id"); ok {
		s.scanID(element, idValue, path, base)
		if s.err != nil {
			return
		}
		// The $id may have moved the base for this subtree.
		base = s.currentBase(path)
	}

	if anchorValue, ok := element.Get("$anchor"); ok && s.spec >= Draft201909 {
		s.scanAnchor(element, anchorValue, path, base)
	}
}

func (s *idScanner) scanID(element, idValue *Value, path Pointer, base *URI) {
	at := appendFragmentTokens(base, path.Append("$id")...).String()
	if idValue.Kind() != KindString {
		s.err = newSchemaError(at, "$id must be a string")
		return
	}
	ref, err := ParseURI(idValue.Str())
	if err != nil {
		s.err = newSchemaError(at, "$id is not a valid URI-reference: %q", idValue.Str())
		return
	}

	if ref.HasNonEmptyFragment() {
		if s.spec >= Draft201909 {
			s.err = newSchemaError(at, "$id must not contain a fragment")
			return
		}
		if !isValidAnchor(ref.RawFragment()) {
			s.err = newSchemaError(at, "$id fragment is not a valid anchor: %q", ref.RawFragment())
			return
		}
		resolved := base.Resolve(ref).Normalize()
		s.record(Id{
			ID:    resolved.String(),
			Value: idValue.Str(),
			Base:  base.String(),
			Path:  path.String(),
			Root:  s.root,
		}, element)
		return
	}

	resolved := base.Resolve(ref).StripFragment().Normalize()
	s.record(Id{
		ID:    resolved.String(),
		Value: idValue.Str(),
		Base:  base.String(),
		Path:  path.String(),
		Root:  s.root,
	}, element)
	if s.err != nil {
		return
	}
	s.bases = append(s.bases, scopedBase{path: path, base: resolved})
}

func (s *idScanner) scanAnchor(element, anchorValue *Value, path Pointer, base *URI) {
	at := appendFragmentTokens(base, path.Append("$anchor")...).String()
	if anchorValue.Kind() != KindString {
		s.err = newSchemaError(at, "$anchor must be a string")
		return
	}
	name := anchorValue.Str()
	if !isValidAnchor(name) {
		s.err = fmt.Errorf("%w: %q", ErrInvalidAnchor, name)
		return
	}
	anchored := base.StripFragment().WithRawFragment(name)
	s.record(Id{
		ID:    anchored.String(),
		Value: name,
		Base:  base.String(),
		Path:  path.String(),
		Root:  s.root,
	}, element)
}

// buildIDIndex flattens the scan result for lookup by resolved URI alone.
func buildIDIndex(ids map[Id]*Value) map[string]*Value {
	index := make(map[string]*Value, len(ids))
	for id, node := range ids {
		index[id.ID] = node
	}
	return index
}
