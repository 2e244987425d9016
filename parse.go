package jsonschema

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Parse decodes JSON bytes into a Value tree. Object member order and the
// exact decimal value of numeric literals are preserved.
func Parse(data []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	value, err := parseValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrUnexpectedTrailingData
	}
	return value, nil
}

func parseValue(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, ErrJSONUnmarshal
		}
		return nil, fmt.Errorf("%w: %w", ErrJSONUnmarshal, err)
	}
	return parseToken(dec, tok)
}

func parseToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(t), nil
	case string:
		return NewString(t), nil
	case json.Number:
		value := NewNumberFromLexeme(string(t))
		if value == nil {
			return nil, fmt.Errorf("%w: %q", ErrJSONUnmarshal, string(t))
		}
		return value, nil
	case json.Delim:
		switch t {
		case '[':
			items := []*Value{}
			for dec.More() {
				item, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				items = append(items, item)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return nil, fmt.Errorf("%w: %w", ErrJSONUnmarshal, err)
			}
			return NewArray(items...), nil
		case '{':
			obj := NewObject()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("%w: %w", ErrJSONUnmarshal, err)
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, ErrJSONUnmarshal
				}
				member, err := parseValue(dec)
				if err != nil {
					return nil, err
				}
				obj.Set(key, member)
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return nil, fmt.Errorf("%w: %w", ErrJSONUnmarshal, err)
			}
			return obj, nil
		}
	}
	return nil, ErrJSONUnmarshal
}

// ParseYAML decodes YAML bytes into a Value tree. Mapping order is preserved.
// Floating-point literals go through their decimal rendering, so YAML input
// does not carry the exactness guarantees of Parse.
func ParseYAML(data []byte) (*Value, error) {
	var raw any
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrYAMLUnmarshal, err)
	}
	return fromYAML(raw)
}

func fromYAML(raw any) (*Value, error) {
	switch t := raw.(type) {
	case nil:
		return NewNull(), nil
	case bool:
		return NewBool(t), nil
	case string:
		return NewString(t), nil
	case int, int64, uint64, float32, float64:
		value := NewNumberFromLexeme(fmt.Sprint(t))
		if value == nil {
			return nil, fmt.Errorf("%w: %v", ErrYAMLUnmarshal, t)
		}
		return value, nil
	case []any:
		items := make([]*Value, 0, len(t))
		for _, raw := range t {
			item, err := fromYAML(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return NewArray(items...), nil
	case yaml.MapSlice:
		obj := NewObject()
		for _, entry := range t {
			key, ok := entry.Key.(string)
			if !ok {
				key = fmt.Sprint(entry.Key)
			}
			member, err := fromYAML(entry.Value)
			if err != nil {
				return nil, err
			}
			obj.Set(key, member)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("%w: unsupported yaml node %T", ErrYAMLUnmarshal, raw)
	}
}
