package jsonschema

import "sync"

var (
	customFormatsMu sync.RWMutex
	customFormats   = map[string]func(string) bool{}
)

// RegisterFormat registers a custom format checker. Checkers must be pure,
// side-effect-free predicates.
func RegisterFormat(name string, validator func(string) bool) {
	customFormatsMu.Lock()
	defer customFormatsMu.Unlock()
	customFormats[name] = validator
}

// UnregisterFormat removes a custom format checker.
func UnregisterFormat(name string) {
	customFormatsMu.Lock()
	defer customFormatsMu.Unlock()
	delete(customFormats, name)
}

// evaluateFormat checks a string instance against a named format. Whether
// the keyword asserts or only annotates depends on the FORMAT option;
// unset, Draft-07 and earlier assert while Draft 2019-09 annotates. Unknown
// formats always pass.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-validation#rfc.section.7
func evaluateFormat(ctx *Context, value, instance *Value) (bool, error) {
	if value.Kind() != KindString {
		return false, ctx.SchemaError("format must be a string")
	}
	name := value.Str()
	ctx.AddAnnotation("format", name)

	if instance.Kind() != KindString {
		return true, nil
	}

	assert := ctx.Specification() <= Draft07
	if ctx.options.IsSet(OptionFormat) {
		assert = ctx.options.Bool(OptionFormat)
	}

	customFormatsMu.RLock()
	validator, ok := customFormats[name]
	customFormatsMu.RUnlock()
	if !ok {
		validator, ok = Formats[name]
	}
	if !ok {
		return true, nil
	}

	if !validator(instance.Str()) && assert {
		ctx.AddError(NewValidationError("format", "format_mismatch", "Value does not match format {format}", map[string]any{
			"format": name,
		}))
		return false, nil
	}
	return true, nil
}
