package jsonschema

import (
	"regexp"
	"sync"
)

var (
	patternCacheMu sync.RWMutex
	patternCache   = map[string]*regexp.Regexp{}
)

// compilePattern compiles and caches a regular expression. Patterns use Go's
// RE2 syntax (package regexp), not ECMA-262: lookaround and backreferences
// are not supported and fail to compile. No anchoring is implied.
func compilePattern(pattern string) (*regexp.Regexp, error) {
	patternCacheMu.RLock()
	compiled, ok := patternCache[pattern]
	patternCacheMu.RUnlock()
	if ok {
		return compiled, nil
	}
	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	patternCacheMu.Lock()
	patternCache[pattern] = compiled
	patternCacheMu.Unlock()
	return compiled, nil
}

// evaluatePattern checks a string instance against an unanchored regular
// expression.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-validation#rfc.section.6.3.3
func evaluatePattern(ctx *Context, value, instance *Value) (bool, error) {
	if value.Kind() != KindString {
		return false, ctx.SchemaError("pattern must be a string")
	}
	compiled, err := compilePattern(value.Str())
	if err != nil {
		return false, ctx.SchemaError("invalid pattern: %v", err)
	}
	if instance.Kind() != KindString {
		return true, nil
	}
	if !compiled.MatchString(instance.Str()) {
		ctx.AddError(NewValidationError("pattern", "pattern_mismatch", "Value does not match the pattern {pattern}", map[string]any{
			"pattern": value.Str(),
		}))
		return false, nil
	}
	return true, nil
}
