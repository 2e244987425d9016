package jsonschema

import "github.com/kaptinlin/go-i18n"

// ValidationError describes one keyword failure against the instance.
type ValidationError struct {
	Keyword string         `json:"keyword"`
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Params  map[string]any `json:"params"`
}

// NewValidationError creates a new validation error with the specified details.
func NewValidationError(keyword string, code string, message string, params ...map[string]any) *ValidationError {
	if len(params) > 0 {
		return &ValidationError{
			Keyword: keyword,
			Code:    code,
			Message: message,
			Params:  params[0],
		}
	}
	return &ValidationError{
		Keyword: keyword,
		Code:    code,
		Message: message,
	}
}

func (e *ValidationError) Error() string {
	return replace(e.Message, e.Params)
}

// Localize returns a localized error message using the provided localizer.
func (e *ValidationError) Localize(localizer *i18n.Localizer) string {
	if localizer != nil {
		return localizer.Get(e.Code, i18n.Vars(e.Params))
	}
	return e.Error()
}

// Annotation is a side-channel value produced by a keyword, addressed by
// (instanceLocation, name, keywordLocation).
type Annotation struct {
	Name                    string `json:"name"`
	KeywordLocation         string `json:"keywordLocation"`
	AbsoluteKeywordLocation string `json:"absoluteKeywordLocation"`
	InstanceLocation        string `json:"instanceLocation"`
	Value                   any    `json:"value"`

	// suppressed annotations still drive sibling keywords but are withheld
	// from the final report (set under not). Annotations of failed
	// subschemas are removed instead.
	suppressed bool
}

// AnnotationMap collects annotations keyed by
// instanceLocation → name → keywordLocation.
type AnnotationMap map[string]map[string]map[string]Annotation

func (m AnnotationMap) add(a Annotation) {
	byName, ok := m[a.InstanceLocation]
	if !ok {
		byName = make(map[string]map[string]Annotation)
		m[a.InstanceLocation] = byName
	}
	byLocation, ok := byName[a.Name]
	if !ok {
		byLocation = make(map[string]Annotation)
		byName[a.Name] = byLocation
	}
	byLocation[a.KeywordLocation] = a
}

// ErrorMap collects validation failures keyed by
// schemaLocation → instanceLocation → message, or the swapped nesting when
// OptionErrorsKeyedByInstance is set.
type ErrorMap map[string]map[string]string

func (m ErrorMap) add(outer, inner, message string) {
	byInner, ok := m[outer]
	if !ok {
		byInner = make(map[string]string)
		m[outer] = byInner
	}
	byInner[inner] = message
}
