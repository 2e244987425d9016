package jsonschema

import (
	"errors"
	"fmt"
)

// === Parsing Related Errors ===
var (
	// ErrJSONUnmarshal is returned when there is an error unmarshalling JSON.
	ErrJSONUnmarshal = errors.New("json unmarshal failed")

	// ErrYAMLUnmarshal is returned when there is an error unmarshalling YAML.
	ErrYAMLUnmarshal = errors.New("yaml unmarshal failed")

	// ErrUnexpectedTrailingData is returned when input continues past the
	// first JSON value.
	ErrUnexpectedTrailingData = errors.New("unexpected trailing data")

	// ErrUnsupportedTypeForRat is returned when a value cannot seed a Rat.
	ErrUnsupportedTypeForRat = errors.New("unsupported type for rat")

	// ErrFailedToConvertToRat is returned when a lexeme is not an exact decimal.
	ErrFailedToConvertToRat = errors.New("failed to convert to rat")

	// ErrInvalidPointer is returned when a JSON Pointer is malformed.
	ErrInvalidPointer = errors.New("invalid json pointer")

	// ErrIPv6AddressNotEnclosed is returned when an IPv6 host is not
	// enclosed in brackets.
	ErrIPv6AddressNotEnclosed = errors.New("ipv6 address not enclosed in brackets")

	// ErrInvalidIPv6Address is returned when an IPv6 host does not parse.
	ErrInvalidIPv6Address = errors.New("invalid ipv6 address")
)

// === ID Scan Related Errors ===
var (
	// ErrBaseURINotAbsolute is returned when the supplied base URI has no scheme.
	ErrBaseURINotAbsolute = errors.New("base uri not absolute")

	// ErrBaseURIHasFragment is returned when the supplied base URI carries a
	// non-empty fragment.
	ErrBaseURIHasFragment = errors.New("base uri has non-empty fragment")

	// ErrDuplicateID is returned when two schema objects declare the same ID.
	ErrDuplicateID = errors.New("duplicate id")

	// ErrDuplicateAnchor is returned when an anchor is declared twice under
	// the same base.
	ErrDuplicateAnchor = errors.New("duplicate anchor")

	// ErrInvalidAnchor is returned when an anchor name fails the anchor syntax.
	ErrInvalidAnchor = errors.New("invalid anchor")
)

// === Resource Loading Related Errors ===
var (
	// ErrNoLoaderRegistered is returned when no loader is registered for the
	// specified scheme.
	ErrNoLoaderRegistered = errors.New("no loader registered for scheme")

	// ErrResourceNotFound is returned when a referenced resource cannot be
	// located.
	ErrResourceNotFound = errors.New("resource not found")

	// ErrDataRead is returned when data cannot be read from a loader.
	ErrDataRead = errors.New("data read failed")

	// ErrNetworkFetch is returned when there is an error fetching from a URL.
	ErrNetworkFetch = errors.New("network fetch failed")

	// ErrInvalidStatusCode is returned when an invalid HTTP status code is
	// returned.
	ErrInvalidStatusCode = errors.New("invalid http status code")
)

// === Schema Shape Related Errors ===
var (
	// ErrMalformedSchema is the sentinel wrapped by every SchemaError.
	ErrMalformedSchema = errors.New("malformed schema")

	// ErrUnknownVocabulary is returned when $vocabulary requires a vocabulary
	// the validator does not know.
	ErrUnknownVocabulary = errors.New("unknown required vocabulary")
)

// SchemaError reports a structurally invalid schema. It is fatal: the
// enclosing Validate call aborts. KeywordURI is the absolute location of the
// offending keyword.
type SchemaError struct {
	KeywordURI string
	Msg        string
	Err        error
}

func (e *SchemaError) Error() string {
	if e.KeywordURI == "" {
		return fmt.Sprintf("malformed schema: %s", e.Msg)
	}
	return fmt.Sprintf("malformed schema at %s: %s", e.KeywordURI, e.Msg)
}

func (e *SchemaError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrMalformedSchema
}

func newSchemaError(keywordURI string, format string, args ...any) *SchemaError {
	return &SchemaError{KeywordURI: keywordURI, Msg: fmt.Sprintf(format, args...)}
}
