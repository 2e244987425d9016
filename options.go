package jsonschema

// Option names a validation behavior toggle. The set is closed.
type Option string

const (
	// OptionFormat treats "format" as an assertion when true and as an
	// annotation when false. Unset, the default depends on the draft:
	// assertion through Draft-07, annotation from Draft 2019-09.
	OptionFormat Option = "format"

	// OptionContent enforces contentEncoding/contentMediaType/contentSchema
	// instead of annotating only.
	OptionContent Option = "content"

	// OptionDefaultSpecification selects the draft used when $schema is
	// absent.
	OptionDefaultSpecification Option = "defaultSpecification"

	// OptionCollectAnnotationsForFailed retains annotations contributed by
	// failed subschemas.
	OptionCollectAnnotationsForFailed Option = "collectAnnotationsForFailed"

	// OptionFailFast stops evaluation at the first validation error.
	OptionFailFast Option = "failFast"

	// OptionAutoResolve resolves relative $id values against the base URI
	// automatically.
	OptionAutoResolve Option = "autoResolve"

	// OptionErrorsKeyedByInstance swaps the error report nesting to
	// instanceLocation → schemaLocation.
	OptionErrorsKeyedByInstance Option = "errorsKeyedByInstance"
)

// Options is the closed option set passed to Validate.
type Options struct {
	values map[Option]any
}

// NewOptions returns an empty option set.
func NewOptions() *Options {
	return &Options{values: make(map[Option]any)}
}

// Set records an option value and returns the receiver for chaining.
func (o *Options) Set(option Option, value any) *Options {
	o.values[option] = value
	return o
}

// IsSet reports whether the option was given explicitly.
func (o *Options) IsSet(option Option) bool {
	if o == nil {
		return false
	}
	_, ok := o.values[option]
	return ok
}

// Bool returns the boolean value of an option, with its built-in default.
func (o *Options) Bool(option Option) bool {
	if o != nil {
		if v, ok := o.values[option].(bool); ok {
			return v
		}
	}
	return option == OptionAutoResolve
}

// DefaultSpecification returns the draft to use when $schema is absent.
func (o *Options) DefaultSpecification() Specification {
	if o != nil {
		if v, ok := o.values[OptionDefaultSpecification].(Specification); ok {
			return v
		}
	}
	return Draft201909
}
