package jsonschema

import "encoding/base64"

// Decoders for contentEncoding values.
var Decoders = map[string]func(string) ([]byte, error){
	"base64": base64.StdEncoding.DecodeString,
}

// MediaTypes maps contentMediaType values to handlers producing a Value tree.
var MediaTypes = map[string]func([]byte) (*Value, error){
	"application/json": Parse,
	"application/yaml": ParseYAML,
}

// RegisterDecoder adds a decoder function for a contentEncoding name.
func RegisterDecoder(encodingName string, decoderFunc func(string) ([]byte, error)) {
	Decoders[encodingName] = decoderFunc
}

// RegisterMediaType adds a handler for a contentMediaType name.
func RegisterMediaType(mediaTypeName string, handlerFunc func([]byte) (*Value, error)) {
	MediaTypes[mediaTypeName] = handlerFunc
}

// evaluateContentEncoding annotates the declared encoding. With the CONTENT
// option set, a string instance that does not decode is a validation error.
//
// Reference: https://json-schema.org/draft/2019-09/json-schema-validation#rfc.section.8.3
func evaluateContentEncoding(ctx *Context, value, instance *Value) (bool, error) {
	if value.Kind() != KindString {
		return false, ctx.SchemaError("contentEncoding must be a string")
	}
	ctx.AddAnnotation("contentEncoding", value.Str())

	if !ctx.IsOption(OptionContent) || instance.Kind() != KindString {
		return true, nil
	}
	decoder, ok := Decoders[value.Str()]
	if !ok {
		return true, nil
	}
	if _, err := decoder(instance.Str()); err != nil {
		ctx.AddError(NewValidationError("contentEncoding", "content_encoding_mismatch", "Value is not valid {encoding} content", map[string]any{
			"encoding": value.Str(),
		}))
		return false, nil
	}
	return true, nil
}

// evaluateContentMediaType annotates the declared media type. With the
// CONTENT option set, the (possibly decoded) string instance must parse
// under the declared media type.
func evaluateContentMediaType(ctx *Context, value, instance *Value) (bool, error) {
	if value.Kind() != KindString {
		return false, ctx.SchemaError("contentMediaType must be a string")
	}
	ctx.AddAnnotation("contentMediaType", value.Str())

	if !ctx.IsOption(OptionContent) || instance.Kind() != KindString {
		return true, nil
	}
	handler, ok := MediaTypes[value.Str()]
	if !ok {
		return true, nil
	}
	data, ok := decodedContent(ctx, instance)
	if !ok {
		// The sibling contentEncoding already failed; avoid a second error.
		return true, nil
	}
	if _, err := handler(data); err != nil {
		ctx.AddError(NewValidationError("contentMediaType", "content_media_type_mismatch", "Value is not valid {media_type} content", map[string]any{
			"media_type": value.Str(),
		}))
		return false, nil
	}
	return true, nil
}

// evaluateContentSchema applies the subschema to the parsed content when the
// CONTENT option is set; otherwise it only annotates. contentSchema is
// meaningful only alongside contentMediaType.
func evaluateContentSchema(ctx *Context, value, instance *Value) (bool, error) {
	if serr := ctx.CheckValidSchema(value); serr != nil {
		return false, serr
	}
	ctx.AddAnnotation("contentSchema", value)

	if !ctx.IsOption(OptionContent) || instance.Kind() != KindString {
		return true, nil
	}
	mediaType, ok := ctx.ParentObject().Get("contentMediaType")
	if !ok || mediaType.Kind() != KindString {
		return true, nil
	}
	handler, ok := MediaTypes[mediaType.Str()]
	if !ok {
		return true, nil
	}
	data, ok := decodedContent(ctx, instance)
	if !ok {
		return true, nil
	}
	parsed, err := handler(data)
	if err != nil {
		return true, nil
	}

	valid, err := ctx.Apply(value, nil, parsed, nil)
	if err != nil {
		return false, err
	}
	if !valid {
		ctx.AddError(NewValidationError("contentSchema", "content_schema_mismatch", "Decoded content does not match the content schema"))
		return false, nil
	}
	return true, nil
}

// decodedContent runs the sibling contentEncoding decoder, if any, over a
// string instance. The boolean is false when decoding fails.
func decodedContent(ctx *Context, instance *Value) ([]byte, bool) {
	encoding, ok := ctx.ParentObject().Get("contentEncoding")
	if !ok || encoding.Kind() != KindString {
		return []byte(instance.Str()), true
	}
	decoder, ok := Decoders[encoding.Str()]
	if !ok {
		return []byte(instance.Str()), true
	}
	data, err := decoder(instance.Str())
	if err != nil {
		return nil, false
	}
	return data, true
}
