package jsonschema

import (
	"context"
	"embed"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
)

//go:embed metaschemas/*.json metaschemas/meta/*.json
var metaschemaFS embed.FS

// metaschemaFiles maps the known meta-schema URIs to their embedded copies.
var metaschemaFiles = map[string]string{
	"https://json-schema.org/draft/2019-09/schema":          "metaschemas/draft2019-09.json",
	"https://json-schema.org/draft/2019-09/meta/core":       "metaschemas/meta/core.json",
	"https://json-schema.org/draft/2019-09/meta/applicator": "metaschemas/meta/applicator.json",
	"https://json-schema.org/draft/2019-09/meta/validation": "metaschemas/meta/validation.json",
	"https://json-schema.org/draft/2019-09/meta/meta-data":  "metaschemas/meta/meta-data.json",
	"https://json-schema.org/draft/2019-09/meta/format":     "metaschemas/meta/format.json",
	"https://json-schema.org/draft/2019-09/meta/content":    "metaschemas/meta/content.json",
	"http://json-schema.org/draft-07/schema":                "metaschemas/draft-07.json",
	"http://json-schema.org/draft-06/schema":                "metaschemas/draft-06.json",
}

// Loaders maps URI schemes to loader functions for fetching schema resources
// that are neither in the document nor embedded. HTTP loading is opt-in.
var Loaders = map[string]func(url string) (io.ReadCloser, error){}

// RegisterLoader adds a loader function for a URI scheme.
func RegisterLoader(scheme string, loaderFunc func(url string) (io.ReadCloser, error)) {
	Loaders[scheme] = loaderFunc
}

// NewHTTPLoader returns a loader suitable for RegisterLoader("https", ...).
func NewHTTPLoader() func(url string) (io.ReadCloser, error) {
	client := &http.Client{
		Timeout: 10 * time.Second,
	}
	return func(url string) (io.ReadCloser, error) {
		req, err := http.NewRequestWithContext(context.Background(), "GET", url, nil)
		if err != nil {
			return nil, err
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, ErrNetworkFetch
		}
		if resp.StatusCode != http.StatusOK {
			if err := resp.Body.Close(); err != nil {
				return nil, err
			}
			return nil, ErrInvalidStatusCode
		}
		return resp.Body, nil
	}
}

var (
	resourceCacheMu sync.RWMutex
	resourceCache   = map[string]*Value{}
)

// loadResource fetches and parses a schema resource by normalized URI. The
// embedded meta-schemas are consulted first; other URIs go through the
// registered loaders. Parsed resources are cached per normalized URI.
func loadResource(uri *URI) (*Value, error) {
	key := uri.Normalize().String()

	resourceCacheMu.RLock()
	cached, ok := resourceCache[key]
	resourceCacheMu.RUnlock()
	if ok {
		return cached, nil
	}

	var data []byte
	if file, ok := metaschemaFiles[key]; ok {
		var err error
		data, err = metaschemaFS.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrResourceNotFound, key)
		}
	} else {
		loader, ok := Loaders[uri.u.Scheme]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNoLoaderRegistered, uri.u.Scheme)
		}
		body, err := loader(key)
		if err != nil {
			return nil, err
		}
		defer body.Close() //nolint:errcheck
		data, err = io.ReadAll(body)
		if err != nil {
			return nil, ErrDataRead
		}
	}

	root, err := Parse(data)
	if err != nil {
		return nil, err
	}

	resourceCacheMu.Lock()
	resourceCache[key] = root
	resourceCacheMu.Unlock()
	return root, nil
}

// loadKnownResource loads an external resource during evaluation and merges
// its scanned IDs into the context's index so later references resolve
// without reloading.
func loadKnownResource(ctx *Context, resource *URI) (*Value, error) {
	key := resource.Normalize().String()
	root, err := loadResource(resource)
	if err != nil {
		return nil, err
	}

	if !ctx.validatedSchemas[key] {
		ctx.validatedSchemas[key] = true
		spec := ctx.Specification()
		if s, ok := resourceSpecification(root); ok {
			spec = s
		}
		ids, err := ScanIDs(key, root, spec)
		if err != nil {
			return nil, err
		}
		for id, node := range ids {
			if _, exists := ctx.idIndex[id.ID]; !exists {
				ctx.idIndex[id.ID] = node
				ctx.ids[id] = node
			}
		}
	}
	return root, nil
}

func resourceSpecification(root *Value) (Specification, bool) {
	if root.Kind() != KindObject {
		return SpecificationUnknown, false
	}
	schemaValue, ok := root.Get("$schema")
	if !ok || schemaValue.Kind() != KindString {
		return SpecificationUnknown, false
	}
	return specificationFromURI(schemaValue.Str())
}
