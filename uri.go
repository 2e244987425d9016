package jsonschema

import (
	"net/url"
	"strings"
)

// URI wraps a parsed URI reference. Fragments are preserved raw so anchor
// names and percent-encoded pointer tokens round-trip unchanged.
type URI struct {
	u *url.URL
}

// ParseURI parses a URI reference.
func ParseURI(s string) (*URI, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	return &URI{u: u}, nil
}

// mustParseURI is for compile-time constant URIs.
func mustParseURI(s string) *URI {
	u, err := ParseURI(s)
	if err != nil {
		panic(err)
	}
	return u
}

func (u *URI) String() string { return u.u.String() }

// IsAbsolute reports whether the URI has a scheme.
func (u *URI) IsAbsolute() bool { return u.u.IsAbs() }

// RawFragment returns the fragment without percent-decoding.
func (u *URI) RawFragment() string { return u.u.EscapedFragment() }

// HasNonEmptyFragment reports whether the URI carries a non-empty fragment.
func (u *URI) HasNonEmptyFragment() bool { return u.u.EscapedFragment() != "" }

// StripFragment returns the URI without any fragment component.
func (u *URI) StripFragment() *URI {
	clone := *u.u
	clone.Fragment = ""
	clone.RawFragment = ""
	return &URI{u: &clone}
}

// WithRawFragment returns the URI with the given raw fragment.
func (u *URI) WithRawFragment(fragment string) *URI {
	clone := *u.u
	clone.Fragment = fragment
	if decoded, err := url.PathUnescape(fragment); err == nil {
		clone.Fragment = decoded
	}
	clone.RawFragment = fragment
	return &URI{u: &clone}
}

// Resolve resolves ref against u per RFC 3986.
func (u *URI) Resolve(ref *URI) *URI {
	return &URI{u: u.u.ResolveReference(ref.u)}
}

// Normalize case-normalizes scheme and host and folds dot segments of rooted
// paths; a relative path without a host is left as it is.
func (u *URI) Normalize() *URI {
	clone := *u.u
	clone.Scheme = strings.ToLower(clone.Scheme)
	clone.Host = strings.ToLower(clone.Host)
	if clone.Path != "" {
		// ResolveReference removes dot segments from an absolute reference.
		base := url.URL{Scheme: clone.Scheme, Host: clone.Host, Path: "/"}
		resolved := base.ResolveReference(&url.URL{Path: clone.Path})
		if strings.HasPrefix(clone.Path, "/") || clone.Host != "" {
			clone.Path = resolved.Path
		}
	}
	return &URI{u: &clone}
}

// Equals compares two URIs after normalization.
func (u *URI) Equals(other *URI) bool {
	return u.Normalize().String() == other.Normalize().String()
}

// fragment character set per RFC 3986: pchar / "/" / "?"
func isFragmentChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '-', '.', '_', '~', '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';',
		'=', ':', '@', '/', '?':
		return true
	}
	return false
}

// escapeFragmentToken percent-encodes a pointer token for use inside a URI
// fragment. Pointer escaping (~0, ~1) is applied first.
func escapeFragmentToken(token string) string {
	token = escapePointerToken(token)
	var sb strings.Builder
	for i := 0; i < len(token); i++ {
		c := token[i]
		if isFragmentChar(c) {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('%')
			sb.WriteByte("0123456789ABCDEF"[c>>4])
			sb.WriteByte("0123456789ABCDEF"[c&0x0f])
		}
	}
	return sb.String()
}

// appendFragmentTokens extends the pointer fragment of a URI with schema path
// tokens, producing the absolute keyword location form.
func appendFragmentTokens(u *URI, tokens ...string) *URI {
	fragment := u.RawFragment()
	for _, token := range tokens {
		fragment += "/" + escapeFragmentToken(token)
	}
	return u.WithRawFragment(fragment)
}
