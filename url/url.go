/*
Copyright 2026 Yurl Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package url provides an immutable URL value type and the RFC 3986
// algorithms that operate on it: splitting a string into its components,
// validating them on demand, serializing a component set back to a string,
// and resolving a reference against a base URL.
//
// The package offers two entry points for producing a URL:
//   - Parse: a permissive splitter that never fails. Any input, however
//     semantically odd, yields some URL; percent-encoded octets are
//     treated as opaque text.
//   - Build: explicit construction from component strings.
//
// Conformance with the RFC grammar is checked only by the explicit
// Validate step. Keeping parsing and validation separate lets the package
// serve both as a strict validator and as a permissive splitter, and makes
// round-tripping of arbitrary strings always possible.
//
// Key features include:
//   - Reference resolution (Resolve) per RFC 3986, Section 5.3.
//   - Relativization (Relativize) to compute a reference between two
//     absolute URLs, the inverse of Resolve.
//   - Dot-segment removal (RemoveDotSegments) per RFC 3986, Section 5.2.4.
//   - Builder-style derivation (Replace, SetDefault) that always returns
//     a new value.
//   - Support for JSON and text marshalling and unmarshalling.
package url

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Parts holds the seven components of a URL for explicit construction.
// The field order follows the component order of the URL type.
type Parts struct {
	Scheme   string
	Host     string
	Path     string
	Query    string
	Fragment string
	Userinfo string
	Port     string
}

// URL is an immutable URL reference split into its seven components.
// The zero value is the empty reference. An empty component means the
// component is absent; the model does not distinguish an explicitly
// empty component from a missing one.
//
// URL values are comparable with ==: two values are equal iff all seven
// components are equal as text. No semantic equivalence beyond the
// scheme and host case normalization applied at construction is implied.
type URL struct {
	scheme   string
	host     string
	path     string
	query    string
	fragment string
	userinfo string
	port     string
}

// Parse splits a string into its URL components. It never fails: any
// input yields some URL. The scheme and host are lowercased per RFC
// 3986, Sections 3.1 and 3.2.2; every other component is kept verbatim,
// percent-escapes included. Use Validate to check the result against
// the RFC grammar.
func Parse(s string) URL {
	scheme, userinfo, host, port, path, query, fragment := split(s)
	return URL{
		scheme:   strings.ToLower(scheme),
		host:     strings.ToLower(host),
		path:     path,
		query:    query,
		fragment: fragment,
		userinfo: userinfo,
		port:     port,
	}
}

// Build constructs a URL from explicit component strings. It never
// fails. The scheme and host are lowercased. When any authority
// component is set and the path is non-empty and relative, the path is
// prefixed with "/" so that authority and path stay separable on
// serialization.
func Build(p Parts) URL {
	path := p.Path
	if (p.Userinfo != "" || p.Host != "" || p.Port != "") && path != "" && path[0] != '/' {
		path = "/" + path
	}
	return URL{
		scheme:   strings.ToLower(p.Scheme),
		host:     strings.ToLower(p.Host),
		path:     path,
		query:    p.Query,
		fragment: p.Fragment,
		userinfo: p.Userinfo,
		port:     p.Port,
	}
}

// Scheme returns the scheme component, lowercased, without the trailing
// colon. Empty means no scheme is present.
func (u URL) Scheme() string { return u.scheme }

// Host returns the host component, lowercased. It is a registered name,
// a dotted-decimal IPv4 address, or a bracketed IP literal.
func (u URL) Host() string { return u.host }

// Path returns the path component. It is opaque text and may be empty.
func (u URL) Path() string { return u.path }

// Query returns the query component, without the leading "?".
func (u URL) Query() string { return u.query }

// Fragment returns the fragment component, without the leading "#".
func (u URL) Fragment() string { return u.fragment }

// Userinfo returns the userinfo component, without the trailing "@".
func (u URL) Userinfo() string { return u.userinfo }

// Port returns the port component as text. It is all digits or empty.
func (u URL) Port() string { return u.port }

// Authority recombines userinfo, host and port into the authority
// component, without the leading "//".
func (u URL) Authority() string {
	authority := u.host
	if u.port != "" {
		authority += ":" + u.port
	}
	if u.userinfo != "" {
		return u.userinfo + "@" + authority
	}
	return authority
}

// FullPath recombines path, query and fragment, with their "?" and "#"
// delimiters emitted only for non-empty components.
func (u URL) FullPath() string {
	fullPath := u.path
	if u.query != "" {
		fullPath += "?" + u.query
	}
	if u.fragment != "" {
		fullPath += "#" + u.fragment
	}
	return fullPath
}

// HasAuthority reports whether any of userinfo, host or port is set.
func (u URL) HasAuthority() bool {
	return u.host != "" || u.userinfo != "" || u.port != ""
}

// IsRelative reports whether the URL is a relative reference in RFC
// 3986 terms, that is, whether it has no scheme. See IsRelativePath for
// the narrower relative-path notion.
func (u URL) IsRelative() bool {
	return u.scheme == ""
}

// IsRelativePath reports whether the URL is a relative-path reference:
// no scheme, no authority, and a path that does not start with a slash.
func (u URL) IsRelativePath() bool {
	return !strings.HasPrefix(u.path, "/") && u.scheme == "" && !u.HasAuthority()
}

// IsHostIPv4 reports whether the host is a dotted-decimal IPv4 address:
// four dot-separated runs of digits, each below 256. Leading zeros are
// accepted.
func (u URL) IsHostIPv4() bool {
	if strings.HasPrefix(u.host, "[") {
		return false
	}
	parts := strings.Split(u.host, ".")
	if len(parts) != 4 {
		return false
	}
	for _, part := range parts {
		if part == "" || !isAllDigits(part) {
			return false
		}
		if n, err := strconv.Atoi(part); err != nil || n > 255 {
			return false
		}
	}
	return true
}

// IsHostIP reports whether the host is an IPv4 address or a bracketed
// IP literal.
func (u URL) IsHostIP() bool {
	if u.IsHostIPv4() {
		return true
	}
	return strings.HasPrefix(u.host, "[") && strings.HasSuffix(u.host, "]")
}

// MarshalText implements encoding.TextMarshaler, encoding the URL as
// its serialized string.
func (u URL) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Parsing never
// fails, so neither does UnmarshalText.
func (u *URL) UnmarshalText(text []byte) error {
	*u = Parse(string(text))
	return nil
}

// MarshalJSON implements the json.Marshaler interface, encoding the URL
// as a JSON string.
func (u URL) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface. It decodes a
// JSON string into a URL; the only possible errors are JSON-level ones.
func (u *URL) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*u = Parse(s)
	return nil
}
