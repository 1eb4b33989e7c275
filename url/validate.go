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

package url

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidAuthority groups the userinfo and host validation
	// failures. errors.Is reports it for both ErrInvalidUserinfo and
	// ErrInvalidHost.
	ErrInvalidAuthority = errors.New("invalid authority")

	// ErrInvalidScheme is reported for a non-empty scheme that does not
	// match ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ) in its lowercase
	// canonical form (RFC 3986, Section 3.1).
	ErrInvalidScheme = errors.New("invalid scheme")

	// ErrInvalidUserinfo is reported for a userinfo containing a
	// delimiter or a bracket. "[" and "]" are the only characters that
	// are neither allowed in userinfo nor delimiters.
	ErrInvalidUserinfo = fmt.Errorf("%w: invalid userinfo", ErrInvalidAuthority)

	// ErrInvalidHost is reported for a registered name containing a
	// delimiter, or a bracketed host whose interior is not an IP literal.
	ErrInvalidHost = fmt.Errorf("%w: invalid host", ErrInvalidAuthority)

	// ErrInvalidPath is reported for a path containing "?" or "#".
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidQuery is reported for a query containing "#".
	ErrInvalidQuery = errors.New("invalid query")
)

// ValidationError describes the first component of a URL that failed
// validation. It wraps one of the ErrInvalid* sentinels, so callers can
// classify it with errors.Is.
type ValidationError struct {
	// Component is the name of the failing component: "scheme",
	// "userinfo", "host", "path" or "query".
	Component string
	// Value is the text of the failing component.
	Value string
	// Err is the sentinel kind for the failure.
	Err error
}

// Error returns the string representation of the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("url: %v %q", e.Err, e.Value)
}

// Unwrap provides compatibility with Go's standard errors package.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks each component against the RFC 3986 grammar and
// returns nil when the URL is well formed, or a *ValidationError for
// the first violation found. Components are checked in order: scheme,
// userinfo, host, path, query. Empty components are always valid, and
// the fragment is never validated; once delimited, RFC 3986 places no
// restriction on it tighter than "any character".
//
// A path is reported invalid only when it contains a delimiter that
// would bleed into another component. A relative path whose first
// segment contains a colon is accepted: the serializer escapes that
// ambiguity with a "./" prefix instead of punishing the caller.
func (u URL) Validate() error {
	if u.scheme != "" && !isValidScheme(u.scheme) {
		return &ValidationError{Component: "scheme", Value: u.scheme, Err: ErrInvalidScheme}
	}
	if u.userinfo != "" && strings.ContainsAny(u.userinfo, "/?#@[]") {
		return &ValidationError{Component: "userinfo", Value: u.userinfo, Err: ErrInvalidUserinfo}
	}
	if u.host != "" && !isValidHost(u.host) {
		return &ValidationError{Component: "host", Value: u.host, Err: ErrInvalidHost}
	}
	if u.path != "" && strings.ContainsAny(u.path, "?#") {
		return &ValidationError{Component: "path", Value: u.path, Err: ErrInvalidPath}
	}
	if u.query != "" && strings.ContainsRune(u.query, '#') {
		return &ValidationError{Component: "query", Value: u.query, Err: ErrInvalidQuery}
	}
	return nil
}

// isValidScheme checks a non-empty scheme against RFC 3986, Section
// 3.1. Schemes are stored lowercased, so only the canonical lowercase
// form is accepted.
func isValidScheme(scheme string) bool {
	if !isLowerASCIILetter(rune(scheme[0])) {
		return false
	}
	for _, r := range scheme[1:] {
		if !isLowerASCIILetter(r) && !isASCIIDigit(r) && r != '+' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}

// isValidHost checks a non-empty host. A bracketed host must enclose an
// IP literal; anything else is a registered name, which may not contain
// delimiters. A valid IPv4 address is also a valid registered name.
func isValidHost(host string) bool {
	if strings.HasPrefix(host, "[") && strings.HasSuffix(host, "]") {
		return isValidIPLiteral(host[1 : len(host)-1])
	}
	return !strings.ContainsAny(host, "/?#@[]:")
}

// isValidIPLiteral checks the interior of a bracketed host: either an
// IPvFuture literal or a colon/hex/dot form approximating IPv6. The
// IPv6 check is deliberately loose; it bounds the character set without
// verifying group counts.
func isValidIPLiteral(inner string) bool {
	if inner == "" {
		return false
	}
	if inner[0] == 'v' || inner[0] == 'V' {
		return isValidIPvFuture(inner)
	}
	for _, r := range inner {
		if !isASCIIHexDigit(r) && r != ':' && r != '.' {
			return false
		}
	}
	return true
}

// isValidIPvFuture checks a "v<hex>.<address>" literal per RFC 3986,
// Section 3.2.2.
func isValidIPvFuture(inner string) bool {
	version, address, ok := strings.Cut(inner[1:], ".")
	if !ok || version == "" || address == "" {
		return false
	}
	for _, r := range version {
		if !isASCIIHexDigit(r) {
			return false
		}
	}
	for _, r := range address {
		if !isIPvFutureAddrChar(r) {
			return false
		}
	}
	return true
}
