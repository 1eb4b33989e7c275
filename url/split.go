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

import "strings"

// split breaks a raw string into the seven raw components following the
// generic grammar of RFC 3986, Appendix B. It is non-validating and
// never rejects: component boundaries are located left to right with
// maximal munch, and whatever falls between them is taken verbatim.
func split(s string) (scheme, userinfo, host, port, path, query, fragment string) {
	// The fragment is everything after the first "#", the query
	// everything after the first "?" before it. Both are opaque, so a
	// "?" after "#" belongs to the fragment.
	if i := strings.IndexByte(s, '#'); i >= 0 {
		fragment = s[i+1:]
		s = s[:i]
	}
	if i := strings.IndexByte(s, '?'); i >= 0 {
		query = s[i+1:]
		s = s[:i]
	}

	// Scheme detection is anchored to the start of input: the colon must
	// appear before any slash, so a colon inside a path segment is never
	// mistaken for a scheme delimiter. The scheme text itself is not
	// validated here; Validate rejects malformed schemes.
	if i := strings.IndexAny(s, ":/"); i > 0 && s[i] == ':' {
		scheme = s[:i]
		s = s[i+1:]
	}

	// An authority is present iff the remainder starts with "//"; it
	// runs up to the next slash ("?" and "#" are already stripped).
	if strings.HasPrefix(s, "//") {
		authority := s[2:]
		if i := strings.IndexByte(authority, '/'); i >= 0 {
			s = authority[i:]
			authority = authority[:i]
		} else {
			s = ""
		}
		if i := strings.LastIndexByte(authority, '@'); i >= 0 {
			userinfo = authority[:i]
			authority = authority[i+1:]
		}
		host, port = splitHostPort(authority)
	}

	path = s
	return scheme, userinfo, host, port, path, query, fragment
}

// splitHostPort separates a trailing port from the host. The host
// itself can contain digits and colons, so the split is decided at the
// last colon: the suffix becomes the port only when it is empty or all
// digits. A colon-bearing, unbracketed remainder is an IPv6 literal
// written without brackets; its final colon-and-digits run is part of
// the address, not a port, and the whole text stays in the host.
func splitHostPort(hostport string) (host, port string) {
	i := strings.LastIndexByte(hostport, ':')
	if i < 0 {
		return hostport, ""
	}
	suffix := hostport[i+1:]
	if suffix != "" && !isAllDigits(suffix) {
		return hostport, ""
	}
	prefix := hostport[:i]
	if strings.ContainsRune(prefix, ':') && !strings.HasSuffix(prefix, "]") {
		return hostport, ""
	}
	return prefix, suffix
}
