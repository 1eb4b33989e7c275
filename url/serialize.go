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

// String serializes the URL deterministically. Delimiters are emitted
// only for non-empty components, with two ambiguity-breaking additions
// beyond RFC 3986:
//
//   - a path starting with "//" is preceded by an empty "//" authority
//     marker, so it is not re-read as a network-path reference;
//   - without a scheme or authority, a first path segment containing a
//     colon is preceded by "./", so it is not re-read as a scheme.
//
// Both exist for round-trip safety: for any URL v produced by Parse,
// Parse(v.String()) == v.
func (u URL) String() string {
	base := u.Authority()
	switch {
	case base != "":
		base = "//" + base
	case strings.HasPrefix(u.path, "//"):
		base = "//"
	}

	if u.scheme != "" {
		base = u.scheme + ":" + base
	} else if base == "" {
		// A colon at the very start of the segment cannot be misread:
		// a scheme needs at least one character before its colon.
		if segment, _, _ := strings.Cut(u.path, "/"); strings.IndexByte(segment, ':') > 0 {
			base = "./"
		}
	}

	return base + u.FullPath()
}
