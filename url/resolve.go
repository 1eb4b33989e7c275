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

// Resolve resolves the reference ref against the base URL u, following
// RFC 3986, Section 5.3. The reference wins wherever it carries a
// component: a reference with a scheme is taken wholesale; one with an
// authority inherits only the base scheme; an absolute path replaces
// the base path; a relative path is merged onto the base path's
// directory. The fragment is always the reference's fragment. Dot
// segments are removed from the resulting path.
//
// Because an empty component means an absent one, a reference with an
// explicitly empty query cannot clear the base query: resolving
// "http://a/p?q" against "?" keeps "?q". This is a documented
// limitation of the component model, shared with the delimiter-blind
// resolution of most URL tuple types, not a tie-break to fix here.
func (u URL) Resolve(ref URL) URL {
	scheme := ref.scheme
	host, userinfo, port := ref.host, ref.userinfo, ref.port
	path := ref.path
	query := ref.query

	if scheme == "" {
		scheme = u.scheme

		if host == "" && userinfo == "" && port == "" {
			host, userinfo, port = u.host, u.userinfo, u.port

			if path == "" {
				path = u.path
				if query == "" {
					query = u.query
				}
			} else if path[0] != '/' {
				path = mergePaths(u.path, path)
			}
		}
	}

	return Build(Parts{
		Scheme:   scheme,
		Host:     host,
		Path:     RemoveDotSegments(path),
		Query:    query,
		Fragment: ref.fragment,
		Userinfo: userinfo,
		Port:     port,
	})
}
