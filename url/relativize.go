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

// ErrRelativize is returned by Relativize when no reference can be
// computed: the base or target is not absolute, or the target path
// contains dot segments. Such paths must be normalized (see
// RemoveDotSegments) before relativization.
var ErrRelativize = errors.New("cannot relativize")

// Relativize computes a reference ref such that u.Resolve(ref) equals
// target. It is the inverse of Resolve. Both URLs must be absolute and
// the target path must be free of "." and ".." segments.
//
// The shortest workable reference is preferred: a fragment-only or
// query reference when the paths match, a relative path otherwise.
// When the schemes differ the target itself is returned; when only the
// authorities differ, a scheme-relative reference. Because an empty
// query means an absent one, clearing a base query requires a
// path-carrying reference even when the paths match.
func (u URL) Relativize(target URL) (URL, error) {
	if u.scheme == "" || target.scheme == "" {
		return URL{}, fmt.Errorf("%w: base and target must be absolute", ErrRelativize)
	}
	for _, segment := range strings.Split(target.path, "/") {
		if segment == "." || segment == ".." {
			return URL{}, fmt.Errorf("%w: target path contains dot segments", ErrRelativize)
		}
	}

	if u.scheme != target.scheme {
		return target, nil
	}

	if u.userinfo != target.userinfo || u.host != target.host || u.port != target.port {
		if !target.HasAuthority() {
			// A reference without an authority inherits the base
			// authority on resolution, so only the full target can
			// express an absent one.
			return target, nil
		}
		return schemeRelative(target), nil
	}

	if u.path == target.path {
		return u.relativizeSamePath(target), nil
	}

	if target.path == "" && u.path != "" {
		// An empty reference path keeps the base path on resolution.
		if target.HasAuthority() {
			return schemeRelative(target), nil
		}
		return target, nil
	}

	return Build(Parts{
		Path:     relativizePath(u.path, target.path),
		Query:    target.query,
		Fragment: target.fragment,
	}), nil
}

// relativizeSamePath handles a target sharing the base path: the
// reference reduces to a fragment, a query, or, when the base query
// must be cleared, the last segment of the shared path.
func (u URL) relativizeSamePath(target URL) URL {
	if u.query == target.query {
		return Build(Parts{Fragment: target.fragment})
	}
	if target.query != "" {
		return Build(Parts{Query: target.query, Fragment: target.fragment})
	}

	segment := target.path[strings.LastIndexByte(target.path, '/')+1:]
	if segment == "" {
		segment = "."
	}
	return Build(Parts{Path: segment, Fragment: target.fragment})
}

// schemeRelative strips the scheme from target, leaving a network-path
// reference that picks the scheme back up from the base on resolution.
func schemeRelative(target URL) URL {
	return Build(Parts{
		Host:     target.host,
		Path:     target.path,
		Query:    target.query,
		Fragment: target.fragment,
		Userinfo: target.userinfo,
		Port:     target.port,
	})
}

// relativizePath computes a relative path from the directory of
// basePath to targetPath: "../" for each base directory below the
// common prefix, then the remaining target segments.
func relativizePath(basePath, targetPath string) string {
	baseSegments := strings.Split(basePath, "/")
	baseDirs := baseSegments[:len(baseSegments)-1]
	targetSegments := strings.Split(targetPath, "/")
	targetDirs := targetSegments[:len(targetSegments)-1]
	targetFile := targetSegments[len(targetSegments)-1]

	common := 0
	for common < len(baseDirs) && common < len(targetDirs) && baseDirs[common] == targetDirs[common] {
		common++
	}

	var b strings.Builder
	for range baseDirs[common:] {
		b.WriteString("../")
	}
	for _, dir := range targetDirs[common:] {
		b.WriteString(dir)
		b.WriteByte('/')
	}
	b.WriteString(targetFile)

	rel := b.String()
	if rel == "" || rel[0] == '/' {
		// "." keeps the reference in the base directory; the prefix
		// also keeps an empty leading segment from being re-read as an
		// absolute path.
		rel = "./" + rel
	}
	return rel
}
