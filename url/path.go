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

// RemoveDotSegments resolves the "." and ".." segments of a path, per
// RFC 3986, Section 5.2.4, in a single stack-based pass: "." segments
// are dropped, ".." pops the previous segment when there is one and
// removes nothing otherwise, and every other segment is kept verbatim,
// including empty segments from consecutive slashes. A path ending
// in "/." or "/.." keeps its trailing slash. The function is
// idempotent.
func RemoveDotSegments(path string) string {
	segments := strings.Split(path, "/")
	stack := make([]string, 0, len(segments))

	for _, segment := range segments {
		switch segment {
		case ".":
		case "..":
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		default:
			stack = append(stack, segment)
		}
	}

	// "/." and "/.." consume a segment but keep the directory meaning
	// of the trailing slash.
	if strings.HasSuffix(path, "/.") || strings.HasSuffix(path, "/..") {
		stack = append(stack, "")
	}

	return strings.Join(stack, "/")
}

// mergePaths implements the path merge of RFC 3986, Section 5.2.3:
// everything in the base path up to and including its last slash,
// followed by the reference path. A base path without a slash
// contributes nothing.
func mergePaths(basePath, refPath string) string {
	i := strings.LastIndexByte(basePath, '/')
	if i < 0 {
		return refPath
	}
	return basePath[:i+1] + refPath
}
