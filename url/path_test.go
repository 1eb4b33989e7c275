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

//nolint:testpackage // White-box tests for the path helpers.
package url

import "testing"

// TestRemoveDotSegments covers RFC 3986, Section 5.2.4 with the
// stack-based pass: "." dropped, ".." popping at most one segment,
// empty segments preserved, trailing slash kept after "/." and "/..".
func TestRemoveDotSegments(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"Empty", "", ""},
		{"Root", "/", "/"},
		{"Plain", "abc", "abc"},
		{"Mixed dots", "/a/b/c/./../../g", "/a/g"},
		{"Relative with dots", "mid/content=5/../6", "mid/6"},
		{"Single dot", ".", ""},
		{"Double dot", "..", ""},
		{"Root dot", "/.", "/"},
		{"Root double dot", "/..", ""},
		{"Pop to root", "/a/..", "/"},
		{"Trailing dot keeps slash", "/a/.", "/a/"},
		{"Relative trailing double dot", "a/b/..", "a/"},
		{"Empty segments preserved", "//a//b", "//a//b"},
		{"Leading double dot pops nothing", "../g", "g"},
		{"Extra double dots pop nothing", "a/../../b", "b"},
		{"Double dot pops empty segment", "/a//../b", "/a/b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RemoveDotSegments(tt.path)
			if got != tt.want {
				t.Errorf("RemoveDotSegments(%q) = %q, want %q", tt.path, got, tt.want)
			}
			// Applying the removal twice must yield the same result as once.
			if again := RemoveDotSegments(got); again != got {
				t.Errorf("RemoveDotSegments(%q) = %q, not idempotent: second pass gave %q",
					tt.path, got, again)
			}
		})
	}
}

// TestMergePaths checks the path merge of RFC 3986, Section 5.2.3.
func TestMergePaths(t *testing.T) {
	tests := []struct {
		name     string
		basePath string
		refPath  string
		want     string
	}{
		{"Base with directory", "/b/c/d;p", "g", "/b/c/g"},
		{"Base is root", "/", "g", "/g"},
		{"Base without slash", "b", "g", "g"},
		{"Empty base", "", "g", "g"},
		{"Base is directory", "/a/b/", "c", "/a/b/c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := mergePaths(tt.basePath, tt.refPath); got != tt.want {
				t.Errorf("mergePaths(%q, %q) = %q, want %q", tt.basePath, tt.refPath, got, tt.want)
			}
		})
	}
}
