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

//nolint:testpackage // White-box tests for construction and introspection.
package url

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// TestBuild checks explicit construction: case normalization and the
// automatic leading slash gluing a relative path to an authority.
func TestBuild(t *testing.T) {
	tests := []struct {
		name  string
		parts Parts
		want  URL
	}{
		{"Zero parts", Parts{}, URL{}},
		{"Lowercases scheme and host", Parts{Scheme: "HTTP", Host: "ExAmple.COM"}, URL{scheme: "http", host: "example.com"}},
		{"Keeps other components verbatim", Parts{Path: "/A", Query: "Q", Fragment: "F", Userinfo: "U"}, URL{path: "/A", query: "Q", fragment: "F", userinfo: "U"}},
		{"Relative path gains slash after host", Parts{Host: "h", Path: "p"}, URL{host: "h", path: "/p"}},
		{"Relative path gains slash after port", Parts{Port: "80", Path: "p"}, URL{port: "80", path: "/p"}},
		{"Relative path gains slash after userinfo", Parts{Userinfo: "u", Path: "p"}, URL{userinfo: "u", path: "/p"}},
		{"Absolute path untouched", Parts{Host: "h", Path: "/p"}, URL{host: "h", path: "/p"}},
		{"Empty path untouched", Parts{Host: "h"}, URL{host: "h"}},
		{"No authority leaves path relative", Parts{Path: "p"}, URL{path: "p"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Build(tt.parts)
			if diff := cmp.Diff(tt.want, got, cmpURL); diff != "" {
				t.Errorf("Build(%+v) mismatch (-want +got):\n%s", tt.parts, diff)
			}
		})
	}
}

// TestEquality checks structural equality of the seven components: URL
// values compare with ==, and equivalent-but-differently-written URLs
// stay distinct.
func TestEquality(t *testing.T) {
	if Parse("HTTP://Example.com/a") != Parse("http://example.com/a") {
		t.Errorf("case-normalized parses should be equal")
	}
	if Parse("http://example.com/a") == Parse("http://example.com/a/") {
		t.Errorf("distinct paths should not be equal")
	}
	if Parse("http://example.com:80/") == Parse("http://example.com/") {
		t.Errorf("explicit port should not equal absent port")
	}
}

// TestIntrospection checks the relative/authority predicates.
func TestIntrospection(t *testing.T) {
	tests := []struct {
		name           string
		input          string
		hasAuthority   bool
		isRelative     bool
		isRelativePath bool
	}{
		{"Absolute", "http://h/p", true, false, false},
		{"Network-path", "//h/p", true, true, false},
		{"Absolute-path", "/p", false, true, false},
		{"Relative-path", "p", false, true, true},
		{"Scheme with rootless path", "m:p", false, false, false},
		{"Empty", "", false, true, true},
		{"Port only counts as authority", "//:80/p", true, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := Parse(tt.input)
			if got := u.HasAuthority(); got != tt.hasAuthority {
				t.Errorf("HasAuthority() = %v, want %v", got, tt.hasAuthority)
			}
			if got := u.IsRelative(); got != tt.isRelative {
				t.Errorf("IsRelative() = %v, want %v", got, tt.isRelative)
			}
			if got := u.IsRelativePath(); got != tt.isRelativePath {
				t.Errorf("IsRelativePath() = %v, want %v", got, tt.isRelativePath)
			}
		})
	}
}

// TestIsHostIP checks the dotted-decimal and bracketed host detection.
func TestIsHostIP(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		wantIPv4 bool
		wantIP   bool
	}{
		{"IPv4", "1.2.3.4", true, true},
		{"IPv4 upper bound", "255.255.255.255", true, true},
		{"IPv4 with leading zeros", "01.02.03.04", true, true},
		{"Octet out of range", "256.1.1.1", false, false},
		{"Too few octets", "1.2.3", false, false},
		{"Too many octets", "1.2.3.4.5", false, false},
		{"Empty octet", "1..3.4", false, false},
		{"Non-digit octet", "a.b.c.d", false, false},
		{"Registered name", "example.com", false, false},
		{"Empty host", "", false, false},
		{"Bracketed IPv6", "[::1]", false, true},
		{"Bracketed IPvFuture", "[v7.x]", false, true},
		{"Unbracketed IPv6", "2001:db8::1", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := Build(Parts{Host: tt.host})
			if got := u.IsHostIPv4(); got != tt.wantIPv4 {
				t.Errorf("IsHostIPv4() = %v, want %v", got, tt.wantIPv4)
			}
			if got := u.IsHostIP(); got != tt.wantIP {
				t.Errorf("IsHostIP() = %v, want %v", got, tt.wantIP)
			}
		})
	}
}

// TestJSONRoundTrip checks marshalling a URL as a JSON string and back.
func TestJSONRoundTrip(t *testing.T) {
	v := Parse("http://u@example.com:8080/a/b?q=1#f")

	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if string(data) != `"http://u@example.com:8080/a/b?q=1#f"` {
		t.Errorf("Marshal() = %s, want the serialized string", data)
	}

	var back URL
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if back != v {
		t.Errorf("Unmarshal(Marshal(v)) = %+v, want %+v", back, v)
	}

	if err := json.Unmarshal([]byte(`123`), &back); err == nil {
		t.Errorf("Unmarshal(123) = nil error, want a JSON type error")
	}
}

// TestTextRoundTrip checks the encoding.TextMarshaler pair.
func TestTextRoundTrip(t *testing.T) {
	v := Parse("//[::1]:80/x?y")

	data, err := v.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() error: %v", err)
	}
	if string(data) != "//[::1]:80/x?y" {
		t.Errorf("MarshalText() = %q, want %q", data, "//[::1]:80/x?y")
	}

	var back URL
	if err := back.UnmarshalText(data); err != nil {
		t.Fatalf("UnmarshalText() error: %v", err)
	}
	if back != v {
		t.Errorf("UnmarshalText(MarshalText(v)) = %+v, want %+v", back, v)
	}
}
