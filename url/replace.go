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
)

// ErrPartConflict is returned by Replace when a composite part is
// supplied together with one of its constituent parts. Conflicts are
// surfaced to the caller, never resolved by precedence.
var ErrPartConflict = errors.New("conflicting parts")

type partMask uint16

const (
	maskScheme partMask = 1 << iota
	maskHost
	maskPath
	maskQuery
	maskFragment
	maskUserinfo
	maskPort
	maskAuthority
	maskFullPath
)

type replacement struct {
	parts     Parts
	authority string
	fullPath  string
	set       partMask
}

// Option overrides a single component in a Replace call.
type Option func(*replacement)

// WithScheme replaces the scheme component.
func WithScheme(scheme string) Option {
	return func(r *replacement) {
		r.parts.Scheme = scheme
		r.set |= maskScheme
	}
}

// WithHost replaces the host component.
func WithHost(host string) Option {
	return func(r *replacement) {
		r.parts.Host = host
		r.set |= maskHost
	}
}

// WithPath replaces the path component.
func WithPath(path string) Option {
	return func(r *replacement) {
		r.parts.Path = path
		r.set |= maskPath
	}
}

// WithQuery replaces the query component.
func WithQuery(query string) Option {
	return func(r *replacement) {
		r.parts.Query = query
		r.set |= maskQuery
	}
}

// WithFragment replaces the fragment component.
func WithFragment(fragment string) Option {
	return func(r *replacement) {
		r.parts.Fragment = fragment
		r.set |= maskFragment
	}
}

// WithUserinfo replaces the userinfo component.
func WithUserinfo(userinfo string) Option {
	return func(r *replacement) {
		r.parts.Userinfo = userinfo
		r.set |= maskUserinfo
	}
}

// WithPort replaces the port component.
func WithPort(port string) Option {
	return func(r *replacement) {
		r.parts.Port = port
		r.set |= maskPort
	}
}

// WithAuthority replaces userinfo, host and port at once. The string is
// decomposed by the splitter, so it may carry any combination of the
// three. It conflicts with WithUserinfo, WithHost and WithPort.
func WithAuthority(authority string) Option {
	return func(r *replacement) {
		r.authority = authority
		r.set |= maskAuthority
	}
}

// WithFullPath replaces path, query and fragment at once. The string is
// decomposed by the splitter. It conflicts with WithPath, WithQuery and
// WithFragment.
func WithFullPath(fullPath string) Option {
	return func(r *replacement) {
		r.fullPath = fullPath
		r.set |= maskFullPath
	}
}

// Replace returns a copy of the URL with the supplied components
// replaced. Components not mentioned keep their current value;
// replacing a component with the empty string clears it. Supplying a
// composite part next to one of its constituents fails with
// ErrPartConflict.
func (u URL) Replace(opts ...Option) (URL, error) {
	var r replacement
	for _, opt := range opts {
		opt(&r)
	}

	if r.set&maskAuthority != 0 && r.set&(maskUserinfo|maskHost|maskPort) != 0 {
		return URL{}, fmt.Errorf("%w: authority next to userinfo, host or port", ErrPartConflict)
	}
	if r.set&maskFullPath != 0 && r.set&(maskPath|maskQuery|maskFragment) != 0 {
		return URL{}, fmt.Errorf("%w: full path next to path, query or fragment", ErrPartConflict)
	}

	if r.set&maskAuthority != 0 {
		parsed := Parse("//" + r.authority)
		r.parts.Userinfo, r.parts.Host, r.parts.Port = parsed.userinfo, parsed.host, parsed.port
		r.set |= maskUserinfo | maskHost | maskPort
	}
	if r.set&maskFullPath != 0 {
		parsed := Parse(r.fullPath)
		r.parts.Path, r.parts.Query, r.parts.Fragment = parsed.path, parsed.query, parsed.fragment
		r.set |= maskPath | maskQuery | maskFragment
	}

	pick := func(mask partMask, replaced, current string) string {
		if r.set&mask != 0 {
			return replaced
		}
		return current
	}

	return Build(Parts{
		Scheme:   pick(maskScheme, r.parts.Scheme, u.scheme),
		Host:     pick(maskHost, r.parts.Host, u.host),
		Path:     pick(maskPath, r.parts.Path, u.path),
		Query:    pick(maskQuery, r.parts.Query, u.query),
		Fragment: pick(maskFragment, r.parts.Fragment, u.fragment),
		Userinfo: pick(maskUserinfo, r.parts.Userinfo, u.userinfo),
		Port:     pick(maskPort, r.parts.Port, u.port),
	}), nil
}

// SetDefault returns a copy of the URL where each empty component is
// filled from defaults. Present components are never overridden.
func (u URL) SetDefault(defaults Parts) URL {
	pick := func(current, fallback string) string {
		if current != "" {
			return current
		}
		return fallback
	}
	return Build(Parts{
		Scheme:   pick(u.scheme, defaults.Scheme),
		Host:     pick(u.host, defaults.Host),
		Path:     pick(u.path, defaults.Path),
		Query:    pick(u.query, defaults.Query),
		Fragment: pick(u.fragment, defaults.Fragment),
		Userinfo: pick(u.userinfo, defaults.Userinfo),
		Port:     pick(u.port, defaults.Port),
	})
}
