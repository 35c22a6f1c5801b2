/*
Copyright 2025 Trident Authors

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

package uri

import (
	"strings"
)

const (
	// authorityPrefixLength is the length of the string "//".
	authorityPrefixLength = 2
)

// Parser decomposes URI strings. The zero value uses DefaultRegistry.
type Parser struct {
	// Registry resolves default ports. Nil means DefaultRegistry.
	Registry *Registry
}

// Parse decomposes s with DefaultRegistry. See Parser.Parse.
func Parse(s string) URI {
	return Parser{}.Parse(s)
}

// Parse decomposes s following the generic layout
//
//	[scheme ":"] ["//" authority] path ["?" query] ["#" fragment]
//
// It never fails. An empty scheme, query, or fragment is reported absent,
// while the path is always present, possibly empty. The authority is
// present exactly when s has the "//" marker, even if it is empty, and is
// rebuilt from its parsed userinfo, host, and port. Without an explicit
// port, a known scheme gets its default port from the registry.
func (p Parser) Parse(s string) URI {
	var u URI
	rest := s

	if scheme, after, ok := cutScheme(rest); ok {
		u.scheme = some(NormalizeScheme(scheme))
		rest = after
	}

	if strings.HasPrefix(rest, "//") {
		rest = rest[authorityPrefixLength:]
		end := strings.IndexAny(rest, "/?#")
		if end == -1 {
			end = len(rest)
		}
		parts := splitAuthority(rest[:end])
		rest = rest[end:]

		u.authority = some(parts.String())
		u.host = some(parts.host)
		if parts.hasUserinfo {
			u.userinfo = some(parts.userinfo)
		}
		if parts.hasPort {
			u.port = some(parts.port)
		}
	}

	end := strings.IndexAny(rest, "?#")
	if end == -1 {
		end = len(rest)
	}
	u.path = some(rest[:end])
	rest = rest[end:]

	if after, ok := strings.CutPrefix(rest, "?"); ok {
		q, _, _ := strings.Cut(after, "#")
		if q != "" {
			u.query = some(q)
		}
		rest = after[len(q):]
	}

	if fragment, ok := strings.CutPrefix(rest, "#"); ok && fragment != "" {
		u.fragment = some(fragment)
	}

	if scheme, ok := u.scheme.get(); ok && !u.port.set {
		if port, found := p.registry().Lookup(scheme); found {
			u.port = some(port)
			u.portDefaulted = true
		}
	}
	return u
}

// registry returns the registry to consult.
func (p Parser) registry() *Registry {
	if p.Registry == nil {
		return DefaultRegistry
	}
	return p.Registry
}

// cutScheme splits off a leading "scheme:" where scheme is an ASCII letter
// followed by letters, digits, '+', '-' or '.'. It reports false when s
// does not start with one.
func cutScheme(s string) (string, string, bool) {
	if s == "" || !isASCIILetter(s[0]) {
		return "", s, false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		switch {
		case isASCIILetter(c) || isASCIIDigit(c) || c == '+' || c == '-' || c == '.':
			continue
		case c == ':':
			return s[:i], s[i+1:], true
		default:
			return "", s, false
		}
	}
	return "", s, false
}

// NormalizeScheme lower-cases a scheme.
func NormalizeScheme(scheme string) string {
	return strings.ToLower(scheme)
}

// isASCIILetter checks if a byte is an ASCII letter.
func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
