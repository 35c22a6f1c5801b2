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

// Package uri decomposes URI strings into their RFC 3986 components and
// renders them back.
//
// Parsing is lenient: any string yields a URI, with the components that
// could not be found left absent. Every component is optional and its
// accessor reports presence, so an empty path ("") can be told apart from a
// missing query. The scheme is lower-cased, and when no port is written the
// scheme's default port is taken from a Registry. Rendering omits a port
// equal to that default.
//
// Nothing is percent-decoded during parsing. DecodedPath and QueryPairs
// decode on request; the userinfo is never decoded.
package uri

import (
	"encoding/json"
	"iter"

	"github.com/jplu/urikit/percent"
	"github.com/jplu/urikit/query"
)

// optional holds a component that may be absent.
type optional[T any] struct {
	value T
	set   bool
}

func some[T any](v T) optional[T] { return optional[T]{value: v, set: true} }

func (o optional[T]) get() (T, bool) { return o.value, o.set }

// URI is a decomposed URI. It is an immutable value: the With methods return
// a modified copy.
type URI struct {
	scheme    optional[string]
	userinfo  optional[string]
	host      optional[string]
	port      optional[int]
	path      optional[string]
	query     optional[string]
	fragment  optional[string]
	authority optional[string]

	// portDefaulted is set when port came from the registry rather than the input.
	portDefaulted bool
}

// Scheme returns the lower-cased scheme (e.g., "http") and whether it was present.
func (u URI) Scheme() (string, bool) { return u.scheme.get() }

// Userinfo returns the raw, still percent-encoded, text before '@' in the
// authority and whether it was present.
func (u URI) Userinfo() (string, bool) { return u.userinfo.get() }

// Host returns the host and whether it was present. Brackets around an IP
// literal are stripped. A URI with an authority always has a host, possibly empty.
func (u URI) Host() (string, bool) { return u.host.get() }

// Port returns the explicit port, or the scheme's default port when none was
// written, and whether either was found.
func (u URI) Port() (int, bool) { return u.port.get() }

// Path returns the path and whether it was present. A parsed URI always has
// a path, possibly empty.
func (u URI) Path() (string, bool) { return u.path.get() }

// Query returns the raw query (without '?') and whether it was present.
func (u URI) Query() (string, bool) { return u.query.get() }

// Fragment returns the fragment (without '#') and whether it was present.
func (u URI) Fragment() (string, bool) { return u.fragment.get() }

// Authority returns the authority rebuilt as [userinfo@]host[:port] and
// whether the URI has one. The port appears only if it was written in the
// input, never when it comes from the registry.
func (u URI) Authority() (string, bool) { return u.authority.get() }

// WithScheme returns a copy of u with the given scheme, lower-cased. A port
// that was not written explicitly is resolved again for the new scheme from
// DefaultRegistry, and dropped if the scheme is unknown.
func (u URI) WithScheme(scheme string) URI {
	scheme = NormalizeScheme(scheme)
	u.scheme = some(scheme)
	if u.port.set && !u.portDefaulted {
		return u
	}
	u.port = optional[int]{}
	u.portDefaulted = false
	if port, ok := DefaultRegistry.Lookup(scheme); ok {
		u.port = some(port)
		u.portDefaulted = true
	}
	return u
}

// WithUserinfo returns a copy of u with the given userinfo.
func (u URI) WithUserinfo(userinfo string) URI {
	u.userinfo = some(userinfo)
	return u.withRebuiltAuthority(u.explicitPort())
}

// WithHost returns a copy of u with the given host.
func (u URI) WithHost(host string) URI {
	u.host = some(host)
	return u.withRebuiltAuthority(u.explicitPort())
}

// WithPort returns a copy of u with an explicit port.
func (u URI) WithPort(port int) URI {
	u.port = some(port)
	u.portDefaulted = false
	return u.withRebuiltAuthority(u.port)
}

// WithoutPort returns a copy of u with no port.
func (u URI) WithoutPort() URI {
	u.port = optional[int]{}
	u.portDefaulted = false
	return u.withRebuiltAuthority(u.port)
}

// WithPath returns a copy of u with the given path.
func (u URI) WithPath(path string) URI {
	u.path = some(path)
	return u
}

// WithQuery returns a copy of u with the given raw query.
func (u URI) WithQuery(q string) URI {
	u.query = some(q)
	return u
}

// WithFragment returns a copy of u with the given fragment.
func (u URI) WithFragment(fragment string) URI {
	u.fragment = some(fragment)
	return u
}

// explicitPort returns the port written in the authority, leaving out a
// default port resolved from the registry.
func (u URI) explicitPort() optional[int] {
	if u.portDefaulted {
		return optional[int]{}
	}
	return u.port
}

// withRebuiltAuthority recomputes the authority from userinfo, host and port.
func (u URI) withRebuiltAuthority(port optional[int]) URI {
	if !u.userinfo.set && !u.host.set && !port.set {
		u.authority = optional[string]{}
		return u
	}
	parts := authorityParts{
		userinfo:    u.userinfo.value,
		hasUserinfo: u.userinfo.set,
		host:        u.host.value,
		port:        port.value,
		hasPort:     port.set,
	}
	u.authority = some(parts.String())
	return u
}

// DecodedPath returns the percent-decoded path. A missing path decodes to "".
// Malformed escapes yield an error wrapping ErrMalformedEncoding.
func (u URI) DecodedPath() (string, error) {
	return percent.DecodeString(u.path.value)
}

// QueryPairs returns a lazy sequence over the decoded query pairs. A URI
// without a query yields nothing.
func (u URI) QueryPairs() iter.Seq2[query.Field, error] {
	return query.Pairs(u.query.value)
}

// String renders u using DefaultRegistry. See Serializer.Format.
func (u URI) String() string {
	return Serializer{}.Format(u)
}

// MarshalJSON implements the json.Marshaler interface, encoding the URI as a JSON string.
func (u URI) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface. It parses the JSON
// string with DefaultRegistry; any string is accepted.
func (u *URI) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*u = Parse(s)
	return nil
}
