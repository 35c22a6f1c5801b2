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
	"strconv"
	"strings"
)

// Serializer renders URIs to strings. The zero value uses DefaultRegistry.
type Serializer struct {
	// Registry decides which ports are defaults. Nil means DefaultRegistry.
	Registry *Registry
}

// Format renders u as
//
//	[scheme "://"] [userinfo "@"] [host] [":" port] [path] ["?" query] ["#" fragment]
//
// A port equal to the scheme's default is left out; u itself keeps it.
// Components are written verbatim, without encoding or decoding, and the
// brackets stripped from an IP literal host are not put back.
func (s Serializer) Format(u URI) string {
	registry := s.Registry
	if registry == nil {
		registry = DefaultRegistry
	}

	port, hasPort := u.Port()
	scheme, hasScheme := u.Scheme()
	if hasScheme && hasPort {
		if def, ok := registry.Lookup(scheme); ok && def == port {
			hasPort = false
		}
	}

	var b strings.Builder
	if hasScheme {
		b.WriteString(scheme)
		b.WriteString("://")
	}
	if userinfo, ok := u.Userinfo(); ok {
		b.WriteString(userinfo)
		b.WriteByte('@')
	}
	if host, ok := u.Host(); ok {
		b.WriteString(host)
	}
	if hasPort {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(port))
	}
	if path, ok := u.Path(); ok {
		b.WriteString(path)
	}
	if q, ok := u.Query(); ok {
		b.WriteByte('?')
		b.WriteString(q)
	}
	if fragment, ok := u.Fragment(); ok {
		b.WriteByte('#')
		b.WriteString(fragment)
	}
	return b.String()
}
