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
	"io"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// builtinPorts are the default ports every Registry starts with.
var builtinPorts = map[string]int{
	"ftp":   21,
	"http":  80,
	"https": 443,
	"ldap":  389,
	"sftp":  22,
	"tftp":  69,
}

// DefaultRegistry is the process-wide registry used by Parse, URI.String and
// the package-level port helpers.
var DefaultRegistry = NewRegistry()

// Registry maps scheme names to their default port. Lookups read an
// immutable snapshot without locking; registrations are serialized and
// publish a new snapshot, so a lookup racing a registration sees either the
// old or the new port.
type Registry struct {
	mu     sync.Mutex
	ports  atomic.Pointer[map[string]int]
	logger zerolog.Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used to report registrations.
func WithLogger(logger zerolog.Logger) RegistryOption {
	return func(r *Registry) { r.logger = logger }
}

// WithLogOutput logs registrations as JSON lines to w. A nil w disables logging.
func WithLogOutput(w io.Writer) RegistryOption {
	return func(r *Registry) {
		if w == nil {
			r.logger = zerolog.Nop()
			return
		}
		r.logger = zerolog.New(w).With().Timestamp().Str("component", "uri.registry").Logger()
	}
}

// WithPorts seeds the registry with extra entries on top of the built-ins.
// Entries with a non-positive port are ignored.
func WithPorts(ports map[string]int) RegistryOption {
	return func(r *Registry) {
		r.mu.Lock()
		defer r.mu.Unlock()
		m := maps.Clone(*r.ports.Load())
		for scheme, port := range ports {
			if port > 0 {
				m[scheme] = port
			}
		}
		r.ports.Store(&m)
	}
}

// NewRegistry returns a registry seeded with ftp, http, https, ldap, sftp and
// tftp. Logging is disabled unless an option enables it.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{logger: zerolog.Nop()}
	seed := maps.Clone(builtinPorts)
	r.ports.Store(&seed)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lookup returns the default port of scheme. The match is case-sensitive;
// schemes produced by Parse are already lower-case.
func (r *Registry) Lookup(scheme string) (int, bool) {
	port, ok := (*r.ports.Load())[scheme]
	return port, ok
}

// Register sets the default port of scheme, replacing any earlier value.
// It returns ErrInvalidArgument if port is not positive.
func (r *Registry) Register(scheme string, port int) error {
	if port <= 0 {
		r.logger.Warn().Str("scheme", scheme).Int("port", port).Msg("rejected default port")
		return errors.Wrapf(ErrInvalidArgument, "default port %d for scheme %q", port, scheme)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	current := *r.ports.Load()
	previous, existed := current[scheme]
	next := maps.Clone(current)
	next[scheme] = port
	r.ports.Store(&next)

	event := r.logger.Debug().Str("scheme", scheme).Int("port", port)
	if existed {
		event = event.Int("previous", previous)
	}
	event.Msg("registered default port")
	return nil
}

// Schemes returns the registered scheme names in sorted order.
func (r *Registry) Schemes() []string {
	return slices.Sorted(maps.Keys(*r.ports.Load()))
}

// DefaultPort looks scheme up in DefaultRegistry.
func DefaultPort(scheme string) (int, bool) {
	return DefaultRegistry.Lookup(scheme)
}

// RegisterDefaultPort registers port for scheme in DefaultRegistry.
func RegisterDefaultPort(scheme string, port int) error {
	return DefaultRegistry.Register(scheme, port)
}
