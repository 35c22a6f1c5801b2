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

//nolint:testpackage // This is a white-box test file for an internal package. It needs to be in the same package to test unexported functions.
package uri

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/jplu/urikit/query"
)

// TestURI_WithMethods checks that the With methods leave the receiver untouched.
func TestURI_WithMethods(t *testing.T) {
	orig := Parse("http://host/p?q#f")
	changed := orig.WithHost("other").WithPath("/x").WithQuery("y=1").WithFragment("g").WithScheme("https")

	if got := orig.String(); got != "http://host/p?q#f" {
		t.Errorf("original modified: %q", got)
	}
	if got := changed.String(); got != "https://other/x?y=1#g" {
		t.Errorf("changed = %q", got)
	}
}

// TestURI_WithScheme checks how a scheme change affects the port.
func TestURI_WithScheme(t *testing.T) {
	tests := []struct {
		name       string
		uri        URI
		scheme     string
		wantScheme string
		wantPort   int
		wantOK     bool
		wantString string
	}{
		{
			name:       "default port follows the scheme",
			uri:        Parse("http://host/"),
			scheme:     "https",
			wantScheme: "https",
			wantPort:   443,
			wantOK:     true,
			wantString: "https://host/",
		},
		{
			name:       "default port dropped for an unknown scheme",
			uri:        Parse("http://host/"),
			scheme:     "gopher",
			wantScheme: "gopher",
			wantString: "gopher://host/",
		},
		{
			name:       "explicit port kept",
			uri:        Parse("http://host:8080/"),
			scheme:     "https",
			wantScheme: "https",
			wantPort:   8080,
			wantOK:     true,
			wantString: "https://host:8080/",
		},
		{
			name:       "explicit default port of the old scheme kept",
			uri:        Parse("http://host:80/"),
			scheme:     "https",
			wantScheme: "https",
			wantPort:   80,
			wantOK:     true,
			wantString: "https://host:80/",
		},
		{
			name:       "scheme is lower-cased and resolved",
			uri:        URI{}.WithHost("host"),
			scheme:     "FTP",
			wantScheme: "ftp",
			wantPort:   21,
			wantOK:     true,
			wantString: "ftp://host",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := tt.uri.WithScheme(tt.scheme)
			if scheme, _ := u.Scheme(); scheme != tt.wantScheme {
				t.Errorf("Scheme() = %q, want %q", scheme, tt.wantScheme)
			}
			port, ok := u.Port()
			if ok != tt.wantOK || port != tt.wantPort {
				t.Errorf("Port() = %d, %v, want %d, %v", port, ok, tt.wantPort, tt.wantOK)
			}
			if got := u.String(); got != tt.wantString {
				t.Errorf("String() = %q, want %q", got, tt.wantString)
			}
		})
	}
}

// TestURI_AuthorityRebuild checks that the authority follows userinfo, host and port.
func TestURI_AuthorityRebuild(t *testing.T) {
	tests := []struct {
		name     string
		uri      URI
		expected string
		present  bool
	}{
		{name: "zero value", uri: URI{}, present: false},
		{name: "host", uri: URI{}.WithHost("h"), expected: "h", present: true},
		{name: "port", uri: URI{}.WithHost("h").WithPort(81), expected: "h:81", present: true},
		{name: "userinfo", uri: URI{}.WithUserinfo("u").WithHost("h"), expected: "u@h", present: true},
		{name: "without port", uri: Parse("http://h:81").WithoutPort(), expected: "h", present: true},
		{
			name:     "default port is not promoted",
			uri:      Parse("http://h/").WithHost("g"),
			expected: "g",
			present:  true,
		},
		{
			name:     "explicit port survives host change",
			uri:      Parse("http://h:80/").WithHost("g"),
			expected: "g:80",
			present:  true,
		},
		{
			name:     "IP literal host survives userinfo change",
			uri:      Parse("http://[::1]:8080/").WithUserinfo("me"),
			expected: "me@::1:8080",
			present:  true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.uri.Authority()
			if ok != tt.present || got != tt.expected {
				t.Errorf("Authority() = %q, %v, want %q, %v", got, ok, tt.expected, tt.present)
			}
		})
	}
}

// TestURI_WithoutPortDropsDefault checks that WithoutPort removes a default port too.
func TestURI_WithoutPortDropsDefault(t *testing.T) {
	u := Parse("http://host/").WithoutPort()
	if _, ok := u.Port(); ok {
		t.Errorf("Port() still present")
	}
	if got := u.String(); got != "http://host/" {
		t.Errorf("String() = %q", got)
	}
}

// TestURI_DecodedPath tests on-demand path decoding.
func TestURI_DecodedPath(t *testing.T) {
	got, err := Parse("http://host/a%20b/%C3%A9").DecodedPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "/a b/é" {
		t.Errorf("DecodedPath() = %q", got)
	}

	if _, err := Parse("/bad%2").DecodedPath(); !errors.Is(err, ErrMalformedEncoding) {
		t.Errorf("DecodedPath() error = %v, want ErrMalformedEncoding", err)
	}

	got, err = URI{}.DecodedPath()
	if err != nil || got != "" {
		t.Errorf("DecodedPath() on zero URI = %q, %v", got, err)
	}
}

// TestURI_QueryPairs tests on-demand query decoding.
func TestURI_QueryPairs(t *testing.T) {
	var got []query.Field
	for f, err := range Parse("http://host/?a=1&b=x+y&flag").QueryPairs() {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got = append(got, f)
	}
	want := []query.Field{
		{Key: "a", Value: query.Value{Str: "1", Set: true}},
		{Key: "b", Value: query.Value{Str: "x y", Set: true}},
		{Key: "flag"},
	}
	if len(got) != len(want) {
		t.Fatalf("QueryPairs() = %+v, want %+v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("pair %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	for range Parse("http://host/").QueryPairs() {
		t.Errorf("URI without query yielded a pair")
	}
}

// TestURI_MarshalJSON tests JSON encoding and decoding of URIs.
func TestURI_MarshalJSON(t *testing.T) {
	type payload struct {
		Link URI `json:"link"`
	}

	data, err := json.Marshal(payload{Link: Parse("HTTP://host:80/a?b#c")})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"link":"http://host/a?b#c"}` {
		t.Errorf("Marshal = %s", data)
	}

	var p payload
	if err := json.Unmarshal([]byte(`{"link":"https://example.com/x"}`), &p); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if host, _ := p.Link.Host(); host != "example.com" {
		t.Errorf("Host() = %q", host)
	}
	if port, _ := p.Link.Port(); port != 443 {
		t.Errorf("Port() = %d", port)
	}

	if err := json.Unmarshal([]byte(`{"link":42}`), &p); err == nil {
		t.Errorf("expected an error for a non-string link")
	}
}
