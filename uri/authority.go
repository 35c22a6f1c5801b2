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

// authorityParts holds the pieces of an authority. host is always set, even
// when empty; userinfo and port may be absent.
type authorityParts struct {
	userinfo    string
	hasUserinfo bool
	host        string
	port        int
	hasPort     bool
}

// splitAuthority parses an authority string into its userinfo, host, and port.
// It never fails: whatever does not fit is dropped.
func splitAuthority(authority string) authorityParts {
	var parts authorityParts

	hostport := authority
	if at := strings.LastIndex(authority, "@"); at != -1 {
		parts.userinfo = authority[:at]
		parts.hasUserinfo = true
		hostport = authority[at+1:]
	}

	var port string
	var hasColon bool
	if end := strings.IndexByte(hostport, ']'); strings.HasPrefix(hostport, "[") && end != -1 {
		// IP literal, brackets stripped.
		parts.host = hostport[1:end]
		port, hasColon = strings.CutPrefix(hostport[end+1:], ":")
	} else {
		parts.host, port, hasColon = strings.Cut(hostport, ":")
	}

	if hasColon {
		parts.port, parts.hasPort = parsePort(port)
	}
	return parts
}

// parsePort reads the leading decimal digits of s. It reports false when
// there are none or when they overflow an int.
func parsePort(s string) (int, bool) {
	end := 0
	for end < len(s) && isASCIIDigit(s[end]) {
		end++
	}
	if end == 0 {
		return 0, false
	}
	port, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return port, true
}

// String rebuilds the authority as [userinfo@]host[:port].
func (a authorityParts) String() string {
	var b strings.Builder
	if a.hasUserinfo {
		b.WriteString(a.userinfo)
		b.WriteByte('@')
	}
	b.WriteString(a.host)
	if a.hasPort {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(a.port))
	}
	return b.String()
}

// isASCIIDigit checks if a byte is an ASCII digit.
func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}
