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

package percent

import "strings"

const (
	// reservedChars is the union of gen-delims and sub-delims from RFC 3986, Section 2.2.
	reservedChars = ":/?#[]@!$&'()*+,;="
	// upperHex is used to render the two digits of an escape.
	upperHex = "0123456789ABCDEF"
)

// isASCIILetter checks if a byte is an ASCII letter.
func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// isASCIIDigit checks if a byte is an ASCII digit.
func isASCIIDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// isASCIIHexDigit checks if a byte is an ASCII hexadecimal digit, in either case.
func isASCIIHexDigit(c byte) bool {
	return isASCIIDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// unhex returns the value of a hexadecimal digit. The caller must have checked
// it with isASCIIHexDigit.
func unhex(c byte) byte {
	switch {
	case isASCIIDigit(c):
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// IsReserved reports whether c is one of the RFC 3986 reserved characters
// `: / ? # [ ] @ ! $ & ' ( ) * + , ; =`.
func IsReserved(c byte) bool {
	return strings.IndexByte(reservedChars, c) >= 0
}

// IsUnreserved reports whether c is an ASCII letter, an ASCII digit, or one of `~ _ - .`.
func IsUnreserved(c byte) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '~' || c == '_' || c == '-' || c == '.'
}

// IsUnescaped reports whether c is left as-is by the default encoding, that is
// whether it is reserved or unreserved.
func IsUnescaped(c byte) bool {
	return IsReserved(c) || IsUnreserved(c)
}
