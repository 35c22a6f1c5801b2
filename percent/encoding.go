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

// Package percent implements the percent-encoding of RFC 3986, Section 2.1,
// and its "www-form" variant where a space travels as '+'.
//
// Encoding works on raw bytes and takes a predicate deciding which bytes are
// written as-is. Decoding is strict: a '%' that is not followed by two
// hexadecimal digits is an error, never repaired. Decoded output is a byte
// sequence; no UTF-8 validation is performed.
package percent

import (
	"strings"
)

// Encode percent-encodes every byte of b for which isLiteral returns false.
// A nil isLiteral means IsUnescaped. Escapes use upper-case hexadecimal digits.
func Encode(b []byte, isLiteral func(byte) bool) string {
	if isLiteral == nil {
		isLiteral = IsUnescaped
	}
	var builder strings.Builder
	builder.Grow(len(b))
	for _, c := range b {
		if isLiteral(c) {
			builder.WriteByte(c)
			continue
		}
		writeEscape(&builder, c)
	}
	return builder.String()
}

// EncodeString is Encode for a string input.
func EncodeString(s string, isLiteral func(byte) bool) string {
	return Encode([]byte(s), isLiteral)
}

// Decode reverses Encode. It returns the raw octets, so multi-byte sequences
// escaped one byte at a time come back intact. A '%' that is not followed by
// two hexadecimal digits yields a *DecodeError wrapping ErrMalformedEncoding.
func Decode(s string) ([]byte, error) {
	return appendDecoded(make([]byte, 0, len(s)), s, 0)
}

// DecodeString is Decode returning a string.
func DecodeString(s string) (string, error) {
	b, err := Decode(s)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// EncodeWWWForm encodes s for use in an application/x-www-form-urlencoded
// body or query: only unreserved bytes stay literal and a space becomes '+'.
func EncodeWWWForm(s string) string {
	var builder strings.Builder
	builder.Grow(len(s))
	for i := range len(s) {
		c := s[i]
		switch {
		case IsUnreserved(c):
			builder.WriteByte(c)
		case c == ' ':
			builder.WriteByte('+')
		default:
			writeEscape(&builder, c)
		}
	}
	return builder.String()
}

// DecodeWWWForm reverses EncodeWWWForm. The input is split on '+' first, each
// piece is percent-decoded on its own and the pieces are joined by a single
// space, so "a++b" becomes "a  b" while "%2B" stays a literal '+'.
func DecodeWWWForm(s string) (string, error) {
	out := make([]byte, 0, len(s))
	base := 0
	for i, segment := range strings.Split(s, "+") {
		if i > 0 {
			out = append(out, ' ')
		}
		var err error
		out, err = appendDecoded(out, segment, base)
		if err != nil {
			return "", err
		}
		base += len(segment) + 1
	}
	return string(out), nil
}

// appendDecoded decodes s onto out. base is the offset of s within the
// caller's input, used to report errors against the original string.
func appendDecoded(out []byte, s string, base int) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '%' {
			out = append(out, c)
			continue
		}
		if i+2 >= len(s) || !isASCIIHexDigit(s[i+1]) || !isASCIIHexDigit(s[i+2]) {
			return nil, newDecodeError(s, i, base)
		}
		out = append(out, unhex(s[i+1])<<4|unhex(s[i+2]))
		i += 2
	}
	return out, nil
}

// writeEscape writes the "%XX" form of c.
func writeEscape(b *strings.Builder, c byte) {
	b.WriteByte('%')
	b.WriteByte(upperHex[c>>4])
	b.WriteByte(upperHex[c&0x0F])
}
