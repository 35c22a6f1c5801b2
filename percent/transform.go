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

import (
	"golang.org/x/text/transform"
)

// escapeLength is the length of a "%XX" escape.
const escapeLength = 3

// NewEncoder returns a transform.Transformer that percent-encodes its input
// exactly as Encode does. A nil isLiteral means IsUnescaped.
func NewEncoder(isLiteral func(byte) bool) transform.Transformer {
	if isLiteral == nil {
		isLiteral = IsUnescaped
	}
	return &encoder{isLiteral: isLiteral}
}

// NewDecoder returns a transform.Transformer that decodes percent escapes
// exactly as Decode does. Errors are *DecodeError values whose Offset counts
// bytes from the last Reset.
func NewDecoder() transform.Transformer {
	return &decoder{}
}

type encoder struct {
	transform.NopResetter
	isLiteral func(byte) bool
}

// Transform implements transform.Transformer.
func (e *encoder) Transform(dst, src []byte, _ bool) (int, int, error) {
	nDst, nSrc := 0, 0
	for nSrc < len(src) {
		c := src[nSrc]
		if e.isLiteral(c) {
			if nDst >= len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
		} else {
			if nDst+escapeLength > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = '%'
			dst[nDst+1] = upperHex[c>>4]
			dst[nDst+2] = upperHex[c&0x0F]
			nDst += escapeLength
		}
		nSrc++
	}
	return nDst, nSrc, nil
}

type decoder struct {
	// consumed counts the source bytes accepted by earlier calls.
	consumed int
}

// Reset implements transform.Transformer.
func (d *decoder) Reset() { d.consumed = 0 }

// Transform implements transform.Transformer.
func (d *decoder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	nDst, nSrc := 0, 0
	defer func() { d.consumed += nSrc }()

	for nSrc < len(src) {
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		c := src[nSrc]
		if c != '%' {
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		if nSrc+2 >= len(src) && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if nSrc+2 >= len(src) || !isASCIIHexDigit(src[nSrc+1]) || !isASCIIHexDigit(src[nSrc+2]) {
			escape := string(src[nSrc:min(nSrc+escapeLength, len(src))])
			return nDst, nSrc, newDecodeError(escape, 0, d.consumed+nSrc)
		}
		dst[nDst] = unhex(src[nSrc+1])<<4 | unhex(src[nSrc+2])
		nDst++
		nSrc += escapeLength
	}
	return nDst, nSrc, nil
}
