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
	"fmt"

	"github.com/pkg/errors"
)

// ErrMalformedEncoding is returned when a '%' is not followed by two
// hexadecimal digits, including when the input ends early.
var ErrMalformedEncoding = errors.New("malformed percent encoding")

// DecodeError describes where a percent escape went wrong. It unwraps to
// ErrMalformedEncoding.
type DecodeError struct {
	// Offset is the byte offset of the offending '%' in the decoded input.
	Offset int
	// Escape holds the '%' and whatever followed it, at most two bytes.
	Escape string
}

// Error formats the offending escape and its position.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s '%s' at offset %d", ErrMalformedEncoding.Error(), e.Escape, e.Offset)
}

// Unwrap provides compatibility with errors.Is(err, ErrMalformedEncoding).
func (e *DecodeError) Unwrap() error {
	return ErrMalformedEncoding
}

// newDecodeError captures the escape starting at offset i of s.
func newDecodeError(s string, i, base int) *DecodeError {
	end := min(i+3, len(s))
	return &DecodeError{Offset: base + i, Escape: s[i:end]}
}
