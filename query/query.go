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

// Package query serializes key/value pairs to a www-form query string and
// decodes query strings back, either eagerly into a map or lazily one pair
// at a time.
package query

import (
	"fmt"
	"iter"
	"reflect"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/jplu/urikit/percent"
)

// ErrInvalidArgument is returned when a key or value cannot be rendered as a
// query component, such as a slice or a map.
var ErrInvalidArgument = errors.New("invalid query argument")

// Pair is a single key/value pair to encode. Key and Value may be any scalar:
// strings, numbers, booleans, fmt.Stringer implementations, or pointers to
// them. A nil Value, or a nil pointer, is rendered as the empty string.
type Pair struct {
	Key   any
	Value any
}

// Value is a decoded query value. Set is false when the segment had no '=',
// as for "flag" in "flag&a=1".
type Value struct {
	Str string
	Set bool
}

// Field is a decoded key and its value, as produced by Pairs.
type Field struct {
	Key   string
	Value Value
}

// Encode renders pairs as "key=value" joined by '&', in the given order, both
// sides www-form encoded.
func Encode(pairs []Pair) (string, error) {
	var builder strings.Builder
	for i, p := range pairs {
		key, err := stringify(p.Key)
		if err != nil {
			return "", errors.Wrapf(err, "key of pair %d", i)
		}
		value, err := stringify(p.Value)
		if err != nil {
			return "", errors.Wrapf(err, "value of pair %d (key %q)", i, key)
		}
		if i > 0 {
			builder.WriteByte('&')
		}
		builder.WriteString(percent.EncodeWWWForm(key))
		builder.WriteByte('=')
		builder.WriteString(percent.EncodeWWWForm(value))
	}
	return builder.String(), nil
}

// EncodeMap is Encode for a map. Keys are emitted in sorted order.
func EncodeMap(m map[string]any) (string, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	pairs := make([]Pair, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, Pair{Key: k, Value: m[k]})
	}
	return Encode(pairs)
}

// Decode decodes a query string into a map. When a key repeats, the last
// occurrence wins.
func Decode(s string) (map[string]Value, error) {
	out := make(map[string]Value)
	for f, err := range Pairs(s) {
		if err != nil {
			return nil, err
		}
		out[f.Key] = f.Value
	}
	return out, nil
}

// Pairs returns a lazy sequence over the '&'-separated segments of s. Each
// segment is split on its first '=' and both parts are www-form decoded. The
// sequence stops after yielding the first decoding error. Ranging over it
// again starts from the beginning of s.
//
// An empty s yields nothing, and a trailing '&' does not produce an empty
// pair; an empty segment in the middle ("a&&b") yields an empty key with no
// value.
func Pairs(s string) iter.Seq2[Field, error] {
	return func(yield func(Field, error) bool) {
		rest := s
		for rest != "" {
			var segment string
			segment, rest, _ = strings.Cut(rest, "&")

			f, err := decodeSegment(segment)
			if !yield(f, err) || err != nil {
				return
			}
		}
	}
}

// decodeSegment decodes a single "key=value" or "key" segment.
func decodeSegment(segment string) (Field, error) {
	rawKey, rawValue, hasValue := strings.Cut(segment, "=")
	key, err := percent.DecodeWWWForm(rawKey)
	if err != nil {
		return Field{}, errors.Wrapf(err, "query key %q", rawKey)
	}
	if !hasValue {
		return Field{Key: key}, nil
	}
	value, err := percent.DecodeWWWForm(rawValue)
	if err != nil {
		return Field{}, errors.Wrapf(err, "query value of %q", key)
	}
	return Field{Key: key, Value: Value{Str: value, Set: true}}, nil
}

// stringify renders a scalar as text. Lists and maps are rejected, also
// behind a pointer.
func stringify(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && rv.IsNil() {
		return "", nil
	}
	switch t := v.(type) {
	case string:
		return t, nil
	case fmt.Stringer:
		return t.String(), nil
	}
	switch reflect.Indirect(rv).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return "", errors.Wrapf(ErrInvalidArgument, "%T is not a scalar", v)
	default:
		return fmt.Sprint(reflect.Indirect(rv).Interface()), nil
	}
}
