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

package query

import (
	"github.com/go-viper/mapstructure/v2"
	"github.com/pkg/errors"
)

// tagName is the struct tag read by Unmarshal.
const tagName = "query"

// Unmarshal decodes the query string s into v, which must be a pointer to a
// struct or a map. Fields are matched through their `query:"name"` tag and
// values are converted weakly, so "8080" fills an int and "1" or "true" fill a
// bool. A key without '=' decodes as the empty string.
func Unmarshal(s string, v any) error {
	values, err := Decode(s)
	if err != nil {
		return err
	}

	input := make(map[string]any, len(values))
	for k, val := range values {
		input[k] = val.Str
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           v,
		TagName:          tagName,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return errors.Wrap(ErrInvalidArgument, err.Error())
	}
	if err := decoder.Decode(input); err != nil {
		return errors.Wrap(err, "unmarshal query")
	}
	return nil
}
