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
	"github.com/pkg/errors"

	"github.com/jplu/urikit/percent"
)

var (
	// ErrInvalidArgument is returned when registering a non-positive default port.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrMalformedEncoding is returned by the decoding helpers of URI. It is
	// the same value as percent.ErrMalformedEncoding.
	ErrMalformedEncoding = percent.ErrMalformedEncoding
)
