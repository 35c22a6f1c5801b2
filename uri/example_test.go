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

package uri_test

import (
	"fmt"

	"github.com/jplu/urikit/uri"
)

func ExampleParse() {
	u := uri.Parse("HTTP://user@elixir-lang.org:80/docs?v=1#top")

	scheme, _ := u.Scheme()
	host, _ := u.Host()
	port, _ := u.Port()
	authority, _ := u.Authority()
	fmt.Println(scheme, host, port, authority)
	fmt.Println(u)
	// Output:
	// http elixir-lang.org 80 user@elixir-lang.org:80
	// http://user@elixir-lang.org/docs?v=1#top
}

func ExampleRegistry_Register() {
	registry := uri.NewRegistry()
	if err := registry.Register("gopher", 70); err != nil {
		panic(err)
	}
	p := uri.Parser{Registry: registry}

	port, _ := p.Parse("gopher://example.org/").Port()
	fmt.Println(port)
	// Output: 70
}
