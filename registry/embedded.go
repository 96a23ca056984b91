/*
Copyright 2026 Langtags Authors

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

package registry

import (
	"bytes"
	_ "embed" // Note the blank import for go:embed
	"errors"
)

//go:embed language-subtag-registry
var embeddedSnapshot []byte

// Embedded builds a Registry from the language-subtag-registry snapshot
// compiled into this package, so the library works with no external files.
// The snapshot is a point-in-time copy of the IANA registry; FileDate
// reports which point in time. Callers tracking the registry themselves
// should use Load with their own snapshot bytes instead.
//
// Embedded parses the whole snapshot on every call. Call it once at startup
// and share the result.
func Embedded() (*Registry, error) {
	if len(embeddedSnapshot) == 0 {
		return nil, errors.New("embedded language-subtag-registry snapshot is empty or not found")
	}
	return Load(bytes.NewReader(embeddedSnapshot))
}
