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

package langtags

import (
	"errors"
	"fmt"
)

// ErrIndexOutOfRange is returned by Tag.At for positions outside
// [-Len, Len).
var ErrIndexOutOfRange = errors.New("subtag index out of range")

// MalformedTagError reports that an input string does not match the BCP 47
// grammar at all. Tag carries the offending input; the wrapped error, when
// present, is the grammar-level reason from the bcp47 package.
type MalformedTagError struct {
	Tag string
	Err error
}

func (e *MalformedTagError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed language tag %q: %v", e.Tag, e.Err)
	}
	return fmt.Sprintf("malformed language tag %q", e.Tag)
}

// Unwrap exposes the grammar-level cause for errors.Is and errors.As.
func (e *MalformedTagError) Unwrap() error {
	return e.Err
}

// InvalidSubtagError reports that a tag is well-formed but one of its
// subtags is not in the loaded registry. Subtag carries the offending
// captured text.
type InvalidSubtagError struct {
	Subtag string
}

func (e *InvalidSubtagError) Error() string {
	return fmt.Sprintf("subtag %q is not in the language subtag registry", e.Subtag)
}
