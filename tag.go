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
	"encoding/json"
	"strings"

	"github.com/lexigraph/langtags/registry"
)

// Tag is a fully resolved language tag: the ordered sequence of registry
// records matched from one input string. The order is the capture order of
// the grammar (language, extlangs, script, region, variants, extensions,
// private-use); grandfathered and private-use-only inputs resolve to a
// single record. A Tag is never empty and never modified after resolution;
// its records are shared with the Registry and must be treated as
// read-only.
type Tag struct {
	subtags []*registry.Subtag
}

// Len returns the number of resolved records.
func (t *Tag) Len() int {
	return len(t.subtags)
}

// At returns the record at position i in capture order. Negative positions
// count from the end: -1 is the last record. Positions outside [-Len, Len)
// return ErrIndexOutOfRange.
func (t *Tag) At(i int) (*registry.Subtag, error) {
	if i < 0 {
		i += len(t.subtags)
	}
	if i < 0 || i >= len(t.subtags) {
		return nil, ErrIndexOutOfRange
	}
	return t.subtags[i], nil
}

// Subtags returns a copy of the resolved records in capture order.
func (t *Tag) Subtags() []*registry.Subtag {
	out := make([]*registry.Subtag, len(t.subtags))
	copy(out, t.subtags)
	return out
}

// ByKind returns the first resolved record of the given kind. The second
// result is false when the tag has no component of that kind; asking for a
// kind a tag can never carry is not an error, just absent.
func (t *Tag) ByKind(kind registry.Kind) (*registry.Subtag, bool) {
	for _, s := range t.subtags {
		if s.Kind == kind {
			return s, true
		}
	}
	return nil, false
}

// allOfKind collects every resolved record of one kind, in capture order.
func (t *Tag) allOfKind(kind registry.Kind) []*registry.Subtag {
	var out []*registry.Subtag
	for _, s := range t.subtags {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}

// Language returns the primary language record, absent for grandfathered
// and private-use-only tags.
func (t *Tag) Language() (*registry.Subtag, bool) {
	return t.ByKind(registry.KindLanguage)
}

// Extlangs returns the extended language records, in capture order.
func (t *Tag) Extlangs() []*registry.Subtag {
	return t.allOfKind(registry.KindExtlang)
}

// Script returns the script record, if the tag has one.
func (t *Tag) Script() (*registry.Subtag, bool) {
	return t.ByKind(registry.KindScript)
}

// Region returns the region record, if the tag has one.
func (t *Tag) Region() (*registry.Subtag, bool) {
	return t.ByKind(registry.KindRegion)
}

// Variants returns the variant records, in capture order.
func (t *Tag) Variants() []*registry.Subtag {
	return t.allOfKind(registry.KindVariant)
}

// Extensions returns the records synthesized for the tag's extension
// sequences, in capture order.
func (t *Tag) Extensions() []*registry.Subtag {
	return t.allOfKind(registry.KindExtension)
}

// PrivateUse returns the record synthesized for the tag's private-use
// sequence, whether trailing or the whole tag.
func (t *Tag) PrivateUse() (*registry.Subtag, bool) {
	return t.ByKind(registry.KindPrivateUse)
}

// Grandfathered returns the whole-tag record of a grandfathered (or
// redundant) form.
func (t *Tag) Grandfathered() (*registry.Subtag, bool) {
	if rec, ok := t.ByKind(registry.KindGrandfathered); ok {
		return rec, true
	}
	return t.ByKind(registry.KindRedundant)
}

// String reconstructs the tag's textual form: the display form of every
// record, joined with hyphens. Regions render uppercase, scripts
// title-case, everything else lowercase, so the result is the
// case-canonical spelling of the input and resolving it again yields the
// same string. It implements fmt.Stringer.
func (t *Tag) String() string {
	var b strings.Builder
	for i, s := range t.subtags {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// MarshalJSON encodes the tag as its textual form. It implements the
// json.Marshaler interface.
//
// There is deliberately no UnmarshalJSON: decoding would need a registry to
// validate against, and a Tag does not carry one. Unmarshal into a string
// and resolve it with a long-lived Resolver instead.
func (t *Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}
