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

// Package registry loads the IANA Language Subtag Registry into an in-memory
// index and answers lookups against it.
//
// A Registry is built exactly once from a snapshot of the registry file,
// either bytes supplied by the caller (Load) or the snapshot embedded in
// this package (Embedded). After Load returns, the Registry and every Subtag
// record reachable from it are read-only; concurrent lookups from any number
// of goroutines need no synchronization.
package registry

import (
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"
)

// Kind identifies the registry record type of a subtag, using the same
// terminology as the Type field of the IANA language-subtag-registry.
// KindPrivateUse and KindExtension never occur in the registry file; records
// of those kinds are synthesized from matched tag text.
type Kind int

const (
	KindLanguage Kind = iota + 1
	KindExtlang
	KindScript
	KindRegion
	KindVariant
	KindGrandfathered
	KindRedundant
	KindPrivateUse
	KindExtension
)

// kindNames maps registry Type field values (lowercased) to kinds. Only the
// kinds that actually occur in the registry file appear here.
var kindNames = map[string]Kind{
	"language":      KindLanguage,
	"extlang":       KindExtlang,
	"script":        KindScript,
	"region":        KindRegion,
	"variant":       KindVariant,
	"grandfathered": KindGrandfathered,
	"redundant":     KindRedundant,
}

// kindFromType resolves a registry Type field value, case-insensitively.
func kindFromType(s string) (Kind, bool) {
	k, ok := kindNames[strings.ToLower(s)]
	return k, ok
}

// valid reports whether k is one of the defined Kind values.
func (k Kind) valid() bool {
	return k >= KindLanguage && k <= KindExtension
}

// String returns the registry spelling of the kind, or "private-use" and
// "extension" for the two synthesized kinds.
func (k Kind) String() string {
	switch k {
	case KindLanguage:
		return "language"
	case KindExtlang:
		return "extlang"
	case KindScript:
		return "script"
	case KindRegion:
		return "region"
	case KindVariant:
		return "variant"
	case KindGrandfathered:
		return "grandfathered"
	case KindRedundant:
		return "redundant"
	case KindPrivateUse:
		return "private-use"
	case KindExtension:
		return "extension"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ErrInvalidKind is returned by Registry.All when asked to enumerate a value
// that is not a defined Kind.
var ErrInvalidKind = errors.New("not a recognized registry kind")

// Subtag is one record of the registry, or a record synthesized for a
// private-use or extension match. Exactly one of the Subtag and Tag fields
// is set: single-subtag records (language, extlang, script, region, variant)
// carry Subtag, whole-tag records (grandfathered, redundant, and everything
// synthesized) carry Tag. Field spellings keep the registry's exact case.
//
// Records are shared between the Registry index and every language tag
// resolved against it, and must not be modified.
type Subtag struct {
	Kind           Kind      `json:"kind"`
	Subtag         string    `json:"subtag,omitempty"`
	Tag            string    `json:"tag,omitempty"`
	Description    string    `json:"description,omitempty"`
	Comments       string    `json:"comments,omitempty"`
	Added          time.Time `json:"added,omitzero"`
	Deprecated     time.Time `json:"deprecated,omitzero"`
	PreferredValue string    `json:"preferredValue,omitempty"`
	SuppressScript string    `json:"suppressScript,omitempty"`
	Macrolanguage  string    `json:"macrolanguage,omitempty"`
	Scope          string    `json:"scope,omitempty"`
	Prefix         []string  `json:"prefix,omitempty"`
}

// Value returns the record's identity: the Subtag field when present,
// otherwise the Tag field.
func (s *Subtag) Value() string {
	if s.Subtag != "" {
		return s.Subtag
	}
	return s.Tag
}

// IsDeprecated reports whether the record carries a Deprecated date.
func (s *Subtag) IsDeprecated() bool {
	return !s.Deprecated.IsZero()
}

// String returns the display form of the record's identity with the casing
// conventions of RFC 5646: regions uppercase, scripts title-case, everything
// else lowercase.
func (s *Subtag) String() string {
	v := s.Value()
	switch s.Kind {
	case KindRegion:
		return strings.ToUpper(v)
	case KindScript:
		return titleCase(v)
	default:
		return strings.ToLower(v)
	}
}

// PrivateUse synthesizes a record for a matched private-use sequence. The
// literal matched text becomes the record's Tag; nothing is looked up or
// stored in any index.
func PrivateUse(text string) *Subtag {
	return &Subtag{Kind: KindPrivateUse, Tag: text}
}

// Extension synthesizes a record for a matched extension sequence, analogous
// to PrivateUse.
func Extension(text string) *Subtag {
	return &Subtag{Kind: KindExtension, Tag: text}
}

// titleCase uppercases the first byte of an ASCII subtag and lowercases the
// rest (e.g. "latn" -> "Latn").
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}

// Registry is the loaded subtag database: an index from (kind, lowercase
// identity) to the record. It is immutable after Load.
type Registry struct {
	fileDate time.Time
	records  map[Kind]map[string]*Subtag
}

// FileDate returns the File-Date header of the loaded snapshot.
func (r *Registry) FileDate() time.Time {
	return r.fileDate
}

// Find looks up the record of the given kind whose subtag (or whole tag, for
// grandfathered and redundant records) equals text, ignoring case. The
// second result is false when no such record is registered.
func (r *Registry) Find(kind Kind, text string) (*Subtag, bool) {
	rec, ok := r.records[kind][strings.ToLower(text)]
	return rec, ok
}

// All returns an iterator over every record of the given kind, in
// unspecified order. The sequence is finite and may be ranged over any
// number of times. Enumerating KindPrivateUse or KindExtension yields an
// empty sequence, since records of those kinds are never stored; a value
// that is not a defined Kind at all returns ErrInvalidKind.
func (r *Registry) All(kind Kind) (iter.Seq[*Subtag], error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidKind, int(kind))
	}
	return func(yield func(*Subtag) bool) {
		for _, rec := range r.records[kind] {
			if !yield(rec) {
				return
			}
		}
	}, nil
}
