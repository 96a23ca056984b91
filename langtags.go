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

// Package langtags validates and decomposes IETF BCP 47 language tags
// (RFC 5646) against the IANA Language Subtag Registry.
//
// Validation happens in two stages. The syntactic stage asks whether a
// string is well-formed, i.e. matches the BCP 47 grammar; it is implemented
// by the bcp47 package and needs no registry data. The semantic stage
// resolves every captured component against a loaded registry snapshot and
// rejects subtags that are well-formed but unregistered. A successfully
// resolved tag is an immutable sequence of registry records with named
// accessors for each component and all of the registry's metadata
// (descriptions, deprecation, preferred values, prefixes and so on).
//
// A Resolver carries the registry it validates against. Hosts construct the
// registry once at startup, either from the snapshot embedded in the
// registry package or from their own snapshot bytes:
//
//	reg, err := registry.Embedded()
//	if err != nil {
//		// no semantic validation is possible without a registry
//	}
//	res := langtags.NewResolver(reg)
//	tag, err := res.Resolve("zh-Hant-CN")
//
// Resolvers and resolved tags are immutable and safe for concurrent use.
package langtags

import (
	"strings"

	"github.com/lexigraph/langtags/bcp47"
	"github.com/lexigraph/langtags/registry"
)

// Normalize rewrites the '_' and '/' separators of common non-compliant tag
// sources (POSIX locale names, Accept-Language mangling) to the '-' the
// grammar requires. It performs no other repair.
func Normalize(tag string) string {
	tag = strings.ReplaceAll(tag, "_", "-")
	return strings.ReplaceAll(tag, "/", "-")
}

// IsWellFormed reports whether tag matches the BCP 47 grammar. It is purely
// syntactic, needs no registry, and therefore keeps working even when no
// registry snapshot could be loaded.
func IsWellFormed(tag string) bool {
	return bcp47.IsWellFormed(tag)
}

// Resolver validates language tags against a loaded registry. It holds no
// mutable state; a single Resolver may be shared freely across goroutines.
type Resolver struct {
	reg *registry.Registry
}

// NewResolver returns a Resolver that validates against reg. The registry
// must be non-nil and is treated as read-only.
func NewResolver(reg *registry.Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Resolve matches tag against the BCP 47 grammar and resolves every
// captured component in the registry, returning the assembled Tag.
//
// Resolution is atomic: it either returns a complete Tag or exactly one
// typed error. A grammar rejection yields a *MalformedTagError carrying the
// input; the first captured component missing from the registry yields an
// *InvalidSubtagError carrying the offending subtag text, and no partial
// Tag. Private-use and extension sequences are never looked up; records for
// them are synthesized from the matched text.
func (r *Resolver) Resolve(tag string) (*Tag, error) {
	parts, err := bcp47.Recognize(tag)
	if err != nil {
		return nil, &MalformedTagError{Tag: tag, Err: err}
	}

	if parts.Grandfathered != "" {
		return r.resolveWholeTag(parts.Grandfathered)
	}

	var subtags []*registry.Subtag
	lookup := func(kind registry.Kind, text string) error {
		rec, ok := r.reg.Find(kind, text)
		if !ok {
			return &InvalidSubtagError{Subtag: text}
		}
		subtags = append(subtags, rec)
		return nil
	}

	if parts.Language != "" {
		if err := lookup(registry.KindLanguage, parts.Language); err != nil {
			return nil, err
		}
		for _, extlang := range parts.Extlangs {
			if err := lookup(registry.KindExtlang, extlang); err != nil {
				return nil, err
			}
		}
		if parts.Script != "" {
			if err := lookup(registry.KindScript, parts.Script); err != nil {
				return nil, err
			}
		}
		if parts.Region != "" {
			if err := lookup(registry.KindRegion, parts.Region); err != nil {
				return nil, err
			}
		}
		for _, variant := range parts.Variants {
			if err := lookup(registry.KindVariant, variant); err != nil {
				return nil, err
			}
		}
		for _, extension := range parts.Extensions {
			subtags = append(subtags, registry.Extension(extension))
		}
	}
	if parts.PrivateUse != "" {
		subtags = append(subtags, registry.PrivateUse(parts.PrivateUse))
	}

	return &Tag{subtags: subtags}, nil
}

// resolveWholeTag resolves one of the fixed grandfathered forms. The
// grandfathered index is tried first, then the redundant one; both kinds
// identify records by the whole tag string.
func (r *Resolver) resolveWholeTag(tag string) (*Tag, error) {
	if rec, ok := r.reg.Find(registry.KindGrandfathered, tag); ok {
		return &Tag{subtags: []*registry.Subtag{rec}}, nil
	}
	if rec, ok := r.reg.Find(registry.KindRedundant, tag); ok {
		return &Tag{subtags: []*registry.Subtag{rec}}, nil
	}
	return nil, &InvalidSubtagError{Subtag: tag}
}

// ResolveNormalized is Resolve with the Normalize separator rewrite applied
// first, for callers fed by non-compliant tag sources.
func (r *Resolver) ResolveNormalized(tag string) (*Tag, error) {
	return r.Resolve(Normalize(tag))
}

// IsValid reports whether tag is well-formed and every one of its subtags is
// registered. It is the boolean convenience form of Resolve.
func (r *Resolver) IsValid(tag string) bool {
	_, err := r.Resolve(tag)
	return err == nil
}
