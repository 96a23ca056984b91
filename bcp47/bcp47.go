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

// Package bcp47 implements the syntactic grammar of IETF BCP 47 language
// tags, as defined by the ABNF in RFC 5646 Section 2.1.
//
// The package answers a single question: is a string a well-formed language
// tag, and if so, what are its labeled components? It performs no registry
// lookups of any kind; whether a recognized subtag is actually registered
// with IANA is a separate, semantic question answered by the registry and
// langtags packages.
//
// Recognition is implemented as a hand-written, single-pass scanner over the
// hyphen-separated subtags rather than a regular expression. Every
// repetition in the grammar is bounded, the scan is anchored at both ends,
// and no backtracking is performed, so recognition runs in O(n) for any
// input.
package bcp47

import (
	"errors"
	"strings"
)

// Errors reported when a string fails to match the BCP 47 grammar.
var (
	ErrEmptyTag           = errors.New("a language tag must not be empty")
	ErrForbiddenChar      = errors.New("a language tag may only contain ASCII letters, digits and hyphens")
	ErrEmptySubtag        = errors.New("a subtag must not be empty")
	ErrSubtagTooLong      = errors.New("a subtag may be at most eight characters long")
	ErrBadPrimaryLanguage = errors.New("the primary language subtag must be two to eight letters")
	ErrMisplacedSubtag    = errors.New("a subtag is not allowed at its position in the tag")
	ErrEmptyExtension     = errors.New("an extension singleton must be followed by at least one subtag")
	ErrEmptyPrivateUse    = errors.New("the private-use singleton 'x' must be followed by at least one subtag")
)

// Parts holds the labeled captures of a well-formed language tag, split the
// way the RFC 5646 ABNF labels them. String fields are empty and slice
// fields are nil when the corresponding alternative did not participate in
// the match. Captured text keeps the case of the input; the grammar itself
// is case-insensitive.
//
// Exactly one of three shapes is populated: the regular langtag production
// (Language plus any of Extlangs, Script, Region, Variants, Extensions and a
// trailing PrivateUse sequence), a whole-tag Grandfathered form, or a
// private-use-only tag (PrivateUse set, everything else empty).
type Parts struct {
	Language      string
	Extlangs      []string
	Script        string
	Region        string
	Variants      []string
	Extensions    []string
	PrivateUse    string
	Grandfathered string
}

// Recognize matches tag against the whole-string BCP 47 grammar and returns
// its labeled components. A non-nil error means the tag is not well-formed;
// the error is one of the exported Err values of this package.
//
// The fixed grandfathered list is tried before the regular production.
// Several grandfathered tags (e.g. "zh-min-nan") would also match the
// regular grammar with a different split, so the list must take precedence
// for the capture to carry the intended meaning.
func Recognize(tag string) (Parts, error) {
	if tag == "" {
		return Parts{}, ErrEmptyTag
	}
	for _, r := range tag {
		// RFC 5646 Sec 2.1: US-ASCII letters, digits and "-" only.
		if !isTagChar(r) {
			return Parts{}, ErrForbiddenChar
		}
	}

	if isGrandfathered(tag) {
		return Parts{Grandfathered: tag}, nil
	}

	subtags := strings.Split(tag, "-")
	for _, subtag := range subtags {
		if subtag == "" {
			return Parts{}, ErrEmptySubtag
		}
		if len(subtag) > maxSubtagLen {
			return Parts{}, ErrSubtagTooLong
		}
	}

	if len(subtags[0]) == 1 && (subtags[0][0] == 'x' || subtags[0][0] == 'X') {
		if len(subtags) == 1 {
			return Parts{}, ErrEmptyPrivateUse
		}
		// Every following subtag is 1-8 alphanumerics, which the length
		// and character checks above already guarantee.
		return Parts{PrivateUse: tag}, nil
	}

	sc := scanner{subtags: subtags}
	if err := sc.run(); err != nil {
		return Parts{}, err
	}
	return sc.parts, nil
}

// IsWellFormed reports whether tag matches the BCP 47 grammar. It is the
// boolean convenience form of Recognize and needs no registry data.
func IsWellFormed(tag string) bool {
	_, err := Recognize(tag)
	return err == nil
}
