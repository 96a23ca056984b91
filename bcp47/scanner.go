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

package bcp47

import "strings"

// Grammar constants from RFC 5646 Section 2.1.
const (
	maxSubtagLen       = 8 // Maximum length of any subtag.
	maxExtlangs        = 3 // The extlang production repeats at most three times.
	extlangLen         = 3 // An extended language subtag is always 3 letters.
	scriptLen          = 4 // A script subtag is always 4 letters.
	regionAlphaLen     = 2 // An alphabetic region subtag is always 2 letters.
	regionNumericLen   = 3 // A numeric region subtag is always 3 digits.
	shortLanguageLen   = 3 // Max length of a primary language that extlangs may follow.
	minVariantLenAlpha = 5 // Min length of a variant starting with a letter.
	minVariantLenDigit = 4 // Min length of a variant starting with a digit.
)

// parseState tracks which productions are still reachable at the current
// position of the scan. States are ordered; a production is admissible only
// while the state has not advanced past it.
type parseState int

const (
	stateAfterLanguage parseState = iota // 2-3 letter primary language seen; extlangs still allowed.
	stateAfterExtlang                    // Extlangs no longer allowed; script is next.
	stateAfterScript                     // Script consumed; region is next.
	stateAfterRegion                     // Region consumed; variants are next.
	stateInVariant                       // Inside a run of variant subtags.
	stateInExtension                     // Inside an extension sequence (after a singleton).
	stateInPrivateUse                    // Inside the trailing private-use sequence.
)

// scanner walks the hyphen-split subtags of a candidate tag once, front to
// back, assigning each subtag to the first production still admissible in
// the current state. The admission order (extlang, script, region, variant)
// is the alternation order of the ABNF, which the subtag lengths keep
// unambiguous.
type scanner struct {
	subtags []string
	parts   Parts
	state   parseState

	extension  []string // subtags of the extension sequence being collected
	privateUse []string // "x" plus the private-use subtags that follow it
	pendingExt bool     // a singleton was seen but no subtag has followed yet
}

func (sc *scanner) run() error {
	if err := sc.primaryLanguage(sc.subtags[0]); err != nil {
		return err
	}
	for _, subtag := range sc.subtags[1:] {
		if err := sc.next(subtag); err != nil {
			return err
		}
	}
	return sc.finish()
}

// primaryLanguage consumes the mandatory first subtag. Two to three letters
// admit following extlangs; four letters (reserved for future use) and five
// to eight letters do not.
func (sc *scanner) primaryLanguage(subtag string) error {
	if len(subtag) < 2 || !isAlphabetic(subtag) {
		return ErrBadPrimaryLanguage
	}
	sc.parts.Language = subtag
	sc.state = stateAfterExtlang
	if len(subtag) <= shortLanguageLen {
		sc.state = stateAfterLanguage
	}
	return nil
}

// next dispatches one subtag after the primary language.
func (sc *scanner) next(subtag string) error {
	switch sc.state {
	case stateInPrivateUse:
		sc.privateUse = append(sc.privateUse, subtag)
		return nil
	case stateInExtension:
		return sc.extensionSubtag(subtag)
	default:
	}

	if len(subtag) == 1 {
		return sc.singleton(subtag)
	}
	if sc.state == stateAfterLanguage && len(sc.parts.Extlangs) < maxExtlangs &&
		len(subtag) == extlangLen && isAlphabetic(subtag) {
		sc.parts.Extlangs = append(sc.parts.Extlangs, subtag)
		return nil
	}
	if sc.state <= stateAfterExtlang && len(subtag) == scriptLen && isAlphabetic(subtag) {
		sc.parts.Script = subtag
		sc.state = stateAfterScript
		return nil
	}
	if sc.state <= stateAfterScript && isRegion(subtag) {
		sc.parts.Region = subtag
		sc.state = stateAfterRegion
		return nil
	}
	if sc.state <= stateInVariant && isVariant(subtag) {
		sc.parts.Variants = append(sc.parts.Variants, subtag)
		sc.state = stateInVariant
		return nil
	}
	return ErrMisplacedSubtag
}

// singleton consumes a one-character subtag, which opens either the trailing
// private-use sequence ('x') or an extension sequence (any other letter or
// digit).
func (sc *scanner) singleton(subtag string) error {
	if sc.pendingExt {
		return ErrEmptyExtension
	}
	sc.flushExtension()
	if subtag[0] == 'x' || subtag[0] == 'X' {
		sc.state = stateInPrivateUse
		sc.privateUse = []string{subtag}
		return nil
	}
	sc.state = stateInExtension
	sc.pendingExt = true
	sc.extension = []string{subtag}
	return nil
}

// extensionSubtag consumes one subtag while inside an extension sequence. A
// one-character subtag closes the current sequence and opens the next one;
// anything longer (the split already bounds it to eight characters) extends
// the sequence.
func (sc *scanner) extensionSubtag(subtag string) error {
	if len(subtag) == 1 {
		return sc.singleton(subtag)
	}
	sc.extension = append(sc.extension, subtag)
	sc.pendingExt = false
	return nil
}

// flushExtension finalizes the extension sequence being collected, if any.
func (sc *scanner) flushExtension() {
	if len(sc.extension) == 0 {
		return
	}
	sc.parts.Extensions = append(sc.parts.Extensions, strings.Join(sc.extension, "-"))
	sc.extension = nil
}

// finish validates the state the scan ended in and materializes the
// trailing captures.
func (sc *scanner) finish() error {
	if sc.pendingExt {
		return ErrEmptyExtension
	}
	sc.flushExtension()
	if sc.state == stateInPrivateUse {
		if len(sc.privateUse) < 2 {
			return ErrEmptyPrivateUse
		}
		sc.parts.PrivateUse = strings.Join(sc.privateUse, "-")
	}
	return nil
}

// isRegion reports whether subtag has the shape of a region: two letters or
// three digits.
func isRegion(subtag string) bool {
	return (len(subtag) == regionAlphaLen && isAlphabetic(subtag)) ||
		(len(subtag) == regionNumericLen && isNumeric(subtag))
}

// isVariant reports whether subtag has the shape of a variant: five to
// eight alphanumerics, or a digit followed by three alphanumerics.
func isVariant(subtag string) bool {
	if !isAlphanumeric(subtag) {
		return false
	}
	if len(subtag) >= minVariantLenAlpha {
		return true
	}
	return len(subtag) == minVariantLenDigit && isDigit(subtag[0])
}
