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

//nolint:testpackage // White-box tests sharing one resolver via TestMain.
package langtags

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// Registered subtags drawn from the embedded snapshot. Validity only checks
// registry membership, so any combination of these forms a valid tag.
//
//nolint:gochecknoglobals
var (
	genLanguage = rapid.SampledFrom([]string{"en", "de", "fr", "zh", "sl", "pt", "es", "ja", "ko", "ru"})
	genScript   = rapid.SampledFrom([]string{"Latn", "Hant", "Hans", "Cyrl", "Arab", "Grek"})
	genRegion   = rapid.SampledFrom([]string{"US", "DE", "FR", "CN", "BR", "JP", "419", "GB"})
	genVariant  = rapid.SampledFrom([]string{"1996", "1901", "rozaj", "biske", "abl1943", "valencia"})

	genExtSubtag = rapid.StringMatching("[a-z0-9]{2,8}")
	genPvtSubtag = rapid.StringMatching("[a-z0-9]{1,8}")
)

// genCased flips the case of each letter independently so resolution has to
// fold it back.
func genCased(t *rapid.T, s string) string {
	var b strings.Builder
	for _, r := range s {
		if rapid.Bool().Draw(t, "flip") {
			b.WriteString(strings.ToUpper(string(r)))
		} else {
			b.WriteString(strings.ToLower(string(r)))
		}
	}
	return b.String()
}

func TestResolve_RoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		parts := []string{genLanguage.Draw(t, "language")}
		if rapid.Bool().Draw(t, "hasScript") {
			parts = append(parts, genScript.Draw(t, "script"))
		}
		if rapid.Bool().Draw(t, "hasRegion") {
			parts = append(parts, genRegion.Draw(t, "region"))
		}
		for range rapid.IntRange(0, 2).Draw(t, "variantCount") {
			parts = append(parts, genVariant.Draw(t, "variant"))
		}
		if rapid.Bool().Draw(t, "hasExtension") {
			singleton := rapid.StringMatching("[a-wyz]").Draw(t, "singleton")
			parts = append(parts, singleton)
			for range rapid.IntRange(1, 2).Draw(t, "extSubtagCount") {
				parts = append(parts, genExtSubtag.Draw(t, "extSubtag"))
			}
		}
		if rapid.Bool().Draw(t, "hasPrivateUse") {
			parts = append(parts, "x")
			for range rapid.IntRange(1, 2).Draw(t, "pvtSubtagCount") {
				parts = append(parts, genPvtSubtag.Draw(t, "pvtSubtag"))
			}
		}

		input := genCased(t, strings.Join(parts, "-"))
		require.True(t, IsWellFormed(input), "generated tag %q must be well-formed", input)

		tag, err := res.Resolve(input)
		require.NoError(t, err, "Resolve(%q)", input)
		require.Equal(t, len(parts), tag.Len()+countExtensionSubtags(parts),
			"one record per capture for %q", input)

		// The reconstruction is case-canonical and a fixed point.
		out := tag.String()
		require.True(t, strings.EqualFold(input, out), "%q vs %q", input, out)
		require.True(t, IsWellFormed(out))

		again, err := res.Resolve(out)
		require.NoError(t, err)
		require.Equal(t, out, again.String())
	})
}

// countExtensionSubtags returns how many hyphen-separated pieces collapse
// away when extension and private-use sequences each resolve to a single
// record. The generator always emits private use last, so every piece after
// "x" belongs to it regardless of length.
func countExtensionSubtags(parts []string) int {
	extra := 0
	private := false
	inSequence := false
	for _, p := range parts {
		if private {
			extra++
			continue
		}
		if p == "x" {
			private = true
			continue
		}
		if len(p) == 1 {
			inSequence = true
			continue
		}
		if inSequence {
			extra++
		}
	}
	return extra
}
