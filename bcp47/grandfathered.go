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

// grandfathered is the closed list of whole-tag forms registered before
// RFC 4646 introduced the current grammar, exactly as enumerated in the
// RFC 5646 ABNF. The irregular forms do not match the regular langtag
// production at all; the regular forms would, but with a different split,
// which is why the list is matched before the production. Keys are
// lowercase; matching is case-insensitive.
var grandfathered = map[string]struct{}{
	// irregular
	"en-gb-oed":  {},
	"i-ami":      {},
	"i-bnn":      {},
	"i-default":  {},
	"i-enochian": {},
	"i-hak":      {},
	"i-klingon":  {},
	"i-lux":      {},
	"i-mingo":    {},
	"i-navajo":   {},
	"i-pwn":      {},
	"i-tao":      {},
	"i-tay":      {},
	"i-tsu":      {},
	"sgn-be-fr":  {},
	"sgn-be-nl":  {},
	"sgn-ch-de":  {},
	// regular
	"art-lojban":  {},
	"cel-gaulish": {},
	"no-bok":      {},
	"no-nyn":      {},
	"zh-guoyu":    {},
	"zh-hakka":    {},
	"zh-min":      {},
	"zh-min-nan":  {},
	"zh-xiang":    {},
}

// isGrandfathered reports whether tag is one of the fixed grandfathered
// forms, ignoring case.
func isGrandfathered(tag string) bool {
	_, ok := grandfathered[strings.ToLower(tag)]
	return ok
}
