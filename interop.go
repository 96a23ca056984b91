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

import "golang.org/x/text/language"

// Locale bridges a resolved tag into golang.org/x/text, so validated tags
// can feed its matchers, collators and display-name tables. Note that
// x/text applies its own canonicalization: deprecated forms come back as
// their modern replacement (a resolved "i-klingon" parses as "tlh").
func (t *Tag) Locale() (language.Tag, error) {
	return language.Parse(t.String())
}
