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

//nolint:testpackage // White-box tests for the loader internals.
package registry

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

// errorReader is a helper type that implements io.Reader and always returns
// an error.
type errorReader struct{}

func (errorReader) Read(_ []byte) (int, error) {
	return 0, errors.New("mock reader error")
}

// mustLoad parses a snapshot literal and fails the test on error.
func mustLoad(t *testing.T, snapshot string) *Registry {
	t.Helper()
	reg, err := Load(strings.NewReader(snapshot))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	return reg
}

func TestLoad_Minimal(t *testing.T) {
	reg := mustLoad(t, `File-Date: 2025-08-25
%%
Type: language
Subtag: en
Description: English
Added: 2005-10-16
Suppress-Script: Latn
`)

	wantDate := time.Date(2025, 8, 25, 0, 0, 0, 0, time.UTC)
	if !reg.FileDate().Equal(wantDate) {
		t.Errorf("FileDate() = %v, want %v", reg.FileDate(), wantDate)
	}

	rec, ok := reg.Find(KindLanguage, "en")
	if !ok {
		t.Fatal(`Find(KindLanguage, "en") not found`)
	}
	want := &Subtag{
		Kind:           KindLanguage,
		Subtag:         "en",
		Description:    "English",
		Added:          time.Date(2005, 10, 16, 0, 0, 0, 0, time.UTC),
		SuppressScript: "Latn",
	}
	if !reflect.DeepEqual(rec, want) {
		t.Errorf("Find() = %+v, want %+v", rec, want)
	}
}

// TestLoad_RepeatedDescriptions checks that repeated Description lines are
// all retained, in order, joined by single newlines.
func TestLoad_RepeatedDescriptions(t *testing.T) {
	reg := mustLoad(t, `File-Date: 2025-08-25
%%
Type: language
Subtag: cu
Description: Church Slavic
Description: Church Slavonic
Description: Old Bulgarian
Added: 2005-10-16
`)

	rec, ok := reg.Find(KindLanguage, "cu")
	if !ok {
		t.Fatal(`Find(KindLanguage, "cu") not found`)
	}
	want := "Church Slavic\nChurch Slavonic\nOld Bulgarian"
	if rec.Description != want {
		t.Errorf("Description = %q, want %q", rec.Description, want)
	}
}

// TestLoad_ContinuationLines checks the two-space continuation rule: the
// continuation is appended to the previous field's value, space-joined,
// not treated as a new field.
func TestLoad_ContinuationLines(t *testing.T) {
	reg := mustLoad(t, `File-Date: 2025-08-25
%%
Type: variant
Subtag: rozaj
Description: Resian
Comments: The dialect of the Resia valley, a distinctive
  variety of Slovenian
Added: 2005-10-16
Prefix: sl
`)

	rec, ok := reg.Find(KindVariant, "rozaj")
	if !ok {
		t.Fatal(`Find(KindVariant, "rozaj") not found`)
	}
	want := "The dialect of the Resia valley, a distinctive variety of Slovenian"
	if rec.Comments != want {
		t.Errorf("Comments = %q, want %q", rec.Comments, want)
	}
	if !reflect.DeepEqual(rec.Prefix, []string{"sl"}) {
		t.Errorf("Prefix = %v, want [sl]", rec.Prefix)
	}
}

// TestLoad_WholeTagRecords checks that grandfathered and redundant records
// are indexed under their Tag field.
func TestLoad_WholeTagRecords(t *testing.T) {
	reg := mustLoad(t, `File-Date: 2025-08-25
%%
Type: grandfathered
Tag: i-klingon
Description: Klingon
Added: 1999-05-26
Deprecated: 2004-02-24
Preferred-Value: tlh
%%
Type: redundant
Tag: zh-Hant
Description: traditional Chinese
Added: 2003-05-30
`)

	rec, ok := reg.Find(KindGrandfathered, "I-KLINGON")
	if !ok {
		t.Fatal("grandfathered record not found under its tag")
	}
	if rec.PreferredValue != "tlh" {
		t.Errorf("PreferredValue = %q, want %q", rec.PreferredValue, "tlh")
	}
	if !rec.IsDeprecated() {
		t.Error("IsDeprecated() = false, want true")
	}
	if rec.Value() != "i-klingon" {
		t.Errorf("Value() = %q, want %q", rec.Value(), "i-klingon")
	}

	if _, ok := reg.Find(KindRedundant, "zh-hant"); !ok {
		t.Error("redundant record not found under its lowercased tag")
	}
}

// TestLoad_TrailingSeparator checks that a final empty group is ignored.
func TestLoad_TrailingSeparator(t *testing.T) {
	reg := mustLoad(t, `File-Date: 2025-08-25
%%
Type: language
Subtag: en
Description: English
Added: 2005-10-16
%%
`)
	if _, ok := reg.Find(KindLanguage, "en"); !ok {
		t.Error("record before trailing separator was lost")
	}
}

// TestLoad_Ranges checks the expansion of alphabetic and numeric range
// notation into individual records.
func TestLoad_Ranges(t *testing.T) {
	reg := mustLoad(t, `File-Date: 2025-08-25
%%
Type: language
Subtag: qaa..qac
Description: Private use
Added: 2005-10-16
Scope: private-use
%%
Type: region
Subtag: 001..003
Description: Test area
Added: 2005-10-16
`)

	for _, code := range []string{"qaa", "qab", "qac"} {
		rec, ok := reg.Find(KindLanguage, code)
		if !ok {
			t.Fatalf("range member %q not found", code)
		}
		if rec.Subtag != code {
			t.Errorf("range member Subtag = %q, want %q", rec.Subtag, code)
		}
		if rec.Scope != "private-use" {
			t.Errorf("range member Scope = %q, want %q", rec.Scope, "private-use")
		}
	}
	if _, ok := reg.Find(KindLanguage, "qad"); ok {
		t.Error("found a value past the end of the range")
	}
	for _, code := range []string{"001", "002", "003"} {
		if _, ok := reg.Find(KindRegion, code); !ok {
			t.Errorf("numeric range member %q not found", code)
		}
	}
}

func TestLoad_FormatErrors(t *testing.T) {
	tests := []struct {
		name     string
		snapshot string
	}{
		{
			name:     "empty input",
			snapshot: "",
		},
		{
			name:     "missing File-Date",
			snapshot: "%%\nType: language\nSubtag: en\n",
		},
		{
			name:     "bad File-Date",
			snapshot: "File-Date: yesterday\n%%\n",
		},
		{
			name:     "no separator at all",
			snapshot: "File-Date: 2025-08-25\n",
		},
		{
			name:     "malformed field line",
			snapshot: "File-Date: 2025-08-25\n%%\nType: language\nSubtag en\n",
		},
		{
			name:     "continuation without field",
			snapshot: "File-Date: 2025-08-25\n%%\n  dangling continuation\n",
		},
		{
			name:     "record without Type",
			snapshot: "File-Date: 2025-08-25\n%%\nSubtag: en\n",
		},
		{
			name:     "unknown Type",
			snapshot: "File-Date: 2025-08-25\n%%\nType: dialect\nSubtag: en\n",
		},
		{
			name:     "neither Subtag nor Tag",
			snapshot: "File-Date: 2025-08-25\n%%\nType: language\nDescription: English\n",
		},
		{
			name:     "both Subtag and Tag",
			snapshot: "File-Date: 2025-08-25\n%%\nType: language\nSubtag: en\nTag: en\n",
		},
		{
			name:     "bad record date",
			snapshot: "File-Date: 2025-08-25\n%%\nType: language\nSubtag: en\nAdded: 16/10/2005\n",
		},
		{
			name:     "mixed range endpoints",
			snapshot: "File-Date: 2025-08-25\n%%\nType: language\nSubtag: qaa..q1z\nAdded: 2005-10-16\n",
		},
		{
			name:     "inverted range",
			snapshot: "File-Date: 2025-08-25\n%%\nType: language\nSubtag: qtz..qaa\nAdded: 2005-10-16\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.snapshot))
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("Load() error = %v, want *FormatError", err)
			}
		})
	}
}

// TestLoad_ReaderError checks that reader failures surface as-is, not as
// format errors.
func TestLoad_ReaderError(t *testing.T) {
	_, err := Load(errorReader{})
	if err == nil {
		t.Fatal("Load() from failing reader succeeded")
	}
	var fe *FormatError
	if errors.As(err, &fe) {
		t.Errorf("Load() error = %v, want a plain reader error", err)
	}
}

// Test_expandNumericRange is based on RFC 5646 Section 3.1.1: "'11..13'
// denotes the values '11', '12', and '13'".
func Test_expandNumericRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		want    []string
		wantErr bool
	}{
		{name: "rfc example", start: "11", end: "13", want: []string{"11", "12", "13"}},
		{name: "padded", start: "001", end: "003", want: []string{"001", "002", "003"}},
		{name: "single element", start: "42", end: "42", want: []string{"42"}},
		{name: "inverted", start: "13", end: "11", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandNumericRange(tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expandNumericRange() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expandNumericRange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_expandAlphabeticRange(t *testing.T) {
	tests := []struct {
		name    string
		start   string
		end     string
		want    []string
		wantErr bool
	}{
		{name: "short run", start: "qaa", end: "qac", want: []string{"qaa", "qab", "qac"}},
		{name: "carry", start: "qay", end: "qba", want: []string{"qay", "qaz", "qba"}},
		{name: "single element", start: "qaa", end: "qaa", want: []string{"qaa"}},
		{name: "case folded", start: "Qaaa", end: "Qaac", want: []string{"qaaa", "qaab", "qaac"}},
		{name: "inverted", start: "qtz", end: "qaa", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := expandAlphabeticRange(tt.start, tt.end)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expandAlphabeticRange() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("expandAlphabeticRange() = %v, want %v", got, tt.want)
			}
		})
	}
}

func Test_expandRange(t *testing.T) {
	tests := []struct {
		rangeStr string
		wantErr  bool
		wantLen  int
	}{
		{rangeStr: "qaa..qtz", wantLen: 520},
		{rangeStr: "QM..QZ", wantLen: 14},
		{rangeStr: "XA..XZ", wantLen: 26},
		{rangeStr: "001..003", wantLen: 3},
		{rangeStr: "qaa..qa", wantErr: true},   // uneven lengths
		{rangeStr: "q1a..q2a", wantErr: true},  // mixed alphanumeric
		{rangeStr: "a..b..c", wantErr: true},   // double range
		{rangeStr: "..", wantErr: true},        // empty endpoints
	}
	for _, tt := range tests {
		t.Run(tt.rangeStr, func(t *testing.T) {
			got, err := expandRange(tt.rangeStr)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expandRange(%q) error = %v, wantErr %v", tt.rangeStr, err, tt.wantErr)
			}
			if !tt.wantErr && len(got) != tt.wantLen {
				t.Errorf("expandRange(%q) yielded %d values, want %d", tt.rangeStr, len(got), tt.wantLen)
			}
		})
	}
}

func TestFormatError_Error(t *testing.T) {
	withLine := &FormatError{Line: 7, Message: "malformed field line"}
	if got := withLine.Error(); got != "registry: line 7: malformed field line" {
		t.Errorf("Error() = %q", got)
	}
	withoutLine := &FormatError{Message: "missing File-Date header"}
	if got := withoutLine.Error(); got != "registry: missing File-Date header" {
		t.Errorf("Error() = %q", got)
	}
}
