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

package registry

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

const (
	recordSeparator = "%%"
	dateLayout      = "2006-01-02" // all registry dates are full calendar dates
	keyValParts     = 2

	maxNumericExpansion = 20000
	maxAlphaExpansion   = 40000
)

// FormatError describes a structural problem in a registry snapshot. Line is
// the 1-based line number the problem was detected at, or 0 when the problem
// is not tied to a single line.
type FormatError struct {
	Line    int
	Message string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("registry: line %d: %s", e.Line, e.Message)
	}
	return "registry: " + e.Message
}

// loader accumulates the fields of the record currently being read. Repeated
// keys keep every value, in file order.
type loader struct {
	reg     *Registry
	fields  map[string][]string
	lastKey string
	line    int
}

// Load reads an IANA language-subtag-registry snapshot and returns the
// indexed Registry. The snapshot must open with a File-Date header before
// the first "%%" separator; a violation of the record structure anywhere in
// the file aborts the load with a *FormatError.
func Load(r io.Reader) (*Registry, error) {
	scanner := bufio.NewScanner(r)
	l := &loader{
		reg: &Registry{
			records: make(map[Kind]map[string]*Subtag),
		},
		fields: make(map[string][]string),
	}

	if err := l.header(scanner); err != nil {
		return nil, err
	}
	for scanner.Scan() {
		l.line++
		if err := l.processLine(scanner.Text()); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := l.flush(); err != nil {
		return nil, err
	}
	return l.reg, nil
}

// header consumes everything up to the first record separator. The only
// field it interprets is File-Date; anything that is not a field line is a
// format error.
func (l *loader) header(scanner *bufio.Scanner) error {
	for scanner.Scan() {
		l.line++
		line := scanner.Text()
		if line == recordSeparator {
			if l.reg.fileDate.IsZero() {
				return &FormatError{Line: l.line, Message: "missing File-Date header"}
			}
			return nil
		}
		key, value, ok := splitField(line)
		if !ok {
			return &FormatError{Line: l.line, Message: fmt.Sprintf("malformed header line %q", line)}
		}
		if strings.EqualFold(key, "File-Date") {
			d, err := time.Parse(dateLayout, value)
			if err != nil {
				return &FormatError{Line: l.line, Message: fmt.Sprintf("bad File-Date %q", value)}
			}
			l.reg.fileDate = d
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	return &FormatError{Line: l.line, Message: "no record separator found"}
}

// processLine handles one line of the record body: a separator closes the
// current record, a two-space indent continues the previous field's value,
// and anything else must be a "Key: Value" field line.
func (l *loader) processLine(line string) error {
	if line == recordSeparator {
		return l.flush()
	}
	if strings.HasPrefix(line, "  ") {
		values := l.fields[l.lastKey]
		if l.lastKey == "" || len(values) == 0 {
			return &FormatError{Line: l.line, Message: "continuation line without a preceding field"}
		}
		values[len(values)-1] += " " + strings.TrimSpace(line)
		return nil
	}
	key, value, ok := splitField(line)
	if !ok {
		return &FormatError{Line: l.line, Message: fmt.Sprintf("malformed field line %q", line)}
	}
	key = strings.ToLower(key)
	l.fields[key] = append(l.fields[key], value)
	l.lastKey = key
	return nil
}

// splitField splits a "Key: Value" line.
func splitField(line string) (key, value string, ok bool) {
	parts := strings.SplitN(line, ":", keyValParts)
	if len(parts) != keyValParts {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}

// flush builds a record from the collected fields and indexes it. An empty
// field set (a trailing separator, or separators with nothing between them)
// is ignored.
func (l *loader) flush() error {
	if len(l.fields) == 0 {
		return nil
	}
	fields := l.fields
	l.fields = make(map[string][]string)
	l.lastKey = ""

	rec, err := l.buildSubtag(fields)
	if err != nil {
		return err
	}
	return l.index(rec)
}

// buildSubtag converts the raw field values of one record into a Subtag.
func (l *loader) buildSubtag(fields map[string][]string) (*Subtag, error) {
	first := func(key string) string {
		if v := fields[key]; len(v) > 0 {
			return v[0]
		}
		return ""
	}

	typeStr := first("type")
	if typeStr == "" {
		return nil, &FormatError{Line: l.line, Message: "record has no Type field"}
	}
	kind, ok := kindFromType(typeStr)
	if !ok {
		return nil, &FormatError{Line: l.line, Message: fmt.Sprintf("unknown record type %q", typeStr)}
	}

	sub, tag := first("subtag"), first("tag")
	if sub == "" && tag == "" {
		return nil, &FormatError{Line: l.line, Message: "record carries neither Subtag nor Tag"}
	}
	if sub != "" && tag != "" {
		return nil, &FormatError{Line: l.line, Message: "record carries both Subtag and Tag"}
	}

	added, err := l.parseDate(first("added"))
	if err != nil {
		return nil, err
	}
	deprecated, err := l.parseDate(first("deprecated"))
	if err != nil {
		return nil, err
	}

	return &Subtag{
		Kind:           kind,
		Subtag:         sub,
		Tag:            tag,
		Description:    strings.Join(fields["description"], "\n"),
		Comments:       strings.Join(fields["comments"], "\n"),
		Added:          added,
		Deprecated:     deprecated,
		PreferredValue: first("preferred-value"),
		SuppressScript: first("suppress-script"),
		Macrolanguage:  first("macrolanguage"),
		Scope:          first("scope"),
		Prefix:         fields["prefix"],
	}, nil
}

// parseDate parses an optional registry date field. The zero time means the
// field was absent.
func (l *loader) parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, &FormatError{Line: l.line, Message: fmt.Sprintf("bad date %q", s)}
	}
	return d, nil
}

// index stores a record under (kind, lowercase identity), expanding range
// notation such as "qaa..qtz" into one record per value.
func (l *loader) index(rec *Subtag) error {
	identity := rec.Value()
	if !strings.Contains(identity, "..") {
		l.put(rec, identity)
		return nil
	}

	values, err := expandRange(identity)
	if err != nil {
		return &FormatError{Line: l.line, Message: err.Error()}
	}
	for _, v := range values {
		clone := *rec
		if rec.Subtag != "" {
			clone.Subtag = v
		} else {
			clone.Tag = v
		}
		l.put(&clone, v)
	}
	return nil
}

func (l *loader) put(rec *Subtag, identity string) {
	byValue := l.reg.records[rec.Kind]
	if byValue == nil {
		byValue = make(map[string]*Subtag)
		l.reg.records[rec.Kind] = byValue
	}
	byValue[strings.ToLower(identity)] = rec
}

// expandRange expands registry range notation into the individual values it
// denotes. Both endpoints must be the same length and either purely numeric
// or purely alphabetic.
func expandRange(rangeStr string) ([]string, error) {
	start, end, ok := strings.Cut(rangeStr, "..")
	if !ok || strings.Contains(end, "..") {
		return nil, fmt.Errorf("invalid range notation %q", rangeStr)
	}
	if len(start) != len(end) || start == "" {
		return nil, fmt.Errorf("range endpoints must have the same non-zero length: %q", rangeStr)
	}
	if isNumeric(start) && isNumeric(end) {
		return expandNumericRange(start, end)
	}
	if isAlphabetic(start) && isAlphabetic(end) {
		return expandAlphabeticRange(start, end)
	}
	return nil, fmt.Errorf("range must be purely alphabetic or purely numeric: %q", rangeStr)
}

// expandNumericRange expands a numeric range such as "001..003", keeping the
// zero padding of the endpoints.
func expandNumericRange(start, end string) ([]string, error) {
	startNum, err1 := strconv.Atoi(start)
	endNum, err2 := strconv.Atoi(end)
	if err1 != nil || err2 != nil {
		return nil, fmt.Errorf("invalid numeric range %s..%s", start, end)
	}
	if startNum > endNum {
		return nil, fmt.Errorf("start of range cannot be greater than end: %s..%s", start, end)
	}
	if endNum-startNum > maxNumericExpansion {
		return nil, fmt.Errorf("numeric range too large to expand: %s..%s", start, end)
	}

	result := make([]string, 0, endNum-startNum+1)
	format := fmt.Sprintf("%%0%dd", len(start))
	for i := startNum; i <= endNum; i++ {
		result = append(result, fmt.Sprintf(format, i))
	}
	return result, nil
}

// expandAlphabeticRange expands an alphabetic range such as "qaa..qtz" by
// odometer-style increment of the lowercased endpoints.
func expandAlphabeticRange(start, end string) ([]string, error) {
	current := []byte(strings.ToLower(start))
	endBytes := []byte(strings.ToLower(end))
	if bytes.Compare(current, endBytes) > 0 {
		return nil, fmt.Errorf("start of range cannot be greater than end: %s..%s", start, end)
	}

	var result []string
	for {
		result = append(result, string(current))
		if bytes.Equal(current, endBytes) {
			return result, nil
		}
		if len(result) > maxAlphaExpansion {
			return nil, fmt.Errorf("alphabetic range too large to expand: %s..%s", start, end)
		}
		for i := len(current) - 1; ; i-- {
			current[i]++
			if current[i] <= 'z' {
				break
			}
			current[i] = 'a'
		}
	}
}

// isAlphabetic checks if a string is non-empty and contains only ASCII letters.
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for i := range s {
		if !(s[i] >= 'a' && s[i] <= 'z') && !(s[i] >= 'A' && s[i] <= 'Z') {
			return false
		}
	}
	return true
}

// isNumeric checks if a string is non-empty and contains only ASCII digits.
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for i := range s {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
