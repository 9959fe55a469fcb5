// Package onepif reads 1Password interchange (1PIF) exports.
//
// An export is a sequence of JSON objects, each followed by a separator line.
// Every object is decoded into a Record: the well-known top-level keys become
// typed fields, the rest stays available as ordered scalars so that the
// converter can carry them over as custom properties.
package onepif

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
)

// FieldKind is the value kind ("k") of a section field.
type FieldKind string

const (
	KindString    FieldKind = "string"
	KindConcealed FieldKind = "concealed"
	KindEmail     FieldKind = "email"
	KindPhone     FieldKind = "phone"
	KindURL       FieldKind = "URL"
	KindMenu      FieldKind = "menu"
	KindCCType    FieldKind = "cctype"
	KindDate      FieldKind = "date"
	KindMonthYear FieldKind = "monthYear"
	KindAddress   FieldKind = "address"
	KindReference FieldKind = "reference"
)

var knownKinds = []FieldKind{
	KindString, KindConcealed, KindEmail, KindPhone, KindURL, KindMenu,
	KindCCType, KindDate, KindMonthYear, KindAddress, KindReference,
}

// ParseFieldKind validates a raw "k" tag.
func ParseFieldKind(s string) (FieldKind, error) {
	k := FieldKind(s)
	if !slices.Contains(knownKinds, k) {
		return "", fmt.Errorf("%w: %q", ErrUnknownFieldKind, s)
	}
	return k, nil
}

// WebFieldType is the type tag of a captured web form field.
type WebFieldType string

const (
	WebFieldText     WebFieldType = "T"
	WebFieldPassword WebFieldType = "P"
	WebFieldEmail    WebFieldType = "E"
	WebFieldCheckbox WebFieldType = "C"
	WebFieldRadio    WebFieldType = "R"
)

// Supported reports whether values of this type are carried over.
func (t WebFieldType) Supported() bool {
	return t == WebFieldText || t == WebFieldPassword || t == WebFieldEmail
}

// Skipped reports whether the type is known but deliberately dropped.
func (t WebFieldType) Skipped() bool {
	return t == WebFieldCheckbox || t == WebFieldRadio
}

// Scalar is a top-level key holding a string, number or boolean.
type Scalar struct {
	Key   string
	Value string // string form: strings unquoted, numbers as written, booleans "true"/"false"
	Raw   json.RawMessage
}

// WebField is one entry of the flat "fields" list.
type WebField struct {
	Name        string          `json:"name"`
	Designation string          `json:"designation"`
	ID          string          `json:"id"`
	Type        WebFieldType    `json:"type"`
	Value       json.RawMessage `json:"value"`
}

// HasValue reports whether the field carries a non-null value.
func (f WebField) HasValue() bool {
	return hasValue(f.Value)
}

// SectionField is one entry of sections[].fields.
type SectionField struct {
	Title string          `json:"t"`
	Name  string          `json:"n"`
	Kind  FieldKind       `json:"k"`
	Value json.RawMessage `json:"v"`
}

// HasValue reports whether the field carries a "v" key with a non-null value.
func (f SectionField) HasValue() bool {
	return hasValue(f.Value)
}

// Section is a named group of section fields.
type Section struct {
	Name   string         `json:"name"`
	Title  string         `json:"title"`
	Fields []SectionField `json:"fields"`
}

// HistoryItem is a superseded password with the unix time it was replaced.
type HistoryItem struct {
	Value string `json:"value"`
	Time  int64  `json:"time"`
}

// Contents is either openContents or secureContents.
type Contents struct {
	Scalars         []Scalar // sorted by key
	Fields          []WebField
	Sections        []Section
	URLs            []string
	Tags            []string
	PasswordHistory []HistoryItem
}

// Scalar returns the scalar stored under key.
func (c Contents) Scalar(key string) (Scalar, bool) {
	for _, s := range c.Scalars {
		if s.Key == key {
			return s, true
		}
	}
	return Scalar{}, false
}

// Record is one decoded 1PIF item.
type Record struct {
	TypeName  string
	Title     string
	UUID      string
	Location  string
	CreatedAt int64
	UpdatedAt int64
	Trashed   bool

	// Root holds the scalar top-level keys, including the ones above.
	Root           Contents
	OpenContents   Contents
	SecureContents Contents
}

// DecodeRecord decodes one JSON object of the export.
func DecodeRecord(data []byte) (*Record, error) {
	var root map[string]json.RawMessage
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if root == nil {
		return nil, fmt.Errorf("%w: record is not an object", ErrMalformedInput)
	}

	rec := &Record{}

	var err error
	if rec.Root, err = decodeContents(root, true); err != nil {
		return nil, err
	}
	for _, key := range []string{"openContents", "secureContents"} {
		raw, ok := root[key]
		if !ok || !hasValue(raw) {
			continue
		}
		var m map[string]json.RawMessage
		if err := json.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedInput, key, err)
		}
		c, err := decodeContents(m, false)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		if key == "openContents" {
			rec.OpenContents = c
		} else {
			rec.SecureContents = c
		}
	}

	if err := decodeString(root, "typeName", &rec.TypeName); err != nil {
		return nil, err
	}
	if rec.TypeName == "" {
		return nil, fmt.Errorf("%w: missing typeName", ErrMalformedInput)
	}
	for key, dst := range map[string]*string{"title": &rec.Title, "uuid": &rec.UUID, "location": &rec.Location} {
		if err := decodeString(root, key, dst); err != nil {
			return nil, err
		}
	}
	for key, dst := range map[string]*int64{"createdAt": &rec.CreatedAt, "updatedAt": &rec.UpdatedAt} {
		if err := decodeTimestamp(root, key, dst); err != nil {
			return nil, err
		}
	}

	// trashed встречается как в корне, так и в openContents
	for _, c := range []Contents{rec.Root, rec.OpenContents, rec.SecureContents} {
		if s, ok := c.Scalar("trashed"); ok && s.Value == "true" {
			rec.Trashed = true
		}
	}

	return rec, nil
}

// decodeContents splits an object into typed structural keys and scalars.
// Nested objects and arrays other than the structural ones are not scalars
// and are dropped.
func decodeContents(m map[string]json.RawMessage, root bool) (Contents, error) {
	var c Contents

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, key := range keys {
		raw := m[key]
		if !hasValue(raw) {
			continue
		}

		if !root {
			handled, err := decodeStructural(&c, key, raw)
			if err != nil {
				return c, err
			}
			if handled {
				continue
			}
		}

		if s, ok := ScalarString(raw); ok {
			c.Scalars = append(c.Scalars, Scalar{Key: key, Value: s, Raw: raw})
		}
	}

	return c, nil
}

func decodeStructural(c *Contents, key string, raw json.RawMessage) (bool, error) {
	switch key {
	case "fields":
		if err := json.Unmarshal(raw, &c.Fields); err != nil {
			return true, fmt.Errorf("%w: fields: %v", ErrMalformedInput, err)
		}
	case "sections":
		if err := json.Unmarshal(raw, &c.Sections); err != nil {
			return true, fmt.Errorf("%w: sections: %v", ErrMalformedInput, err)
		}
		if err := validateKinds(c.Sections); err != nil {
			return true, err
		}
	case "URLs":
		var urls []struct {
			URL string `json:"url"`
		}
		if err := json.Unmarshal(raw, &urls); err != nil {
			return true, fmt.Errorf("%w: URLs: %v", ErrMalformedInput, err)
		}
		for _, u := range urls {
			if u.URL != "" {
				c.URLs = append(c.URLs, u.URL)
			}
		}
	case "tags":
		if err := json.Unmarshal(raw, &c.Tags); err != nil {
			return true, fmt.Errorf("%w: tags: %v", ErrMalformedInput, err)
		}
	case "passwordHistory":
		var items []struct {
			Value string      `json:"value"`
			Time  json.Number `json:"time"`
		}
		if err := json.Unmarshal(raw, &items); err != nil {
			return true, fmt.Errorf("%w: passwordHistory: %v", ErrMalformedInput, err)
		}
		for _, it := range items {
			ts, err := numberToUnix(it.Time)
			if err != nil {
				return true, fmt.Errorf("%w: passwordHistory: %v", ErrMalformedInput, err)
			}
			c.PasswordHistory = append(c.PasswordHistory, HistoryItem{Value: it.Value, Time: ts})
		}
	default:
		return false, nil
	}
	return true, nil
}

// validateKinds fails closed on value kinds the converter cannot render.
func validateKinds(sections []Section) error {
	for _, s := range sections {
		for _, f := range s.Fields {
			if !f.HasValue() {
				continue
			}
			if _, err := ParseFieldKind(string(f.Kind)); err != nil {
				return fmt.Errorf("field %q: %w", f.Title, err)
			}
		}
	}
	return nil
}

func decodeString(m map[string]json.RawMessage, key string, dst *string) error {
	raw, ok := m[key]
	if !ok || !hasValue(raw) {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedInput, key, err)
	}
	return nil
}

func decodeTimestamp(m map[string]json.RawMessage, key string, dst *int64) error {
	raw, ok := m[key]
	if !ok || !hasValue(raw) {
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedInput, key, err)
	}
	ts, err := numberToUnix(n)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrMalformedInput, key, err)
	}
	*dst = ts
	return nil
}

func numberToUnix(n json.Number) (int64, error) {
	if n == "" {
		return 0, nil
	}
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	f, err := n.Float64()
	if err != nil {
		return 0, err
	}
	return int64(f), nil
}

// ScalarString returns the string form of a JSON string, number or boolean.
func ScalarString(raw json.RawMessage) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return "", false
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		return s, true
	case '{', '[', 'n':
		return "", false
	case 't', 'f':
		return string(raw), true
	default:
		return strings.TrimSpace(string(raw)), true
	}
}

func hasValue(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

// Header is the identifying part of a record.
type Header struct {
	TypeName string `json:"typeName"`
	Title    string `json:"title"`
	UUID     string `json:"uuid"`
}

// DecodeHeader decodes only the identifying keys of a record.
func DecodeHeader(data []byte) (Header, error) {
	var h Header
	if err := json.Unmarshal(data, &h); err != nil {
		return h, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return h, nil
}
