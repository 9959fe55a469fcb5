// Package convert turns decoded 1PIF records into KeePass entries and
// writes them to a target container.
//
// The pipeline per record is: extract a flat, uniquely named property set,
// project it onto entry slots according to the record type, then, once every
// record converted, write all entries and save.
package convert

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/iudanet/onepif2kdbx/internal/logging"
	"github.com/iudanet/onepif2kdbx/internal/onepif"
)

// unnamedField names section fields that have neither a title nor a name.
const unnamedField = "field"

// Extractor flattens a record into a PropertySet.
// It is not safe for concurrent use.
type Extractor struct {
	log      logging.Logger
	title    cases.Caser
	warnings int
}

// NewExtractor creates an extractor that reports dropped fields to log.
func NewExtractor(log logging.Logger) *Extractor {
	return &Extractor{
		log:   log,
		title: cases.Title(language.Und),
	}
}

// Warnings returns the number of fields dropped with a warning so far.
func (x *Extractor) Warnings() int {
	return x.warnings
}

func (x *Extractor) reset() {
	x.warnings = 0
}

// Extract collects the properties of rec: scalar keys first (record root,
// then openContents, then secureContents), then web fields, then section fields.
// The result depends only on rec.
func (x *Extractor) Extract(ctx context.Context, rec *onepif.Record) (*PropertySet, error) {
	set := NewPropertySet()
	contents := []onepif.Contents{rec.OpenContents, rec.SecureContents}

	for _, c := range append([]onepif.Contents{rec.Root}, contents...) {
		for _, s := range c.Scalars {
			set.InsertUnique(Property{
				Name:   s.Key,
				Title:  s.Key,
				Value:  normalize(s.Value),
				Raw:    s.Raw,
				Key:    s.Key,
				Origin: OriginScalar,
			})
		}
	}

	for _, c := range contents {
		for _, f := range c.Fields {
			p, ok, err := x.webField(ctx, rec, f)
			if err != nil {
				return nil, err
			}
			if ok {
				set.InsertUnique(p)
			}
		}
	}

	for _, c := range contents {
		for _, s := range c.Sections {
			for _, f := range s.Fields {
				if !f.HasValue() {
					continue
				}
				p, err := x.sectionField(ctx, rec, s, f)
				if err != nil {
					return nil, err
				}
				set.InsertUnique(p)
			}
		}
	}

	x.log.Debug(ctx, "record extracted", "record", rec.Title, "type", rec.TypeName, "properties", set.Len())
	return set, nil
}

func (x *Extractor) webField(ctx context.Context, rec *onepif.Record, f onepif.WebField) (Property, bool, error) {
	if f.Type.Skipped() {
		x.warn(ctx, rec, f.Name, string(f.Type), "checkbox and radio button values are not supported")
		return Property{}, false, nil
	}

	value, ok := onepif.ScalarString(f.Value)
	if !f.HasValue() || (ok && value == "") {
		return Property{}, false, nil
	}
	if !ok {
		// адрес или monthYear в веб-поле: формат не определен
		return Property{}, false, fmt.Errorf("web field %q: %w: %s value", f.Name, onepif.ErrUnknownFieldKind, jsonKind(f.Value))
	}
	if !f.Type.Supported() {
		return Property{}, false, fmt.Errorf("web field %q: %w: %q", f.Name, onepif.ErrUnknownFieldType, f.Type)
	}

	name := f.Designation
	if name == "" {
		name = f.Name
	}

	return Property{
		Name:      name,
		Title:     name,
		Value:     normalize(value),
		Raw:       f.Value,
		Key:       f.Name,
		Origin:    OriginWebField,
		Protected: f.Type == onepif.WebFieldPassword,
	}, true, nil
}

func (x *Extractor) sectionField(ctx context.Context, rec *onepif.Record, s onepif.Section, f onepif.SectionField) (Property, error) {
	label := f.Title
	if label == "" {
		label = f.Name
	}
	if label == "" {
		// KeePass не принимает поля с пустым именем
		label = unnamedField
	}

	p := Property{
		Name:   label,
		Title:  label,
		Raw:    f.Value,
		Key:    f.Name,
		Label:  f.Title,
		Kind:   f.Kind,
		Origin: OriginSection,
	}
	if s.Title != "" {
		p.Section = s.Title
		p.Title = s.Title + ": " + x.title.String(label)
		p.Name = strings.ToLower(s.Title) + "_" + strings.ToLower(label)
	}

	var err error
	switch f.Kind {
	case onepif.KindString, onepif.KindEmail, onepif.KindPhone, onepif.KindURL, onepif.KindMenu, onepif.KindCCType:
		p.Value, err = renderScalar(f.Value)
	case onepif.KindConcealed:
		p.Value, err = renderScalar(f.Value)
		p.Protected = true
	case onepif.KindDate:
		p.Value, err = renderDate(f.Value)
	case onepif.KindMonthYear:
		p.Value, err = renderMonthYear(f.Value)
	case onepif.KindAddress:
		p.Value, err = renderAddress(f.Value)
	case onepif.KindReference:
		x.warn(ctx, rec, label, string(f.Kind), "links between items are not supported")
		p.Value = f.Title
	default:
		return Property{}, fmt.Errorf("section field %q: %w: %q", label, onepif.ErrUnknownFieldKind, f.Kind)
	}
	if err != nil {
		return Property{}, fmt.Errorf("section field %q (%s): %w", label, f.Kind, err)
	}

	return p, nil
}

func (x *Extractor) warn(ctx context.Context, rec *onepif.Record, field, kind, msg string) {
	x.warnings++
	x.log.Warn(ctx, msg, "record", rec.Title, "uuid", rec.UUID, "field", field, "kind", kind, "error", onepif.ErrUnsupportedField)
}
