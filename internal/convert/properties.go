package convert

import (
	"encoding/json"
	"strconv"

	"github.com/iudanet/onepif2kdbx/internal/onepif"
)

// Origin is the part of a 1PIF record a property was extracted from.
type Origin int

const (
	OriginScalar   Origin = iota // top-level key of the record or its contents
	OriginWebField               // entry of the flat "fields" list
	OriginSection                // entry of sections[].fields
)

func (o Origin) String() string {
	switch o {
	case OriginScalar:
		return "scalar"
	case OriginWebField:
		return "web field"
	case OriginSection:
		return "section field"
	default:
		return "Origin(" + strconv.Itoa(int(o)) + ")"
	}
}

// Property is one normalized field of a record.
type Property struct {
	Name      string          // unique within the record
	Title     string          // display title, used as the custom property name
	Value     string          // rendered value
	Raw       json.RawMessage // value as found in the export
	Section   string          // title of the originating section, if any
	Key       string          // source key: scalar key, web field name or section field "n"
	Label     string          // section field "t"
	Kind      onepif.FieldKind
	Origin    Origin
	Protected bool
}

// IsWebField reports whether the property comes from a captured web form.
func (p Property) IsWebField() bool {
	return p.Origin == OriginWebField
}

// PropertySet is an ordered collection of properties with unique names.
type PropertySet struct {
	index map[string]int
	items []Property
}

// NewPropertySet returns an empty set.
func NewPropertySet() *PropertySet {
	return &PropertySet{index: make(map[string]int)}
}

// InsertUnique adds p and returns the name it was stored under. The first
// property keeps its name; later ones with the same name get "_1", "_2", ...
// appended to both name and title.
func (s *PropertySet) InsertUnique(p Property) string {
	name, suffix := p.Name, ""
	for i := 1; ; i++ {
		if _, taken := s.index[name]; !taken {
			break
		}
		suffix = "_" + strconv.Itoa(i)
		name = p.Name + suffix
	}

	p.Name = name
	p.Title += suffix
	s.index[name] = len(s.items)
	s.items = append(s.items, p)
	return name
}

// Get returns the property stored under name.
func (s *PropertySet) Get(name string) (Property, bool) {
	i, ok := s.index[name]
	if !ok {
		return Property{}, false
	}
	return s.items[i], true
}

// Len returns the number of properties.
func (s *PropertySet) Len() int {
	return len(s.items)
}

// All returns the properties in insertion order. The slice must not be modified.
func (s *PropertySet) All() []Property {
	return s.items
}

// Names returns the property names in insertion order.
func (s *PropertySet) Names() []string {
	names := make([]string, len(s.items))
	for i, p := range s.items {
		names[i] = p.Name
	}
	return names
}
