// Package registry maps 1PIF type identifiers to their KeePass presentation:
// display name, group, icon and the property names that become the user name
// and password of an entry.
//
// The table is configuration. A default one is embedded; Load reads a
// replacement from disk. A Registry is immutable once built.
package registry

import (
	_ "embed"
	"fmt"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed types.yaml
var defaultTable []byte

// Type describes one 1PIF record type.
type Type struct {
	ignored  map[string]struct{}
	ID       string
	Name     string // display name, e.g. "Login"
	Group    string // destination group, e.g. "Logins"
	Icon     Icon
	Username []string // candidates in priority order
	Password []string // candidates in priority order
}

// IsIgnored reports whether a property must never become a custom property.
func (t Type) IsIgnored(name string) bool {
	_, ok := t.ignored[name]
	return ok
}

// Registry is the read-only type table.
type Registry struct {
	types   map[string]Type
	ignored map[string]struct{}
}

// Default returns the registry built from the embedded table.
func Default() (*Registry, error) {
	return Parse(defaultTable)
}

// Load reads a type table from a YAML file.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read type table %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a registry from YAML data.
func Parse(data []byte) (*Registry, error) {
	var tf typeFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("failed to parse type table: %w", err)
	}
	if len(tf.Types) == 0 {
		return nil, fmt.Errorf("type table defines no types")
	}

	r := &Registry{
		types:   make(map[string]Type, len(tf.Types)),
		ignored: make(map[string]struct{}, len(tf.Ignored)),
	}
	for _, name := range tf.Ignored {
		r.ignored[name] = struct{}{}
	}

	for id, spec := range tf.Types {
		t, err := r.buildType(id, spec)
		if err != nil {
			return nil, err
		}
		r.types[id] = t
	}

	return r, nil
}

func (r *Registry) buildType(id string, spec typeSpec) (Type, error) {
	name := strings.TrimSpace(spec.Name)
	if name == "" {
		return Type{}, fmt.Errorf("type %q: name is required", id)
	}

	icon := Icon(0)
	if spec.Icon != "" {
		var err error
		if icon, err = ParseIcon(spec.Icon); err != nil {
			return Type{}, fmt.Errorf("type %q: %w", id, err)
		}
	}

	group := strings.TrimSpace(spec.Group)
	if group == "" {
		group = Pluralize(name)
	}

	return Type{
		ID:       id,
		Name:     name,
		Group:    group,
		Icon:     icon,
		Username: slices.Clone([]string(spec.Username)),
		Password: slices.Clone([]string(spec.Password)),
		ignored:  r.ignored,
	}, nil
}

// Classify looks up a type identifier. Unknown identifiers are an error:
// guessing the layout of an unknown type could file secrets in the wrong place.
func (r *Registry) Classify(typeName string) (Type, error) {
	t, ok := r.types[typeName]
	if !ok {
		return Type{}, fmt.Errorf("%w: %q", ErrUnknownRecordType, typeName)
	}
	t.Username = slices.Clone(t.Username)
	t.Password = slices.Clone(t.Password)
	return t, nil
}

// TypeNames returns the known identifiers, sorted.
func (r *Registry) TypeNames() []string {
	names := make([]string, 0, len(r.types))
	for id := range r.types {
		names = append(names, id)
	}
	slices.Sort(names)
	return names
}

// Pluralize forms an English plural for a group label.
func Pluralize(s string) string {
	if s == "" {
		return s
	}
	lower := strings.ToLower(s)
	switch {
	case strings.HasSuffix(lower, "y") && len(lower) > 1 && !strings.ContainsRune("aeiou", rune(lower[len(lower)-2])):
		return s[:len(s)-1] + "ies"
	case strings.HasSuffix(lower, "s"), strings.HasSuffix(lower, "x"), strings.HasSuffix(lower, "z"),
		strings.HasSuffix(lower, "ch"), strings.HasSuffix(lower, "sh"):
		return s + "es"
	default:
		return s + "s"
	}
}
