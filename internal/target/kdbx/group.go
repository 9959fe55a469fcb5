package kdbx

import (
	"slices"

	"github.com/tobischo/gokeepasslib/v3"
)

// group is a node of the group tree. gokeepasslib keeps subgroups and entries
// by value, so the tree is kept here and converted on Save.
type group struct {
	owner    *Container
	children []*group
	entries  []*entry
	g        gokeepasslib.Group
}

func newGroup(owner *Container, name string) *group {
	g := gokeepasslib.NewGroup()
	g.Name = name
	return &group{owner: owner, g: g}
}

// Name returns the group name.
func (g *group) Name() string {
	return g.g.Name
}

func (g *group) find(name string) *group {
	if g.g.Name == name {
		return g
	}
	for _, child := range g.children {
		if found := child.find(name); found != nil {
			return found
		}
	}
	return nil
}

// build materializes the tree. Values are copied, so locking the result
// leaves the live entries in plaintext.
func (g *group) build() gokeepasslib.Group {
	out := g.g
	out.Entries = make([]gokeepasslib.Entry, 0, len(g.entries))
	for _, e := range g.entries {
		out.Entries = append(out.Entries, cloneEntry(e.e))
	}
	out.Groups = make([]gokeepasslib.Group, 0, len(g.children))
	for _, child := range g.children {
		out.Groups = append(out.Groups, child.build())
	}
	return out
}

func cloneEntry(e gokeepasslib.Entry) gokeepasslib.Entry {
	out := e
	out.Values = slices.Clone(e.Values)
	out.Histories = make([]gokeepasslib.History, len(e.Histories))
	for i, h := range e.Histories {
		out.Histories[i].Entries = make([]gokeepasslib.Entry, len(h.Entries))
		for j, old := range h.Entries {
			out.Histories[i].Entries[j] = cloneEntry(old)
		}
	}
	return out
}
