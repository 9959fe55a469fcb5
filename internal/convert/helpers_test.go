package convert

import (
	"iter"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iudanet/onepif2kdbx/internal/onepif"
	"github.com/iudanet/onepif2kdbx/internal/registry"
	"github.com/iudanet/onepif2kdbx/internal/target"
)

func decode(t *testing.T, data string) *onepif.Record {
	t.Helper()
	rec, err := onepif.DecodeRecord([]byte(data))
	require.NoError(t, err)
	return rec
}

func defaultRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.Default()
	require.NoError(t, err)
	return reg
}

func classify(t *testing.T, typeName string) registry.Type {
	t.Helper()
	typ, err := defaultRegistry(t).Classify(typeName)
	require.NoError(t, err)
	return typ
}

// fakeEntry is the state an EntryHandleMock accumulates.
type fakeEntry struct {
	created  time.Time
	modified time.Time
	custom   map[string]fakeValue
	title    string
	group    string
	uuid     string
	username string
	password string
	url      string
	notes    string
	tags     []string
	history  []HistoryStep
	icon     int64
}

type fakeValue struct {
	value     string
	protected bool
}

func newEntryMock(fe *fakeEntry) *target.EntryHandleMock {
	fe.custom = make(map[string]fakeValue)
	return &target.EntryHandleMock{
		SetUUIDFunc:       func(id string) { fe.uuid = id },
		SetUsernameFunc:   func(username string) { fe.username = username },
		SetPasswordFunc:   func(password string) { fe.password = password },
		SetURLFunc:        func(url string) { fe.url = url },
		SetNotesFunc:      func(notes string) { fe.notes = notes },
		SetTagsFunc:       func(tags []string) { fe.tags = tags },
		SetIconFunc:       func(icon int64) { fe.icon = icon },
		SetCreatedAtFunc:  func(t time.Time) { fe.created = t },
		SetModifiedAtFunc: func(t time.Time) { fe.modified = t },
		SetCustomPropertyFunc: func(name string, value string, protected bool) {
			fe.custom[name] = fakeValue{value: value, protected: protected}
		},
		SnapshotHistoryFunc: func() {
			fe.history = append(fe.history, HistoryStep{ModifiedAt: fe.modified, Password: fe.password})
		},
	}
}

// fakeContainer is an in-memory container built on the generated mocks.
type fakeContainer struct {
	mock    *target.ContainerMock
	root    *target.GroupHandleMock
	groups  map[string]*target.GroupHandleMock
	entries []*fakeEntry
	saves   int
	saveErr error
}

func newFakeContainer() *fakeContainer {
	fc := &fakeContainer{groups: make(map[string]*target.GroupHandleMock)}
	fc.root = groupMock("Root")

	fc.mock = &target.ContainerMock{
		RootFunc: func() target.GroupHandle { return fc.root },
		FindGroupByNameFunc: func(name string) (target.GroupHandle, bool) {
			g, ok := fc.groups[name]
			return g, ok
		},
		AddGroupFunc: func(parent target.GroupHandle, name string) (target.GroupHandle, error) {
			if parent != fc.root {
				return nil, target.ErrForeignGroup
			}
			g := groupMock(name)
			fc.groups[name] = g
			return g, nil
		},
		AddEntryFunc: func(group target.GroupHandle, title string) (target.EntryHandle, error) {
			fe := &fakeEntry{title: title, group: group.Name()}
			fc.entries = append(fc.entries, fe)
			return newEntryMock(fe), nil
		},
		SaveFunc: func() error {
			fc.saves++
			return fc.saveErr
		},
	}
	return fc
}

func groupMock(name string) *target.GroupHandleMock {
	return &target.GroupHandleMock{NameFunc: func() string { return name }}
}

// sliceSource serves the records of an export held in memory.
type sliceSource struct {
	data string
}

func (s sliceSource) Records() iter.Seq2[*onepif.Record, error] {
	return onepif.NewReader(strings.NewReader(s.data)).All()
}
