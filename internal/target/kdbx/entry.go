package kdbx

import (
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tobischo/gokeepasslib/v3"
	w "github.com/tobischo/gokeepasslib/v3/wrappers"
)

// Стандартные ключи значений записи KeePass
const (
	keyTitle    = "Title"
	keyUserName = "UserName"
	keyPassword = "Password"
	keyURL      = "URL"
	keyNotes    = "Notes"
)

// entry implements target.EntryHandle.
type entry struct {
	e gokeepasslib.Entry
}

func newEntry(title string) *entry {
	e := &entry{e: gokeepasslib.NewEntry()}
	e.setValue(keyTitle, title, false)
	e.setValue(keyUserName, "", false)
	e.setValue(keyPassword, "", true)
	return e
}

// SetUUID uses the source identifier as the entry UUID. Identifiers that are
// not UUIDs keep the random one assigned on creation.
func (e *entry) SetUUID(id string) {
	u, err := uuid.Parse(id)
	if err != nil {
		return
	}
	e.e.UUID = gokeepasslib.UUID(u)
}

func (e *entry) SetUsername(username string) { e.setValue(keyUserName, username, false) }
func (e *entry) SetPassword(password string) { e.setValue(keyPassword, password, true) }
func (e *entry) SetURL(url string)           { e.setValue(keyURL, url, false) }
func (e *entry) SetNotes(notes string)       { e.setValue(keyNotes, notes, false) }

// SetTags stores tags separated by ";" as KeePass does.
func (e *entry) SetTags(tags []string) {
	e.e.Tags = strings.Join(tags, ";")
}

func (e *entry) SetIcon(icon int64) {
	e.e.IconID = icon
}

func (e *entry) SetCreatedAt(t time.Time) {
	e.e.Times.CreationTime = timeWrapper(e.e.Times.CreationTime, t)
}

func (e *entry) SetModifiedAt(t time.Time) {
	e.e.Times.LastModificationTime = timeWrapper(e.e.Times.LastModificationTime, t)
}

func (e *entry) SetCustomProperty(name, value string, protected bool) {
	e.setValue(name, value, protected)
}

// SnapshotHistory appends a copy of the current state to the entry history.
func (e *entry) SnapshotHistory() {
	snap := e.e
	snap.Histories = nil
	snap.Values = slices.Clone(e.e.Values)

	if len(e.e.Histories) == 0 {
		e.e.Histories = []gokeepasslib.History{{}}
	}
	e.e.Histories[0].Entries = append(e.e.Histories[0].Entries, snap)
}

func (e *entry) setValue(key, value string, protected bool) {
	v := gokeepasslib.ValueData{Key: key, Value: gokeepasslib.V{Content: value}}
	if protected {
		v.Value.Protected = w.NewBoolWrapper(true)
	}
	for i := range e.e.Values {
		if e.e.Values[i].Key == key {
			e.e.Values[i] = v
			return
		}
	}
	e.e.Values = append(e.e.Values, v)
}

// timeWrapper replaces the time without mutating the previous wrapper:
// history snapshots share it.
func timeWrapper(prev *w.TimeWrapper, t time.Time) *w.TimeWrapper {
	formatted := true
	if prev != nil {
		formatted = prev.Formatted
	}
	return &w.TimeWrapper{Formatted: formatted, Time: t}
}
