// Package target defines the destination container the converter writes to.
//
// The interfaces mirror what a KeePass database offers: groups under a root
// and entries with standard fields, custom properties and a history log.
package target

import "time"

//go:generate moq -out container_mock.go . Container EntryHandle GroupHandle

// GroupHandle is a group inside a container.
type GroupHandle interface {
	Name() string
}

// EntryHandle is an entry inside a container. Setters change the live state
// of the entry; SnapshotHistory copies that state into the entry's history.
type EntryHandle interface {
	SetUUID(id string)
	SetUsername(username string)
	SetPassword(password string)
	SetURL(url string)
	SetNotes(notes string)
	SetTags(tags []string)
	SetIcon(icon int64)
	SetCreatedAt(t time.Time)
	SetModifiedAt(t time.Time)
	SetCustomProperty(name string, value string, protected bool)
	SnapshotHistory()
}

// Container is an output database created with a set of credentials.
// Nothing is persisted before Save.
type Container interface {
	Root() GroupHandle
	AddGroup(parent GroupHandle, name string) (GroupHandle, error)
	FindGroupByName(name string) (GroupHandle, bool)
	// AddEntry creates an entry with empty username and password.
	AddEntry(group GroupHandle, title string) (EntryHandle, error)
	Save() error
}
