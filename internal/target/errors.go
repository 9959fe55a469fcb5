package target

import "errors"

var (
	// ErrForeignGroup indicates a group handle that does not belong to the container
	ErrForeignGroup = errors.New("group does not belong to this container")

	// ErrNotCreated indicates use of a container whose database was never created
	ErrNotCreated = errors.New("database not created")

	// ErrEmptyGroupName indicates an attempt to add a group without a name
	ErrEmptyGroupName = errors.New("group name is empty")
)
