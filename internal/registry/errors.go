package registry

import "errors"

var (
	// ErrUnknownRecordType is returned for a 1PIF type identifier that is not
	// in the table. It aborts the whole conversion.
	ErrUnknownRecordType = errors.New("unknown record type")

	// ErrUnknownIcon is returned when the table names an icon KeePass lacks.
	ErrUnknownIcon = errors.New("unknown icon")
)
