package onepif

import "errors"

// Errors of the 1PIF source layer. Callers match them with errors.Is.
var (
	// ErrMalformedInput indicates that a chunk of the export is not a JSON
	// object or lacks a structure the converter depends on.
	ErrMalformedInput = errors.New("malformed 1PIF input")

	// ErrUnknownFieldKind indicates a section field whose value kind ("k")
	// is not recognized, or a web field whose value has a shape no kind covers.
	ErrUnknownFieldKind = errors.New("unknown field kind")

	// ErrUnknownFieldType indicates a web form field whose type tag is not
	// one of the supported or explicitly skipped ones.
	ErrUnknownFieldType = errors.New("unknown web field type")

	// ErrUnsupportedField marks fields that are recognized but dropped on
	// purpose (checkboxes, radio buttons, cross-item references). It is only
	// ever logged as a warning.
	ErrUnsupportedField = errors.New("unsupported field")
)
