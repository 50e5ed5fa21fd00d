package remap

import "errors"

var (
	// ErrFrozen is returned by registrations after Freeze.
	ErrFrozen = errors.New("remap: table is frozen")

	// ErrIndexOutOfRange is returned when a composite index lies outside the table.
	ErrIndexOutOfRange = errors.New("remap: index out of range")

	// ErrInvalidData is returned for a forced data value below KeepData.
	ErrInvalidData = errors.New("remap: invalid data value")
)
