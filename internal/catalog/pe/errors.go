package pe

import "errors"

var (
	// ErrUnmappedEntity is returned for an entity type without a PE id.
	ErrUnmappedEntity = errors.New("pe: entity type has no PE id")

	// ErrKindMismatch is returned when an entity is registered in the table
	// of the other spawn kind.
	ErrKindMismatch = errors.New("pe: entity kind mismatch")
)
