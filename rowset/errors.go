package rowset

import "errors"

var (
	// ErrInvalidState is returned when an operation targets a row in the
	// wrong lifecycle state or an index outside the set.
	ErrInvalidState = errors.New("invalid state")

	// ErrNotFound is returned when a row id or identifier is not part of the
	// current sequence.
	ErrNotFound = errors.New("not found")

	// ErrCollision is returned by the registry when an identifier is already
	// claimed by another row.
	ErrCollision = errors.New("identifier collision")
)
