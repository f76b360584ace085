package content

import "errors"

var (
	// ErrNotFound is returned when no row exists at the requested position.
	ErrNotFound = errors.New("content: no entry at position")

	// ErrInvalidID is returned for identifiers that are not positive integers.
	ErrInvalidID = errors.New("content: invalid id")

	// ErrUnknownKind is returned for a Kind outside the defined set.
	ErrUnknownKind = errors.New("content: unknown kind")

	// ErrEmptyUpdate is returned when a batch update names no rows.
	ErrEmptyUpdate = errors.New("content: nothing to update")
)
