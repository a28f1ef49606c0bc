package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup matches nothing
	ErrNotFound = errors.New("not found")
	// ErrDataUnavailable wraps a failure of the backing store to supply a collection
	ErrDataUnavailable = errors.New("data unavailable")
)
