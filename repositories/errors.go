package repositories

import "errors"

var (
	// ErrNotFound is returned when the referenced record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a create collides with an existing key.
	ErrConflict = errors.New("record already exists")
)
