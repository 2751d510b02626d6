package store

import "errors"

var (
	// ErrNotFound is returned by lookups for ids that do not exist.
	ErrNotFound = errors.New("not found")
	// ErrEmptyContent rejects whitespace-only note/comment bodies.
	ErrEmptyContent = errors.New("content must not be empty")
)
