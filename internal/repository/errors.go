package repository

import "errors"

// Errors shared by all repository implementations.
var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("repository: record not found")
	// ErrDuplicateEntry means the write violated a unique constraint.
	ErrDuplicateEntry = errors.New("repository: duplicate entry")
)

// Resource-specific aliases, kept for readable call sites.
var (
	ErrUserNotFound = ErrNotFound
	ErrDataNotFound = ErrNotFound
)
