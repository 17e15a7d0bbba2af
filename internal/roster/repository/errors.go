package repository

import "errors"

var (
	// ErrNotFound means the requested state file is absent or corrupt.
	ErrNotFound = errors.New("credential state not found")
)
