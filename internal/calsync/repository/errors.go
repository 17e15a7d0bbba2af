package repository

import "errors"

var (
	// ErrNotFound means no token bundle exists for the user.
	ErrNotFound = errors.New("token bundle not found")
)
