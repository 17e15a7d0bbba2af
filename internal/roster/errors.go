package roster

import "errors"

var (
	// ErrLoginFailed means the roster service rejected the credentials.
	ErrLoginFailed = errors.New("roster login failed")
	// ErrNoSession means no persisted login state exists.
	ErrNoSession = errors.New("not logged in to roster service")
	// ErrRotaUnavailable means the current rota could not be resolved.
	ErrRotaUnavailable = errors.New("failed to resolve current rota")
	// ErrScheduleUnavailable means the cells endpoint failed.
	ErrScheduleUnavailable = errors.New("failed to fetch schedule")
)
