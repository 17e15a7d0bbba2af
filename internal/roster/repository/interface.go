package repository

import (
	"context"

	"shift-calendar-sync/pkg/rosterapi"
)

// SessionRepository persists roster login state: the session cookies
// and the numeric employee id. A single shared identity is stored;
// concurrent logins overwrite each other (last write wins).
type SessionRepository interface {
	SaveSession(ctx context.Context, session rosterapi.Session) error
	LoadSession(ctx context.Context) (rosterapi.Session, error)
	SaveUserID(ctx context.Context, id int) error
	LoadUserID(ctx context.Context) (int, error)
}
