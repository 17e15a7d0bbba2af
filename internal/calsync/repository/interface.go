package repository

import (
	"context"

	"shift-calendar-sync/pkg/gcalendar"
)

// TokenRepository persists per-user OAuth token bundles. Each user id
// maps to an independent record; a missing record means the user has
// not completed OAuth consent.
type TokenRepository interface {
	SaveToken(ctx context.Context, userID int, bundle gcalendar.TokenBundle) error
	LoadToken(ctx context.Context, userID int) (gcalendar.TokenBundle, error)
}
