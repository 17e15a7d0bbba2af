package calsync

import (
	"context"

	"shift-calendar-sync/pkg/gcalendar"
)

// UseCase is the calendar-sync domain use case layer.
type UseCase interface {
	// AuthURL builds the Google OAuth consent URL, echoing the roster
	// user id as the state parameter.
	AuthURL(ctx context.Context, userID int) (AuthURLOutput, error)

	// HandleCallback exchanges the authorization code for tokens,
	// persists the per-user bundle, and returns the dashboard redirect.
	HandleCallback(ctx context.Context, input CallbackInput) (CallbackOutput, error)

	// SyncOAuth inserts one event per shift into the user's primary
	// calendar using their persisted OAuth bundle.
	SyncOAuth(ctx context.Context, input SyncOAuthInput) (SyncOutput, error)

	// SyncServiceAccount fetches the user's schedule from the roster
	// service and inserts events into the configured calendar using the
	// service-account credential.
	SyncServiceAccount(ctx context.Context, userID int) (SyncOutput, error)
}

// InserterFactory builds event inserters for the two auth variants.
// Abstracted so tests can substitute a fake calendar.
type InserterFactory interface {
	ForBundle(ctx context.Context, bundle gcalendar.TokenBundle) (gcalendar.EventInserter, error)
	ServiceAccount(ctx context.Context) (gcalendar.EventInserter, error)
}
