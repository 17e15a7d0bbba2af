package calsync

import "errors"

var (
	// ErrNoToken means the user has not completed OAuth consent.
	ErrNoToken = errors.New("no OAuth token for user")
	// ErrMissingAccessToken means the sync request carried no token.
	ErrMissingAccessToken = errors.New("missing access token")
	// ErrExchangeFailed means the code-for-token exchange was rejected.
	ErrExchangeFailed = errors.New("OAuth code exchange failed")
	// ErrBadState means the OAuth state parameter is not a user id.
	ErrBadState = errors.New("invalid OAuth state parameter")
)
