package calsync

import "shift-calendar-sync/internal/model"

// AuthURLOutput carries the Google consent URL for a redirect.
type AuthURLOutput struct {
	URL string
}

// CallbackInput is the OAuth redirect callback: the authorization code
// and the state parameter, which echoes the roster user id.
type CallbackInput struct {
	Code  string
	State string
}

// CallbackOutput carries the post-consent redirect target.
type CallbackOutput struct {
	RedirectURL string
}

// SyncOAuthInput is the payload of POST /sync-calendar-oauth.
type SyncOAuthInput struct {
	AccessToken string
	UserID      int
	Shifts      []model.Shift
}

// SyncOutput reports batch insertion results. Skipped counts shifts
// with malformed timestamps; Failed counts calendar API rejections.
type SyncOutput struct {
	Inserted int
	Skipped  int
	Failed   int
}
