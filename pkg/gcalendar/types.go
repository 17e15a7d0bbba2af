package gcalendar

import "time"

// EventInput is the input for creating a Google Calendar event.
type EventInput struct {
	CalendarID string
	Summary    string
	StartTime  time.Time
	EndTime    time.Time
	Timezone   string // e.g. "Asia/Jerusalem"
}

// Event is a simplified representation of a created calendar event.
type Event struct {
	ID        string
	Summary   string
	HTMLLink  string
	StartTime time.Time
	EndTime   time.Time
}

// TokenBundle is the per-user OAuth credential set persisted after the
// consent flow. JSON field names match the stored token files.
type TokenBundle struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenURI     string `json:"token_uri"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}
