package rosterapi

import "net/http"

// Session is the cookie set obtained from a successful login. It is
// opaque to callers: persisted as-is and replayed on subsequent calls.
type Session []*http.Cookie

// Cell is a raw shift assignment record from GET /api/cells/.
// planned_start/planned_end may be empty for placeholder cells.
type Cell struct {
	Date         string `json:"date"`
	PlannedStart string `json:"planned_start"`
	PlannedEnd   string `json:"planned_end"`
	Role         int    `json:"role"`
}

// Rota is one entry of the rota list response.
type Rota struct {
	ID int `json:"id"`
}

// RoleEntry is one entry of the roles list response.
type RoleEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type loginRequest struct {
	Company  string `json:"company"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	ID int `json:"id"`
}
