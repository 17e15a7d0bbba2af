package model

// Shift is a normalized shift: a roster cell with both planned times
// present, enriched with the resolved role name.
type Shift struct {
	Date         string `json:"date"`
	PlannedStart string `json:"planned_start"`
	PlannedEnd   string `json:"planned_end"`
	Role         int    `json:"role"`
	RoleName     string `json:"role_name"`
}

// UnknownRoleName is the fallback when the role mapping misses.
const UnknownRoleName = "Unknown Role"
