package roster

import "shift-calendar-sync/internal/model"

// LoginInput carries roster service credentials.
type LoginInput struct {
	Company  string
	Username string
	Password string
}

// LoginOutput is the result of a successful login.
type LoginOutput struct {
	UserID int
}

// ScheduleOutput is the normalized schedule for one employee.
type ScheduleOutput struct {
	Shifts []model.Shift
}

// CalendarLinkInput describes one shift for quick-add link generation.
type CalendarLinkInput struct {
	Date      string
	StartTime string
	EndTime   string
	RoleName  string
}

// CalendarLinkOutput carries the constructed Google Calendar URL.
type CalendarLinkOutput struct {
	Link string
}
