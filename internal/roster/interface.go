package roster

import "context"

// UseCase is the schedule domain use case layer.
type UseCase interface {
	// Login authenticates against the roster service and persists the
	// session cookies and employee id on success only.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)

	// FetchSchedule loads the persisted session, resolves the current
	// rota and role mapping, and returns the normalized shifts for the
	// given employee.
	FetchSchedule(ctx context.Context, userID int) (ScheduleOutput, error)

	// CalendarLink builds a Google Calendar quick-add template URL for
	// one shift. No calendar API call is made.
	CalendarLink(ctx context.Context, input CalendarLinkInput) (CalendarLinkOutput, error)
}
