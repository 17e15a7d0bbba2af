package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"shift-calendar-sync/internal/roster"
)

const calendarTemplateBase = "https://www.google.com/calendar/event?action=TEMPLATE"

// CalendarLink builds a Google Calendar quick-add URL for one shift.
// Dates and times are compacted to the 20060102T1504 template form.
func (uc *implUseCase) CalendarLink(ctx context.Context, input roster.CalendarLinkInput) (roster.CalendarLinkOutput, error) {
	date := strings.ReplaceAll(input.Date, "-", "")
	start := fmt.Sprintf("%sT%s", date, strings.ReplaceAll(input.StartTime, ":", ""))
	end := fmt.Sprintf("%sT%s", date, strings.ReplaceAll(input.EndTime, ":", ""))
	title := url.QueryEscape(fmt.Sprintf("Shift - %s", input.RoleName))

	link := fmt.Sprintf("%s&dates=%s/%s&text=%s&location=&details=Shift+scheduled",
		calendarTemplateBase, start, end, title)

	return roster.CalendarLinkOutput{Link: link}, nil
}
