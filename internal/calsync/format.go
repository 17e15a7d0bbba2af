package calsync

import (
	"fmt"
	"time"

	"shift-calendar-sync/internal/model"
	"shift-calendar-sync/pkg/gcalendar"
)

// DefaultTimezone is the zone shifts are interpreted in when none is
// configured.
const DefaultTimezone = "Asia/Jerusalem"

// FormatOptions controls event synthesis.
type FormatOptions struct {
	Location      *time.Location
	CalendarID    string
	SummaryPrefix string // e.g. "Shift - " or "Work Shift - "
}

// shift timestamps arrive as "HH:MM" or "HH:MM:SS"
var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// FormatEvent converts a normalized shift into a calendar event input.
// Both timestamps must parse; a malformed shift is skipped by callers.
// When the end does not come after the start the shift runs overnight
// and the end date is advanced by one day.
func FormatEvent(shift model.Shift, opts FormatOptions) (gcalendar.EventInput, error) {
	loc := opts.Location
	if loc == nil {
		loc = time.UTC
	}

	start, err := parseShiftTime(shift.Date, shift.PlannedStart, loc)
	if err != nil {
		return gcalendar.EventInput{}, fmt.Errorf("invalid start %q %q: %w", shift.Date, shift.PlannedStart, err)
	}
	end, err := parseShiftTime(shift.Date, shift.PlannedEnd, loc)
	if err != nil {
		return gcalendar.EventInput{}, fmt.Errorf("invalid end %q %q: %w", shift.Date, shift.PlannedEnd, err)
	}

	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}

	prefix := opts.SummaryPrefix
	if prefix == "" {
		prefix = "Shift - "
	}

	return gcalendar.EventInput{
		CalendarID: opts.CalendarID,
		Summary:    prefix + shift.RoleName,
		StartTime:  start,
		EndTime:    end,
		Timezone:   loc.String(),
	}, nil
}

func parseShiftTime(date, timeOfDay string, loc *time.Location) (time.Time, error) {
	value := date + "T" + timeOfDay
	var lastErr error
	for _, layout := range dateTimeLayouts {
		t, err := time.ParseInLocation(layout, value, loc)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
