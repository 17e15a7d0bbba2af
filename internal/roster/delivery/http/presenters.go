package http

import (
	"shift-calendar-sync/internal/model"
	"shift-calendar-sync/internal/roster"
)

// --- Request DTOs ---

type loginReq struct {
	Company  string `json:"company"  binding:"required"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r loginReq) toInput() roster.LoginInput {
	return roster.LoginInput{
		Company:  r.Company,
		Username: r.Username,
		Password: r.Password,
	}
}

type calendarLinkReq struct {
	Date      string `form:"date"       binding:"required"`
	StartTime string `form:"start_time" binding:"required"`
	EndTime   string `form:"end_time"   binding:"required"`
	RoleName  string `form:"role_name"  binding:"required"`
}

func (r calendarLinkReq) toInput() roster.CalendarLinkInput {
	return roster.CalendarLinkInput{
		Date:      r.Date,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		RoleName:  r.RoleName,
	}
}

// --- Response DTOs ---

type loginResp struct {
	Message string `json:"message"`
	UserID  int    `json:"user_id"`
}

func (h *handler) newLoginResp(out roster.LoginOutput) loginResp {
	return loginResp{
		Message: "Login successful!",
		UserID:  out.UserID,
	}
}

type shiftResp struct {
	Date         string `json:"date"`
	PlannedStart string `json:"planned_start"`
	PlannedEnd   string `json:"planned_end"`
	Role         int    `json:"role"`
	RoleName     string `json:"role_name"`
}

// scheduleResp is a bare list: the dashboard frontend consumes the
// shift records without an envelope.
type scheduleResp []shiftResp

func newShiftResp(s model.Shift) shiftResp {
	return shiftResp{
		Date:         s.Date,
		PlannedStart: s.PlannedStart,
		PlannedEnd:   s.PlannedEnd,
		Role:         s.Role,
		RoleName:     s.RoleName,
	}
}

func (h *handler) newScheduleResp(out roster.ScheduleOutput) scheduleResp {
	shifts := make(scheduleResp, 0, len(out.Shifts))
	for _, s := range out.Shifts {
		shifts = append(shifts, newShiftResp(s))
	}
	return shifts
}

type calendarLinkResp struct {
	GoogleCalendarLink string `json:"google_calendar_link"`
}

func (h *handler) newCalendarLinkResp(out roster.CalendarLinkOutput) calendarLinkResp {
	return calendarLinkResp{GoogleCalendarLink: out.Link}
}
