package http

import (
	"shift-calendar-sync/internal/calsync"
	"shift-calendar-sync/internal/model"
)

// --- Request DTOs ---

type authLoginReq struct {
	UserID int `form:"user_id" binding:"required"`
}

type authCallbackReq struct {
	Code  string `form:"code"  binding:"required"`
	State string `form:"state" binding:"required"`
}

func (r authCallbackReq) toInput() calsync.CallbackInput {
	return calsync.CallbackInput{
		Code:  r.Code,
		State: r.State,
	}
}

type shiftReq struct {
	Date         string `json:"date"          binding:"required"`
	PlannedStart string `json:"planned_start" binding:"required"`
	PlannedEnd   string `json:"planned_end"   binding:"required"`
	Role         int    `json:"role"`
	RoleName     string `json:"role_name"`
}

func (r shiftReq) toShift() model.Shift {
	roleName := r.RoleName
	if roleName == "" {
		roleName = model.UnknownRoleName
	}
	return model.Shift{
		Date:         r.Date,
		PlannedStart: r.PlannedStart,
		PlannedEnd:   r.PlannedEnd,
		Role:         r.Role,
		RoleName:     roleName,
	}
}

type syncOAuthReq struct {
	AccessToken string     `json:"access_token" binding:"required"`
	UserID      int        `json:"user_id"      binding:"required"`
	Shifts      []shiftReq `json:"shifts"       binding:"required"`
}

func (r syncOAuthReq) toInput() calsync.SyncOAuthInput {
	shifts := make([]model.Shift, 0, len(r.Shifts))
	for _, s := range r.Shifts {
		shifts = append(shifts, s.toShift())
	}
	return calsync.SyncOAuthInput{
		AccessToken: r.AccessToken,
		UserID:      r.UserID,
		Shifts:      shifts,
	}
}

// --- Response DTOs ---

type syncResp struct {
	Message  string `json:"message"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
	Failed   int    `json:"failed"`
}

func (h *handler) newSyncResp(message string, out calsync.SyncOutput) syncResp {
	return syncResp{
		Message:  message,
		Inserted: out.Inserted,
		Skipped:  out.Skipped,
		Failed:   out.Failed,
	}
}
