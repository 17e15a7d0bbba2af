package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shift-calendar-sync/pkg/response"
)

// Login godoc
// @Summary     Log in to the roster service
// @Description Authenticates against the roster service and persists the session.
// @Tags        Roster
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Roster credentials"
// @Success     200 {object} loginResp
// @Failure     401 {object} response.Resp "Login rejected"
// @Router      /login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	// The dashboard frontend reads user_id at the top level, not
	// inside the standard envelope.
	c.JSON(http.StatusOK, h.newLoginResp(output))
}

// Schedule godoc
// @Summary     Fetch the normalized shift schedule
// @Description Returns the employee's shifts for the current rota, with role names resolved.
// @Tags        Roster
// @Produce     json
// @Param       user_id path int true "Employee ID"
// @Success     200 {object} scheduleResp
// @Failure     400 {object} response.Resp "Roster service unavailable"
// @Failure     401 {object} response.Resp "No login state"
// @Router      /schedule/{user_id} [GET]
func (h *handler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := h.processScheduleReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.FetchSchedule(ctx, userID)
	if err != nil {
		h.l.Errorf(ctx, "uc.FetchSchedule: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.JSON(http.StatusOK, h.newScheduleResp(output))
}

// CalendarLink godoc
// @Summary     Build a Google Calendar quick-add link
// @Description Constructs a calendar template URL for one shift. No calendar API call.
// @Tags        Roster
// @Produce     json
// @Param       date       query string true "Shift date (YYYY-MM-DD)"
// @Param       start_time query string true "Start time (HH:MM)"
// @Param       end_time   query string true "End time (HH:MM)"
// @Param       role_name  query string true "Role display name"
// @Success     200 {object} calendarLinkResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /calendar-link [GET]
func (h *handler) CalendarLink(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCalendarLinkReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.CalendarLink(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CalendarLink: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.JSON(http.StatusOK, h.newCalendarLinkResp(output))
}
