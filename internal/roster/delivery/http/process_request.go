package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "shift-calendar-sync/pkg/errors"
)

// processLoginReq binds and validates the login request body.
func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequestError("company, username and password are required")
	}
	return req, nil
}

// processScheduleReq parses the user_id path parameter.
func (h *handler) processScheduleReq(c *gin.Context) (int, error) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil || userID <= 0 {
		return 0, pkgErrors.NewBadRequestError("user_id must be a positive integer")
	}
	return userID, nil
}

// processCalendarLinkReq binds the quick-add query parameters.
func (h *handler) processCalendarLinkReq(c *gin.Context) (calendarLinkReq, error) {
	var req calendarLinkReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBadRequestError("date, start_time, end_time and role_name are required")
	}
	return req, nil
}
