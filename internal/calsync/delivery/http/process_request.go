package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	pkgErrors "shift-calendar-sync/pkg/errors"
)

// processAuthLoginReq binds the user_id query parameter.
func (h *handler) processAuthLoginReq(c *gin.Context) (authLoginReq, error) {
	var req authLoginReq
	if err := c.ShouldBindQuery(&req); err != nil || req.UserID <= 0 {
		return req, pkgErrors.NewBadRequestError("user_id must be a positive integer")
	}
	return req, nil
}

// processAuthCallbackReq binds the OAuth redirect query parameters.
func (h *handler) processAuthCallbackReq(c *gin.Context) (authCallbackReq, error) {
	var req authCallbackReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, pkgErrors.NewBadRequestError("code and state are required")
	}
	return req, nil
}

// processSyncOAuthReq binds and validates the OAuth sync request body.
func (h *handler) processSyncOAuthReq(c *gin.Context) (syncOAuthReq, error) {
	var req syncOAuthReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, pkgErrors.NewBadRequestError("access_token, user_id and shifts are required")
	}
	return req, nil
}

// processSyncServiceAccountReq parses the user_id path parameter.
func (h *handler) processSyncServiceAccountReq(c *gin.Context) (int, error) {
	userID, err := strconv.Atoi(c.Param("user_id"))
	if err != nil || userID <= 0 {
		return 0, pkgErrors.NewBadRequestError("user_id must be a positive integer")
	}
	return userID, nil
}
