package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shift-calendar-sync/pkg/response"
)

// AuthLogin godoc
// @Summary     Start the Google OAuth consent flow
// @Description Redirects the browser to the Google consent screen. The roster user id travels in the state parameter.
// @Tags        Calendar
// @Param       user_id query int true "Roster user ID"
// @Success     302 "Redirect to Google consent"
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /auth/login [GET]
func (h *handler) AuthLogin(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAuthLoginReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AuthURL(ctx, req.UserID)
	if err != nil {
		h.l.Errorf(ctx, "uc.AuthURL: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Redirect(http.StatusFound, output.URL)
}

// AuthCallback godoc
// @Summary     Complete the Google OAuth consent flow
// @Description Exchanges the authorization code, persists the user's token bundle, and redirects to the dashboard.
// @Tags        Calendar
// @Param       code  query string true "Authorization code"
// @Param       state query string true "Roster user ID echoed from /auth/login"
// @Success     302 "Redirect to dashboard"
// @Failure     400 {object} response.Resp "Bad state or exchange failure"
// @Router      /auth/callback [GET]
func (h *handler) AuthCallback(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAuthCallbackReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.HandleCallback(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleCallback: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Redirect(http.StatusFound, output.RedirectURL)
}

// SyncOAuth godoc
// @Summary     Insert shifts into the user's own calendar
// @Description Inserts one event per shift into the user's primary calendar using their stored OAuth credential.
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body syncOAuthReq true "Access token, user id and shifts"
// @Success     200 {object} syncResp
// @Failure     401 {object} response.Resp "Missing token or no stored credentials"
// @Router      /sync-calendar-oauth [POST]
func (h *handler) SyncOAuth(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSyncOAuthReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SyncOAuth(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncOAuth: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.JSON(http.StatusOK, h.newSyncResp("Shifts synced to Google Calendar!", output))
}

// SyncServiceAccount godoc
// @Summary     Sync the user's schedule into the shared calendar
// @Description Fetches the schedule from the roster service and inserts events into the configured calendar with the service-account credential.
// @Tags        Calendar
// @Produce     json
// @Param       user_id path int true "Employee ID"
// @Success     200 {object} syncResp
// @Failure     400 {object} response.Resp "Roster service unavailable"
// @Failure     401 {object} response.Resp "No login state"
// @Router      /sync-calendar/{user_id} [POST]
func (h *handler) SyncServiceAccount(c *gin.Context) {
	ctx := c.Request.Context()

	userID, err := h.processSyncServiceAccountReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.SyncServiceAccount(ctx, userID)
	if err != nil {
		h.l.Errorf(ctx, "uc.SyncServiceAccount: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.JSON(http.StatusOK, h.newSyncResp("Shifts added to the calendar!", output))
}
