package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the calendar-sync endpoints.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/auth/login", h.AuthLogin)
	rg.GET("/auth/callback", h.AuthCallback)
	rg.POST("/sync-calendar-oauth", h.SyncOAuth)
	rg.POST("/sync-calendar/:user_id", h.SyncServiceAccount)
}
