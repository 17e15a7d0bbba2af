package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps the roster endpoints. The dashboard frontend
// calls these paths directly, so no version prefix is used.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/login", h.Login)
	rg.GET("/schedule/:user_id", h.Schedule)
	rg.GET("/calendar-link", h.CalendarLink)
}
