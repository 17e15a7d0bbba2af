package http

import (
	"github.com/gin-gonic/gin"

	"shift-calendar-sync/internal/roster"
	pkgLog "shift-calendar-sync/pkg/log"
)

// Handler is the public interface for the roster HTTP delivery layer.
type Handler interface {
	Login(c *gin.Context)
	Schedule(c *gin.Context)
	CalendarLink(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc roster.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the roster domain.
func New(l pkgLog.Logger, uc roster.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
