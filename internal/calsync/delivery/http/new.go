package http

import (
	"github.com/gin-gonic/gin"

	"shift-calendar-sync/internal/calsync"
	pkgLog "shift-calendar-sync/pkg/log"
)

// Handler is the public interface for the calendar-sync HTTP delivery layer.
type Handler interface {
	AuthLogin(c *gin.Context)
	AuthCallback(c *gin.Context)
	SyncOAuth(c *gin.Context)
	SyncServiceAccount(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc calsync.UseCase
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the calendar-sync domain.
func New(l pkgLog.Logger, uc calsync.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
