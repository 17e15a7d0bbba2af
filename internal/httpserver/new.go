package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	calsyncHTTP "shift-calendar-sync/internal/calsync/delivery/http"
	"shift-calendar-sync/internal/middleware"
	rosterHTTP "shift-calendar-sync/internal/roster/delivery/http"
	"shift-calendar-sync/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	rosterHandler  rosterHTTP.Handler
	calsyncHandler calsyncHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	RosterHandler  rosterHTTP.Handler
	CalsyncHandler calsyncHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:              cfg.Logger,
		gin:            gin.New(),
		port:           cfg.Port,
		mode:           cfg.Mode,
		environment:    cfg.Environment,
		mw:             cfg.Middleware,
		rosterHandler:  cfg.RosterHandler,
		calsyncHandler: cfg.CalsyncHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.rosterHandler == nil {
		return errors.New("roster handler is required")
	}
	if srv.calsyncHandler == nil {
		return errors.New("calendar-sync handler is required")
	}
	return nil
}
