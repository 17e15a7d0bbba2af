package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	calsyncHTTP "shift-calendar-sync/internal/calsync/delivery/http"
	"shift-calendar-sync/internal/model"
	rosterHTTP "shift-calendar-sync/internal/roster/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.CORS())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.RateLimit())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "CORS mode: production")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s", srv.environment)
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes. Paths are flat, no
// version prefix: the frontend contract predates this server.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	root := srv.gin.Group("")

	rosterHTTP.RegisterRoutes(root, srv.rosterHandler)
	srv.l.Infof(ctx, "Roster routes registered")

	calsyncHTTP.RegisterRoutes(root, srv.calsyncHandler)
	srv.l.Infof(ctx, "Calendar-sync routes registered")
}
