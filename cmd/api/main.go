package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	calendarAPI "google.golang.org/api/calendar/v3"

	"shift-calendar-sync/config"
	_ "shift-calendar-sync/docs" // Swagger docs
	calsyncHTTP "shift-calendar-sync/internal/calsync/delivery/http"
	calsyncFileRepo "shift-calendar-sync/internal/calsync/repository/file"
	calsyncUC "shift-calendar-sync/internal/calsync/usecase"
	"shift-calendar-sync/internal/httpserver"
	"shift-calendar-sync/internal/middleware"
	rosterHTTP "shift-calendar-sync/internal/roster/delivery/http"
	rosterFileRepo "shift-calendar-sync/internal/roster/repository/file"
	rosterUC "shift-calendar-sync/internal/roster/usecase"
	"shift-calendar-sync/pkg/log"
	"shift-calendar-sync/pkg/rosterapi"
)

// @title       Shift Calendar Sync API
// @description Syncs shift schedules from the roster service into Google Calendar.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Shift Calendar Sync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Roster URL: %s", cfg.Roster.BaseURL)

	// 3. Roster domain
	rosterClient := rosterapi.NewClient(cfg.Roster.BaseURL)
	sessionRepo := rosterFileRepo.New(logger, cfg.Roster.StateDir)
	rosterUseCase := rosterUC.New(logger, rosterClient, sessionRepo)
	rosterHandler := rosterHTTP.New(logger, rosterUseCase)

	// 4. Calendar-sync domain
	location, err := time.LoadLocation(cfg.Google.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Google.Timezone, err)
		location = time.UTC
	}

	oauthCfg := &oauth2.Config{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURI,
		Scopes:       []string{calendarAPI.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}

	tokenRepo := calsyncFileRepo.New(logger, cfg.Google.TokenDir)
	calsyncUseCase := calsyncUC.New(logger, calsyncUC.Config{
		OAuth:        oauthCfg,
		Location:     location,
		CalendarID:   cfg.Google.CalendarID,
		DashboardURL: cfg.Google.DashboardURL,
	}, tokenRepo, rosterUseCase, calsyncUC.NewInserterFactory(cfg.Google.CredentialsPath))
	calsyncHandler := calsyncHTTP.New(logger, calsyncUseCase)

	// 5. HTTP Server
	mw := middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.RateLimit.PerMin})

	httpServer, err := httpserver.New(httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     mw,
		RosterHandler:  rosterHandler,
		CalsyncHandler: calsyncHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
