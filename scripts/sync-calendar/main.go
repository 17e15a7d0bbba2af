// scripts/sync-calendar/main.go
//
// One-shot sync: reuses the persisted roster session and user id when
// the state dir has them, logs in with the configured credentials
// otherwise, fetches the current schedule, and inserts one event per
// shift into the configured calendar using the service account.
//
// Usage:
//   go run scripts/sync-calendar/main.go
//
// Login credentials come from config.yaml or the ROSTER_COMPANY,
// ROSTER_USERNAME and ROSTER_PASSWORD environment variables; they are
// only required when no usable session is persisted.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"shift-calendar-sync/config"
	"shift-calendar-sync/internal/calsync"
	"shift-calendar-sync/internal/roster"
	rosterFileRepo "shift-calendar-sync/internal/roster/repository/file"
	rosterUC "shift-calendar-sync/internal/roster/usecase"
	"shift-calendar-sync/pkg/gcalendar"
	"shift-calendar-sync/pkg/log"
	"shift-calendar-sync/pkg/rosterapi"
)

const summaryPrefix = "Work Shift - "

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        "info",
		Mode:         "development",
		ColorEnabled: true,
	})

	ctx := context.Background()

	if cfg.Google.CredentialsPath == "" {
		logger.Error(ctx, "google.credentials_path is not configured")
		os.Exit(1)
	}

	location, err := time.LoadLocation(cfg.Google.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Google.Timezone, err)
		location = time.UTC
	}

	// Roster session and schedule fetch
	client := rosterapi.NewClient(cfg.Roster.BaseURL)
	sessionRepo := rosterFileRepo.New(logger, cfg.Roster.StateDir)
	uc := rosterUC.New(logger, client, sessionRepo)

	userID, err := sessionRepo.LoadUserID(ctx)
	if err == nil {
		logger.Infof(ctx, "Reusing persisted session for user %d", userID)
	} else {
		userID, err = login(ctx, logger, uc, cfg)
		if err != nil {
			logger.Errorf(ctx, "Login failed: %v", err)
			os.Exit(1)
		}
	}

	schedule, err := uc.FetchSchedule(ctx, userID)
	if errors.Is(err, roster.ErrNoSession) {
		// Stale state dir: a user id without cookies. Log in once and
		// retry.
		userID, err = login(ctx, logger, uc, cfg)
		if err != nil {
			logger.Errorf(ctx, "Login failed: %v", err)
			os.Exit(1)
		}
		schedule, err = uc.FetchSchedule(ctx, userID)
	}
	if err != nil {
		// A cells-fetch failure degrades to an empty schedule here;
		// anything earlier in the chain is fatal.
		if !errors.Is(err, roster.ErrScheduleUnavailable) {
			logger.Errorf(ctx, "Failed to fetch schedule: %v", err)
			os.Exit(1)
		}
		logger.Warnf(ctx, "Schedule fetch failed, nothing to sync: %v", err)
	}
	logger.Infof(ctx, "Found %d shifts to sync", len(schedule.Shifts))

	// Format events
	events := make([]gcalendar.EventInput, 0, len(schedule.Shifts))
	for _, shift := range schedule.Shifts {
		event, err := calsync.FormatEvent(shift, calsync.FormatOptions{
			Location:      location,
			CalendarID:    cfg.Google.CalendarID,
			SummaryPrefix: summaryPrefix,
		})
		if err != nil {
			logger.Warnf(ctx, "Skipping malformed shift on %s: %v", shift.Date, err)
			continue
		}
		events = append(events, event)
	}

	// Insert with the service account
	calendarClient, err := gcalendar.NewServiceAccountClient(ctx, cfg.Google.CredentialsPath)
	if err != nil {
		logger.Errorf(ctx, "Failed to build calendar client: %v", err)
		os.Exit(1)
	}

	inserted, err := calendarClient.InsertEvents(ctx, events)
	if err != nil {
		logger.Warnf(ctx, "Some inserts failed: %v", err)
	}

	logger.Infof(ctx, "Sync complete! %d/%d events inserted.", inserted, len(events))
}

// login authenticates with the configured credentials, persisting the
// session and user id for later runs.
func login(ctx context.Context, logger log.Logger, uc roster.UseCase, cfg *config.Config) (int, error) {
	if cfg.Roster.Company == "" || cfg.Roster.Username == "" || cfg.Roster.Password == "" {
		return 0, errors.New("no persisted session and roster credentials are not configured")
	}

	out, err := uc.Login(ctx, roster.LoginInput{
		Company:  cfg.Roster.Company,
		Username: cfg.Roster.Username,
		Password: cfg.Roster.Password,
	})
	if err != nil {
		return 0, err
	}

	logger.Infof(ctx, "Logged in as user %d", out.UserID)
	return out.UserID, nil
}
