package usecase

import (
	"context"
	"errors"
	"fmt"

	"shift-calendar-sync/internal/calsync"
	"shift-calendar-sync/internal/calsync/repository"
	"shift-calendar-sync/internal/model"
	"shift-calendar-sync/pkg/gcalendar"
)

// SyncOAuth inserts one event per submitted shift into the user's
// primary calendar using their persisted OAuth bundle.
func (uc *implUseCase) SyncOAuth(ctx context.Context, input calsync.SyncOAuthInput) (calsync.SyncOutput, error) {
	if input.AccessToken == "" {
		return calsync.SyncOutput{}, calsync.ErrMissingAccessToken
	}

	bundle, err := uc.tokenRepo.LoadToken(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return calsync.SyncOutput{}, calsync.ErrNoToken
		}
		return calsync.SyncOutput{}, fmt.Errorf("failed to load token bundle: %w", err)
	}

	inserter, err := uc.inserters.ForBundle(ctx, bundle)
	if err != nil {
		return calsync.SyncOutput{}, fmt.Errorf("failed to build calendar client: %w", err)
	}

	// OAuth path always targets the user's primary calendar.
	return uc.insertShifts(ctx, inserter, input.Shifts, gcalendar.DefaultCalendarID), nil
}

// SyncServiceAccount fetches the user's schedule from the roster
// service and inserts events into the configured calendar.
func (uc *implUseCase) SyncServiceAccount(ctx context.Context, userID int) (calsync.SyncOutput, error) {
	schedule, err := uc.rosterUC.FetchSchedule(ctx, userID)
	if err != nil {
		return calsync.SyncOutput{}, err
	}

	inserter, err := uc.inserters.ServiceAccount(ctx)
	if err != nil {
		return calsync.SyncOutput{}, fmt.Errorf("failed to build calendar client: %w", err)
	}

	return uc.insertShifts(ctx, inserter, schedule.Shifts, uc.cfg.CalendarID), nil
}

// insertShifts formats and inserts each shift. Malformed shifts are
// skipped; a calendar rejection does not stop the batch.
func (uc *implUseCase) insertShifts(ctx context.Context, inserter gcalendar.EventInserter, shifts []model.Shift, calendarID string) calsync.SyncOutput {
	var out calsync.SyncOutput

	for _, shift := range shifts {
		event, err := calsync.FormatEvent(shift, calsync.FormatOptions{
			Location:   uc.cfg.Location,
			CalendarID: calendarID,
		})
		if err != nil {
			uc.l.Warnf(ctx, "insertShifts: skipping malformed shift: %v", err)
			out.Skipped++
			continue
		}

		created, err := inserter.CreateEvent(ctx, event)
		if err != nil {
			uc.l.Errorf(ctx, "insertShifts: insert failed for %q: %v", event.Summary, err)
			out.Failed++
			continue
		}

		uc.l.Infof(ctx, "insertShifts: event created: %s", created.HTMLLink)
		out.Inserted++
	}

	return out
}
