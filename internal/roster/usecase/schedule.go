package usecase

import (
	"context"
	"errors"
	"fmt"

	"shift-calendar-sync/internal/model"
	"shift-calendar-sync/internal/roster"
	"shift-calendar-sync/internal/roster/repository"
	"shift-calendar-sync/pkg/rosterapi"
)

// FetchSchedule loads the persisted session and returns the employee's
// normalized shifts for the current rota.
func (uc *implUseCase) FetchSchedule(ctx context.Context, userID int) (roster.ScheduleOutput, error) {
	session, err := uc.repo.LoadSession(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return roster.ScheduleOutput{}, roster.ErrNoSession
		}
		return roster.ScheduleOutput{}, fmt.Errorf("failed to load session: %w", err)
	}

	rotaID, err := uc.client.CurrentRotaID(ctx, session)
	if err != nil {
		uc.l.Warnf(ctx, "FetchSchedule: rota lookup failed: %v", err)
		return roster.ScheduleOutput{}, roster.ErrRotaUnavailable
	}

	// A failed role lookup degrades to "Unknown Role" for every shift
	// rather than failing the whole schedule.
	mapping, err := uc.client.RoleMapping(ctx, session)
	if err != nil {
		uc.l.Warnf(ctx, "FetchSchedule: role mapping unavailable: %v", err)
		mapping = map[int]string{}
	}

	cells, err := uc.client.ShiftCells(ctx, session, rotaID, userID)
	if err != nil {
		uc.l.Warnf(ctx, "FetchSchedule: cells fetch failed: %v", err)
		return roster.ScheduleOutput{}, roster.ErrScheduleUnavailable
	}

	shifts := extractShifts(cells, mapping)
	uc.l.Infof(ctx, "FetchSchedule: user=%d rota=%d cells=%d shifts=%d", userID, rotaID, len(cells), len(shifts))

	return roster.ScheduleOutput{Shifts: shifts}, nil
}

// extractShifts joins raw cells with the role mapping. Cells missing a
// planned start or end are dropped; input order is preserved.
func extractShifts(cells []rosterapi.Cell, mapping map[int]string) []model.Shift {
	shifts := make([]model.Shift, 0, len(cells))
	for _, cell := range cells {
		if cell.PlannedStart == "" || cell.PlannedEnd == "" {
			continue
		}

		roleName, ok := mapping[cell.Role]
		if !ok {
			roleName = model.UnknownRoleName
		}

		shifts = append(shifts, model.Shift{
			Date:         cell.Date,
			PlannedStart: cell.PlannedStart,
			PlannedEnd:   cell.PlannedEnd,
			Role:         cell.Role,
			RoleName:     roleName,
		})
	}
	return shifts
}
