package usecase

import (
	"context"
	"errors"
	"fmt"

	"shift-calendar-sync/internal/roster"
	"shift-calendar-sync/pkg/rosterapi"
)

// Login authenticates against the roster service. Session cookies and
// the employee id are persisted only after a successful login, so a
// rejected login leaves no state behind.
func (uc *implUseCase) Login(ctx context.Context, input roster.LoginInput) (roster.LoginOutput, error) {
	session, userID, err := uc.client.Login(ctx, input.Company, input.Username, input.Password)
	if err != nil {
		if errors.Is(err, rosterapi.ErrLoginFailed) {
			uc.l.Warnf(ctx, "Login: roster rejected credentials for %s@%s", input.Username, input.Company)
			return roster.LoginOutput{}, roster.ErrLoginFailed
		}
		return roster.LoginOutput{}, fmt.Errorf("roster login call failed: %w", err)
	}

	if err := uc.repo.SaveSession(ctx, session); err != nil {
		return roster.LoginOutput{}, fmt.Errorf("failed to persist session: %w", err)
	}
	if err := uc.repo.SaveUserID(ctx, userID); err != nil {
		return roster.LoginOutput{}, fmt.Errorf("failed to persist user id: %w", err)
	}

	uc.l.Infof(ctx, "Login: user %d logged in", userID)
	return roster.LoginOutput{UserID: userID}, nil
}
