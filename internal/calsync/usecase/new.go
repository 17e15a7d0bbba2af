package usecase

import (
	"time"

	"golang.org/x/oauth2"

	"shift-calendar-sync/internal/calsync"
	"shift-calendar-sync/internal/calsync/repository"
	"shift-calendar-sync/internal/roster"
	pkgLog "shift-calendar-sync/pkg/log"
)

// Config carries the calendar-sync settings resolved at startup.
type Config struct {
	OAuth        *oauth2.Config // client id/secret/redirect, events scope
	Location     *time.Location // zone shift times are interpreted in
	CalendarID   string         // target for the service-account path
	DashboardURL string         // post-consent redirect target
}

type implUseCase struct {
	l         pkgLog.Logger
	cfg       Config
	tokenRepo repository.TokenRepository
	rosterUC  roster.UseCase
	inserters calsync.InserterFactory
}

var _ calsync.UseCase = (*implUseCase)(nil)

// New creates the calendar-sync use case.
func New(
	l pkgLog.Logger,
	cfg Config,
	tokenRepo repository.TokenRepository,
	rosterUC roster.UseCase,
	inserters calsync.InserterFactory,
) *implUseCase {
	return &implUseCase{
		l:         l,
		cfg:       cfg,
		tokenRepo: tokenRepo,
		rosterUC:  rosterUC,
		inserters: inserters,
	}
}
