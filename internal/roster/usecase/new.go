package usecase

import (
	"shift-calendar-sync/internal/roster"
	"shift-calendar-sync/internal/roster/repository"
	pkgLog "shift-calendar-sync/pkg/log"
	"shift-calendar-sync/pkg/rosterapi"
)

type implUseCase struct {
	l      pkgLog.Logger
	client *rosterapi.Client
	repo   repository.SessionRepository
}

var _ roster.UseCase = (*implUseCase)(nil)

// New creates the schedule domain use case.
func New(l pkgLog.Logger, client *rosterapi.Client, repo repository.SessionRepository) *implUseCase {
	return &implUseCase{
		l:      l,
		client: client,
		repo:   repo,
	}
}
