package file

import (
	"shift-calendar-sync/internal/roster/repository"
	pkgLog "shift-calendar-sync/pkg/log"
)

const (
	cookiesFile = "cookies.json"
	userIDFile  = "user_id.json"
)

type implRepository struct {
	l        pkgLog.Logger
	stateDir string
}

var _ repository.SessionRepository = (*implRepository)(nil)

// New creates a file-backed session repository rooted at stateDir.
func New(l pkgLog.Logger, stateDir string) *implRepository {
	return &implRepository{
		l:        l,
		stateDir: stateDir,
	}
}
