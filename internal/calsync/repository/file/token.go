package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"shift-calendar-sync/internal/calsync/repository"
	"shift-calendar-sync/pkg/gcalendar"
	pkgLog "shift-calendar-sync/pkg/log"
)

type implRepository struct {
	l        pkgLog.Logger
	tokenDir string
}

var _ repository.TokenRepository = (*implRepository)(nil)

// New creates a file-backed token repository. Each user's bundle is an
// independent <user_id>.json under tokenDir; last write wins.
func New(l pkgLog.Logger, tokenDir string) *implRepository {
	return &implRepository{
		l:        l,
		tokenDir: tokenDir,
	}
}

// SaveToken writes the user's bundle to <tokenDir>/<user_id>.json.
func (r *implRepository) SaveToken(ctx context.Context, userID int, bundle gcalendar.TokenBundle) error {
	if err := os.MkdirAll(r.tokenDir, 0o700); err != nil {
		return fmt.Errorf("failed to create token dir: %w", err)
	}

	data, err := json.Marshal(bundle)
	if err != nil {
		return fmt.Errorf("failed to marshal token bundle: %w", err)
	}

	if err := os.WriteFile(r.tokenPath(userID), data, 0o600); err != nil {
		return fmt.Errorf("failed to write token bundle: %w", err)
	}

	r.l.Infof(ctx, "saved OAuth token bundle for user %d", userID)
	return nil
}

// LoadToken reads the user's bundle. Absent or unreadable files are
// ErrNotFound: the user has not completed OAuth consent.
func (r *implRepository) LoadToken(ctx context.Context, userID int) (gcalendar.TokenBundle, error) {
	data, err := os.ReadFile(r.tokenPath(userID))
	if err != nil {
		return gcalendar.TokenBundle{}, repository.ErrNotFound
	}

	var bundle gcalendar.TokenBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		return gcalendar.TokenBundle{}, repository.ErrNotFound
	}
	return bundle, nil
}

func (r *implRepository) tokenPath(userID int) string {
	return filepath.Join(r.tokenDir, strconv.Itoa(userID)+".json")
}
