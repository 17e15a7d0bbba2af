package file

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"shift-calendar-sync/internal/roster/repository"
	"shift-calendar-sync/pkg/rosterapi"
)

// persistedCookie is the subset of http.Cookie worth keeping on disk.
type persistedCookie struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Path   string `json:"path,omitempty"`
	Domain string `json:"domain,omitempty"`
}

type persistedUserID struct {
	ID int `json:"id"`
}

// SaveSession writes the session cookies to cookies.json.
func (r *implRepository) SaveSession(ctx context.Context, session rosterapi.Session) error {
	cookies := make([]persistedCookie, 0, len(session))
	for _, c := range session {
		cookies = append(cookies, persistedCookie{
			Name:   c.Name,
			Value:  c.Value,
			Path:   c.Path,
			Domain: c.Domain,
		})
	}
	return r.writeJSON(cookiesFile, cookies)
}

// LoadSession reads cookies.json. A missing or corrupt file is
// ErrNotFound: the caller treats it as "not logged in".
func (r *implRepository) LoadSession(ctx context.Context) (rosterapi.Session, error) {
	var cookies []persistedCookie
	if err := r.readJSON(cookiesFile, &cookies); err != nil {
		return nil, err
	}

	session := make(rosterapi.Session, 0, len(cookies))
	for _, c := range cookies {
		session = append(session, &http.Cookie{
			Name:   c.Name,
			Value:  c.Value,
			Path:   c.Path,
			Domain: c.Domain,
		})
	}
	return session, nil
}

// SaveUserID writes the employee id to user_id.json.
func (r *implRepository) SaveUserID(ctx context.Context, id int) error {
	return r.writeJSON(userIDFile, persistedUserID{ID: id})
}

// LoadUserID reads the employee id from user_id.json.
func (r *implRepository) LoadUserID(ctx context.Context) (int, error) {
	var stored persistedUserID
	if err := r.readJSON(userIDFile, &stored); err != nil {
		return 0, err
	}
	if stored.ID == 0 {
		return 0, repository.ErrNotFound
	}
	return stored.ID, nil
}

func (r *implRepository) writeJSON(name string, v any) error {
	if err := os.MkdirAll(r.stateDir, 0o700); err != nil {
		return fmt.Errorf("failed to create state dir: %w", err)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}

	path := filepath.Join(r.stateDir, name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (r *implRepository) readJSON(name string, out any) error {
	data, err := os.ReadFile(filepath.Join(r.stateDir, name))
	if err != nil {
		return repository.ErrNotFound
	}
	if err := json.Unmarshal(data, out); err != nil {
		return repository.ErrNotFound
	}
	return nil
}
