package file_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"shift-calendar-sync/internal/roster/repository"
	"shift-calendar-sync/internal/roster/repository/file"
	"shift-calendar-sync/pkg/log"
	"shift-calendar-sync/pkg/rosterapi"
)

func TestSessionRoundTrip(t *testing.T) {
	repo := file.New(log.Init(log.ZapConfig{Level: "error"}), t.TempDir())
	ctx := context.Background()

	session := rosterapi.Session{
		{Name: "sessionid", Value: "abc123", Path: "/"},
		{Name: "csrftoken", Value: "tok"},
	}

	if err := repo.SaveSession(ctx, session); err != nil {
		t.Fatalf("SaveSession: %v", err)
	}

	loaded, err := repo.LoadSession(ctx)
	if err != nil {
		t.Fatalf("LoadSession: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 cookies, got %d", len(loaded))
	}
	if loaded[0].Name != "sessionid" || loaded[0].Value != "abc123" {
		t.Errorf("unexpected first cookie: %+v", loaded[0])
	}
}

func TestLoadSessionMissing(t *testing.T) {
	repo := file.New(log.Init(log.ZapConfig{Level: "error"}), t.TempDir())

	_, err := repo.LoadSession(context.Background())
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadSessionCorrupt(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "cookies.json"), []byte("{not json"), 0o600)

	repo := file.New(log.Init(log.ZapConfig{Level: "error"}), dir)
	_, err := repo.LoadSession(context.Background())
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound for corrupt file, got %v", err)
	}
}

func TestUserIDWithoutSession(t *testing.T) {
	// A state dir holding only user_id.json happens when cookies.json
	// was removed or never written. The one-shot script relies on the
	// two loads staying independent to detect the stale state.
	repo := file.New(log.Init(log.ZapConfig{Level: "error"}), t.TempDir())
	ctx := context.Background()

	if err := repo.SaveUserID(ctx, 42); err != nil {
		t.Fatalf("SaveUserID: %v", err)
	}

	id, err := repo.LoadUserID(ctx)
	if err != nil || id != 42 {
		t.Fatalf("LoadUserID: id=%d err=%v", id, err)
	}

	if _, err := repo.LoadSession(ctx); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound for missing cookies, got %v", err)
	}
}

func TestUserIDRoundTrip(t *testing.T) {
	repo := file.New(log.Init(log.ZapConfig{Level: "error"}), t.TempDir())
	ctx := context.Background()

	if _, err := repo.LoadUserID(ctx); !errors.Is(err, repository.ErrNotFound) {
		t.Error("expected ErrNotFound before save")
	}

	if err := repo.SaveUserID(ctx, 42); err != nil {
		t.Fatalf("SaveUserID: %v", err)
	}

	id, err := repo.LoadUserID(ctx)
	if err != nil {
		t.Fatalf("LoadUserID: %v", err)
	}
	if id != 42 {
		t.Errorf("expected 42, got %d", id)
	}
}
