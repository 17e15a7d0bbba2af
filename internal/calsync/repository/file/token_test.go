package file_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"shift-calendar-sync/internal/calsync/repository"
	"shift-calendar-sync/internal/calsync/repository/file"
	"shift-calendar-sync/pkg/gcalendar"
	"shift-calendar-sync/pkg/log"
)

func TestTokenRoundTrip(t *testing.T) {
	dir := t.TempDir()
	repo := file.New(log.Init(log.ZapConfig{Level: "error"}), dir)
	ctx := context.Background()

	bundle := gcalendar.TokenBundle{
		AccessToken:  "at",
		RefreshToken: "rt",
		TokenURI:     "https://oauth2.googleapis.com/token",
		ClientID:     "cid",
		ClientSecret: "secret",
	}

	if err := repo.SaveToken(ctx, 42, bundle); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "42.json")); err != nil {
		t.Errorf("expected per-user token file: %v", err)
	}

	loaded, err := repo.LoadToken(ctx, 42)
	if err != nil {
		t.Fatalf("LoadToken: %v", err)
	}
	if loaded != bundle {
		t.Errorf("round trip mismatch: %+v", loaded)
	}
}

func TestTokensAreIndependentPerUser(t *testing.T) {
	repo := file.New(log.Init(log.ZapConfig{Level: "error"}), t.TempDir())
	ctx := context.Background()

	repo.SaveToken(ctx, 1, gcalendar.TokenBundle{AccessToken: "one"})
	repo.SaveToken(ctx, 2, gcalendar.TokenBundle{AccessToken: "two"})

	first, _ := repo.LoadToken(ctx, 1)
	if first.AccessToken != "one" {
		t.Errorf("user 1 bundle overwritten: %+v", first)
	}
}

func TestLoadTokenMissing(t *testing.T) {
	repo := file.New(log.Init(log.ZapConfig{Level: "error"}), t.TempDir())

	_, err := repo.LoadToken(context.Background(), 99)
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
