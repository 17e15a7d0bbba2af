package usecase

import (
	"context"

	"shift-calendar-sync/internal/roster/repository"
	"shift-calendar-sync/pkg/rosterapi"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any) {}

// fakeSessionRepo is an in-memory SessionRepository for tests.
type fakeSessionRepo struct {
	session rosterapi.Session
	userID  int

	saveSessionCalls int
	saveUserIDCalls  int
}

func (f *fakeSessionRepo) SaveSession(ctx context.Context, session rosterapi.Session) error {
	f.saveSessionCalls++
	f.session = session
	return nil
}

func (f *fakeSessionRepo) LoadSession(ctx context.Context) (rosterapi.Session, error) {
	if f.session == nil {
		return nil, repository.ErrNotFound
	}
	return f.session, nil
}

func (f *fakeSessionRepo) SaveUserID(ctx context.Context, id int) error {
	f.saveUserIDCalls++
	f.userID = id
	return nil
}

func (f *fakeSessionRepo) LoadUserID(ctx context.Context) (int, error) {
	if f.userID == 0 {
		return 0, repository.ErrNotFound
	}
	return f.userID, nil
}
