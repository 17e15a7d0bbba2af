package usecase

import (
	"context"
	"errors"

	"shift-calendar-sync/internal/calsync/repository"
	"shift-calendar-sync/internal/roster"
	"shift-calendar-sync/pkg/gcalendar"
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

// fakeTokenRepo is an in-memory TokenRepository.
type fakeTokenRepo struct {
	tokens map[int]gcalendar.TokenBundle
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: map[int]gcalendar.TokenBundle{}}
}

func (f *fakeTokenRepo) SaveToken(ctx context.Context, userID int, bundle gcalendar.TokenBundle) error {
	f.tokens[userID] = bundle
	return nil
}

func (f *fakeTokenRepo) LoadToken(ctx context.Context, userID int) (gcalendar.TokenBundle, error) {
	bundle, ok := f.tokens[userID]
	if !ok {
		return gcalendar.TokenBundle{}, repository.ErrNotFound
	}
	return bundle, nil
}

// fakeInserter records created events and can fail on demand.
type fakeInserter struct {
	events []gcalendar.EventInput
	failOn map[string]bool // summaries that should fail
}

func (f *fakeInserter) CreateEvent(ctx context.Context, req gcalendar.EventInput) (*gcalendar.Event, error) {
	if f.failOn[req.Summary] {
		return nil, errors.New("calendar rejected event")
	}
	f.events = append(f.events, req)
	return &gcalendar.Event{ID: "ev", Summary: req.Summary, HTMLLink: "https://calendar.google.com/ev"}, nil
}

// fakeFactory hands out a fixed inserter for both variants.
type fakeFactory struct {
	inserter          *fakeInserter
	serviceAccountErr error
}

func (f *fakeFactory) ForBundle(ctx context.Context, bundle gcalendar.TokenBundle) (gcalendar.EventInserter, error) {
	return f.inserter, nil
}

func (f *fakeFactory) ServiceAccount(ctx context.Context) (gcalendar.EventInserter, error) {
	if f.serviceAccountErr != nil {
		return nil, f.serviceAccountErr
	}
	return f.inserter, nil
}

// fakeRosterUC serves a canned schedule.
type fakeRosterUC struct {
	schedule roster.ScheduleOutput
	err      error
}

func (f *fakeRosterUC) Login(ctx context.Context, input roster.LoginInput) (roster.LoginOutput, error) {
	return roster.LoginOutput{}, nil
}

func (f *fakeRosterUC) FetchSchedule(ctx context.Context, userID int) (roster.ScheduleOutput, error) {
	return f.schedule, f.err
}

func (f *fakeRosterUC) CalendarLink(ctx context.Context, input roster.CalendarLinkInput) (roster.CalendarLinkOutput, error) {
	return roster.CalendarLinkOutput{}, nil
}
