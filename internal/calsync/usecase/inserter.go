package usecase

import (
	"context"
	"errors"

	"shift-calendar-sync/internal/calsync"
	"shift-calendar-sync/pkg/gcalendar"
)

// gcalFactory is the production InserterFactory backed by pkg/gcalendar.
type gcalFactory struct {
	serviceAccountKeyPath string
}

var _ calsync.InserterFactory = (*gcalFactory)(nil)

// NewInserterFactory creates the Google-backed inserter factory.
// keyPath may be empty when the service-account sync path is disabled.
func NewInserterFactory(serviceAccountKeyPath string) *gcalFactory {
	return &gcalFactory{serviceAccountKeyPath: serviceAccountKeyPath}
}

func (f *gcalFactory) ForBundle(ctx context.Context, bundle gcalendar.TokenBundle) (gcalendar.EventInserter, error) {
	return gcalendar.NewOAuthClient(ctx, bundle)
}

func (f *gcalFactory) ServiceAccount(ctx context.Context) (gcalendar.EventInserter, error) {
	if f.serviceAccountKeyPath == "" {
		return nil, errors.New("service account key not configured")
	}
	return gcalendar.NewServiceAccountClient(ctx, f.serviceAccountKeyPath)
}
