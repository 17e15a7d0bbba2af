package gcalendar

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// DefaultCalendarID is used when EventInput.CalendarID is empty.
const DefaultCalendarID = "primary"

// EventInserter is the single capability both auth variants provide.
type EventInserter interface {
	CreateEvent(ctx context.Context, req EventInput) (*Event, error)
}

// Client wraps the Google Calendar API service. Construct it with one
// of the auth variants below; insertion behavior is identical.
type Client struct {
	service *calendar.Service
}

var _ EventInserter = (*Client)(nil)

// NewServiceAccountClient creates a Calendar client from a Service
// Account JSON key file, authorized for the calendar write scope.
func NewServiceAccountClient(ctx context.Context, keyPath string) (*Client, error) {
	data, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read service account key: %w", err)
	}

	config, err := google.JWTConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("failed to parse service account key: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(config.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewOAuthClient creates a Calendar client from a persisted per-user
// token bundle. The bundle carries no expiry, so a refresh token plus
// endpoint must be present for the oauth2 transport to renew access.
func NewOAuthClient(ctx context.Context, bundle TokenBundle) (*Client, error) {
	if bundle.AccessToken == "" {
		return nil, errors.New("token bundle has no access token")
	}

	conf := &oauth2.Config{
		ClientID:     bundle.ClientID,
		ClientSecret: bundle.ClientSecret,
		Scopes:       []string{calendar.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}
	if bundle.TokenURI != "" {
		conf.Endpoint.TokenURL = bundle.TokenURI
	}

	tok := &oauth2.Token{
		AccessToken:  bundle.AccessToken,
		RefreshToken: bundle.RefreshToken,
		TokenType:    "Bearer",
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service from token: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured
// HTTP client. Used by tests.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// CreateEvent inserts a single event.
func (c *Client) CreateEvent(ctx context.Context, req EventInput) (*Event, error) {
	event := &calendar.Event{
		Summary: req.Summary,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = DefaultCalendarID
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:        created.Id,
		Summary:   created.Summary,
		HTMLLink:  created.HtmlLink,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

// InsertEvents inserts events one by one. A failure on one event does
// not stop the batch; the inserted count and the joined per-event
// errors are both returned.
func (c *Client) InsertEvents(ctx context.Context, events []EventInput) (int, error) {
	inserted := 0
	var errs []error
	for _, ev := range events {
		if _, err := c.CreateEvent(ctx, ev); err != nil {
			errs = append(errs, fmt.Errorf("event %q: %w", ev.Summary, err))
			continue
		}
		inserted++
	}
	return inserted, errors.Join(errs...)
}
