package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"shift-calendar-sync/internal/model"
	"shift-calendar-sync/internal/roster"
	rosterHTTP "shift-calendar-sync/internal/roster/delivery/http"
	"shift-calendar-sync/pkg/log"
)

type fakeUseCase struct {
	loginOut    roster.LoginOutput
	loginErr    error
	scheduleOut roster.ScheduleOutput
	scheduleErr error
}

func (f *fakeUseCase) Login(ctx context.Context, input roster.LoginInput) (roster.LoginOutput, error) {
	return f.loginOut, f.loginErr
}

func (f *fakeUseCase) FetchSchedule(ctx context.Context, userID int) (roster.ScheduleOutput, error) {
	return f.scheduleOut, f.scheduleErr
}

func (f *fakeUseCase) CalendarLink(ctx context.Context, input roster.CalendarLinkInput) (roster.CalendarLinkOutput, error) {
	return roster.CalendarLinkOutput{Link: "https://www.google.com/calendar/event?action=TEMPLATE&x"}, nil
}

func newTestRouter(uc roster.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := rosterHTTP.New(log.Init(log.ZapConfig{Level: "error"}), uc)
	rosterHTTP.RegisterRoutes(r.Group(""), h)
	return r
}

func TestLoginEndpoint(t *testing.T) {
	t.Run("success returns message and user_id", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{loginOut: roster.LoginOutput{UserID: 42}})

		w := httptest.NewRecorder()
		body := `{"company": "acme", "username": "jo", "password": "pw"}`
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["user_id"] != float64(42) {
			t.Errorf("expected user_id 42, got %v", resp["user_id"])
		}
		if resp["message"] != "Login successful!" {
			t.Errorf("unexpected message: %v", resp["message"])
		}
	})

	t.Run("rejection returns 401", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{loginErr: roster.ErrLoginFailed})

		w := httptest.NewRecorder()
		body := `{"company": "acme", "username": "jo", "password": "bad"}`
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("missing fields returns 400", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"company": "acme"}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestScheduleEndpoint(t *testing.T) {
	t.Run("returns bare shift list", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{scheduleOut: roster.ScheduleOutput{
			Shifts: []model.Shift{
				{Date: "2025-03-01", PlannedStart: "09:00", PlannedEnd: "17:00", Role: 1, RoleName: "Bartender"},
			},
		}})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schedule/42", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var shifts []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &shifts); err != nil {
			t.Fatalf("expected a bare JSON array: %v", err)
		}
		if len(shifts) != 1 || shifts[0]["role_name"] != "Bartender" {
			t.Errorf("unexpected payload: %v", shifts)
		}
	})

	t.Run("no session returns 401 not a panic", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{scheduleErr: roster.ErrNoSession})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schedule/42", nil))

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("rota failure returns 400", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{scheduleErr: roster.ErrRotaUnavailable})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schedule/42", nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-numeric user_id returns 400", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/schedule/bogus", nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestCalendarLinkEndpoint(t *testing.T) {
	t.Run("returns link", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{})

		w := httptest.NewRecorder()
		target := "/calendar-link?date=2025-03-01&start_time=09:00&end_time=17:00&role_name=Bartender"
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]string
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["google_calendar_link"] == "" {
			t.Errorf("expected google_calendar_link, got %v", resp)
		}
	})

	t.Run("missing params returns 400", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/calendar-link?date=2025-03-01", nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}
