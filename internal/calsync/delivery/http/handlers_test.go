package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"shift-calendar-sync/internal/calsync"
	calsyncHTTP "shift-calendar-sync/internal/calsync/delivery/http"
	"shift-calendar-sync/internal/roster"
	"shift-calendar-sync/pkg/log"
)

type fakeUseCase struct {
	authURL      string
	callbackOut  calsync.CallbackOutput
	callbackErr  error
	syncOAuthIn  calsync.SyncOAuthInput
	syncOut      calsync.SyncOutput
	syncOAuthErr error
	syncSAErr    error
}

func (f *fakeUseCase) AuthURL(ctx context.Context, userID int) (calsync.AuthURLOutput, error) {
	return calsync.AuthURLOutput{URL: f.authURL}, nil
}

func (f *fakeUseCase) HandleCallback(ctx context.Context, input calsync.CallbackInput) (calsync.CallbackOutput, error) {
	return f.callbackOut, f.callbackErr
}

func (f *fakeUseCase) SyncOAuth(ctx context.Context, input calsync.SyncOAuthInput) (calsync.SyncOutput, error) {
	f.syncOAuthIn = input
	return f.syncOut, f.syncOAuthErr
}

func (f *fakeUseCase) SyncServiceAccount(ctx context.Context, userID int) (calsync.SyncOutput, error) {
	return f.syncOut, f.syncSAErr
}

func newTestRouter(uc calsync.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := calsyncHTTP.New(log.Init(log.ZapConfig{Level: "error"}), uc)
	calsyncHTTP.RegisterRoutes(r.Group(""), h)
	return r
}

func TestAuthLoginEndpoint(t *testing.T) {
	t.Run("redirects to consent URL", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{authURL: "https://accounts.google.com/o/oauth2/auth?state=42"})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/login?user_id=42", nil))

		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
		if loc := w.Header().Get("Location"); !strings.Contains(loc, "state=42") {
			t.Errorf("unexpected redirect target: %q", loc)
		}
	})

	t.Run("missing user_id returns 400", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/login", nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestAuthCallbackEndpoint(t *testing.T) {
	t.Run("redirects to dashboard", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{callbackOut: calsync.CallbackOutput{
			RedirectURL: "https://dashboard.example.com/dashboard?access_token=at&user_id=42",
		}})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=42", nil))

		if w.Code != http.StatusFound {
			t.Fatalf("expected 302, got %d", w.Code)
		}
		if loc := w.Header().Get("Location"); !strings.HasPrefix(loc, "https://dashboard.example.com/dashboard") {
			t.Errorf("unexpected redirect target: %q", loc)
		}
	})

	t.Run("missing code returns 400", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/callback?state=42", nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("exchange failure returns 400", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{callbackErr: calsync.ErrExchangeFailed})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=42", nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestSyncOAuthEndpoint(t *testing.T) {
	body := `{
		"access_token": "at-123",
		"user_id": 42,
		"shifts": [
			{"date": "2025-03-01", "planned_start": "09:00", "planned_end": "17:30", "role": 1, "role_name": "Bartender"},
			{"date": "2025-03-02", "planned_start": "22:00", "planned_end": "06:00", "role": 2}
		]
	}`

	t.Run("reports batch counts", func(t *testing.T) {
		uc := &fakeUseCase{syncOut: calsync.SyncOutput{Inserted: 2}}
		r := newTestRouter(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sync-calendar-oauth", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}

		var resp map[string]any
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["inserted"] != float64(2) {
			t.Errorf("expected inserted 2, got %v", resp["inserted"])
		}

		if len(uc.syncOAuthIn.Shifts) != 2 {
			t.Fatalf("expected 2 shifts passed through, got %d", len(uc.syncOAuthIn.Shifts))
		}
		if uc.syncOAuthIn.Shifts[1].RoleName != "Unknown Role" {
			t.Errorf("expected missing role_name to default, got %q", uc.syncOAuthIn.Shifts[1].RoleName)
		}
	})

	t.Run("missing access token returns 401", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{syncOAuthErr: calsync.ErrMissingAccessToken})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sync-calendar-oauth", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sync-calendar-oauth", strings.NewReader(`{"user_id": 42}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestSyncServiceAccountEndpoint(t *testing.T) {
	t.Run("reports batch counts", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{syncOut: calsync.SyncOutput{Inserted: 3, Failed: 1}})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sync-calendar/42", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var resp map[string]any
		json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["inserted"] != float64(3) || resp["failed"] != float64(1) {
			t.Errorf("unexpected counts: %v", resp)
		}
	})

	t.Run("no roster session returns 401", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{syncSAErr: roster.ErrNoSession})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sync-calendar/42", nil))

		if w.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", w.Code)
		}
	})

	t.Run("non-numeric user_id returns 400", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sync-calendar/bogus", nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}
