package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"shift-calendar-sync/internal/middleware"
	"shift-calendar-sync/pkg/log"
)

func newTestRouter(cfg middleware.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	mw := middleware.New(log.Init(log.ZapConfig{Level: "error"}), cfg)

	r := gin.New()
	r.Use(mw.CORS(), mw.RequestID(), mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func TestCORS(t *testing.T) {
	t.Run("sets allow-origin on normal requests", func(t *testing.T) {
		r := newTestRouter(middleware.Config{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("expected wildcard origin, got %q", got)
		}
	})

	t.Run("preflight short-circuits with 204", func(t *testing.T) {
		r := newTestRouter(middleware.Config{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/ping", nil))

		if w.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", w.Code)
		}
	})
}

func TestRequestID(t *testing.T) {
	t.Run("generates an id when absent", func(t *testing.T) {
		r := newTestRouter(middleware.Config{})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		if w.Header().Get("X-Request-ID") == "" {
			t.Error("expected a generated request id")
		}
	})

	t.Run("echoes a caller-supplied id", func(t *testing.T) {
		r := newTestRouter(middleware.Config{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "abc-123")
		r.ServeHTTP(w, req)

		if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
			t.Errorf("expected echoed id, got %q", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("throttles a hot client", func(t *testing.T) {
		r := newTestRouter(middleware.Config{RateLimitPerMin: 10})

		var limited bool
		for i := 0; i < 20; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("X-Forwarded-For", "203.0.113.7")
			r.ServeHTTP(w, req)
			if w.Code == http.StatusTooManyRequests {
				limited = true
				break
			}
		}

		if !limited {
			t.Error("expected at least one 429 after burst exhaustion")
		}
	})

	t.Run("clients are limited independently", func(t *testing.T) {
		r := newTestRouter(middleware.Config{RateLimitPerMin: 10})

		for i := 0; i < 20; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("X-Forwarded-For", "203.0.113.8")
			r.ServeHTTP(w, req)
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("expected fresh client to pass, got %d", w.Code)
		}
	})

	t.Run("disabled limiter passes everything", func(t *testing.T) {
		r := newTestRouter(middleware.Config{})

		for i := 0; i < 30; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
			if w.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d", w.Code)
			}
		}
	})
}
