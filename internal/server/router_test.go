package server

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"report-console/internal/config"

	"github.com/gin-gonic/gin"
)

func testConfig() *config.Console {
	return &config.Console{
		ServerPort:    "3000",
		SessionSecret: "test-session-secret",
		CSRFKey:       []byte("0123456789abcdef0123456789abcdef"),
		APIOrigin:     "http://127.0.0.1:1",
		APIPrefix:     config.DefaultAPIPrefix,
		APITimeout:    time.Second,
		Location:      time.UTC,
		PageLimit:     config.DefaultPageLimit,
	}
}

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := testConfig()
	r, err := NewRouter(cfg, NewClient(cfg))
	if err != nil {
		t.Fatalf("NewRouter: %v", err)
	}
	return Protect(cfg, r)
}

func TestHealth(t *testing.T) {
	h := newHandler(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Errorf("got %d %q", rec.Code, rec.Body.String())
	}
}

func TestLoginPageCarriesCSRFField(t *testing.T) {
	h := newHandler(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/login", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `name="csrf_token"`) {
		t.Error("login form has no csrf_token field")
	}
}

func TestPostWithoutCSRFTokenIsRejected(t *testing.T) {
	h := newHandler(t)
	form := url.Values{"username": {"admin"}, "password": {"admin123"}}
	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status %d, want 403", rec.Code)
	}
}

func TestAnonymousDashboardRedirects(t *testing.T) {
	h := newHandler(t)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/login" {
		t.Errorf("got %d to %q, want redirect to /login", rec.Code, rec.Header().Get("Location"))
	}
}
