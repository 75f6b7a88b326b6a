package config

import (
	"testing"
	"time"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestConsoleFromEnv_Defaults(t *testing.T) {
	cfg, err := ConsoleFromEnv(env(map[string]string{"SESSION_SECRET": "s3cret"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerPort != "3000" {
		t.Errorf("ServerPort = %s", cfg.ServerPort)
	}
	if cfg.APIOrigin != DefaultAPIOrigin || cfg.APIPrefix != DefaultAPIPrefix {
		t.Errorf("unexpected API base: %s%s", cfg.APIOrigin, cfg.APIPrefix)
	}
	if cfg.APITimeout != 30*time.Second {
		t.Errorf("APITimeout = %s", cfg.APITimeout)
	}
	if cfg.PageLimit != 100 {
		t.Errorf("PageLimit = %d", cfg.PageLimit)
	}
	if cfg.Location.String() != DefaultTimezone {
		t.Errorf("Location = %s", cfg.Location)
	}
	if len(cfg.CSRFKey) != 32 {
		t.Errorf("CSRF key must be 32 bytes, got %d", len(cfg.CSRFKey))
	}
}

func TestConsoleFromEnv_Overrides(t *testing.T) {
	cfg, err := ConsoleFromEnv(env(map[string]string{
		"SESSION_SECRET": "s",
		"API_ORIGIN":     "https://reports.example.com",
		"API_PREFIX":     "/authority/v2.0",
		"API_TIMEOUT":    "5s",
		"DISPLAY_TZ":     "UTC",
		"PAGE_LIMIT":     "20",
		"SECURE_COOKIES": "true",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIOrigin != "https://reports.example.com" || cfg.APIPrefix != "/authority/v2.0" {
		t.Errorf("unexpected API base: %s%s", cfg.APIOrigin, cfg.APIPrefix)
	}
	if cfg.APITimeout != 5*time.Second || cfg.PageLimit != 20 || !cfg.SecureCookies {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.Location != time.UTC {
		t.Errorf("Location = %s", cfg.Location)
	}
}

func TestConsoleFromEnv_Errors(t *testing.T) {
	cases := []map[string]string{
		{},
		{"SESSION_SECRET": "s", "DISPLAY_TZ": "Mars/Olympus"},
		{"SESSION_SECRET": "s", "API_TIMEOUT": "soon"},
		{"SESSION_SECRET": "s", "PAGE_LIMIT": "0"},
		{"SESSION_SECRET": "s", "SECURE_COOKIES": "maybe"},
	}
	for _, c := range cases {
		if _, err := ConsoleFromEnv(env(c)); err == nil {
			t.Errorf("expected error for %v", c)
		}
	}
}

func TestAuthorityFromEnv(t *testing.T) {
	if _, err := AuthorityFromEnv(env(map[string]string{"JWT_SECRET": "x"})); err == nil {
		t.Error("expected error without DB_DSN")
	}
	if _, err := AuthorityFromEnv(env(map[string]string{"DB_DSN": "x"})); err == nil {
		t.Error("expected error without JWT_SECRET")
	}

	cfg, err := AuthorityFromEnv(env(map[string]string{
		"DB_DSN":     "host=db",
		"JWT_SECRET": "x",
		"TOKEN_TTL":  "2h",
		"REDIS_DB":   "3",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ServerPort != "8080" || cfg.TokenTTL != 2*time.Hour || cfg.RedisDB != 3 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.AdminPassword == "" {
		t.Error("expected default admin password")
	}
}
