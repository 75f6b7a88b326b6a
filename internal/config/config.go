package config

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
)

const (
	DefaultAPIOrigin = "http://localhost:8080"
	DefaultAPIPrefix = "/authority/v1.0"
	DefaultTimezone  = "Asia/Taipei"
	DefaultPageLimit = 100
)

// Console configures the web console that fronts the reporting backend.
type Console struct {
	ServerPort    string
	SessionSecret string
	CSRFKey       []byte // 32 bytes, derived from CSRF_KEY
	SecureCookies bool

	APIOrigin  string
	APIPrefix  string
	APITimeout time.Duration

	Location  *time.Location
	PageLimit int
}

// Authority configures the reference REST backend.
type Authority struct {
	DBDSN         string
	ServerPort    string
	APIPrefix     string
	JWTSecret     string
	TokenTTL      time.Duration
	AdminPassword string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// LoadConsole reads .env (if present) and the environment, exiting on
// missing required values.
func LoadConsole() *Console {
	_ = godotenv.Load()

	cfg, err := ConsoleFromEnv(os.Getenv)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func LoadAuthority() *Authority {
	_ = godotenv.Load()

	cfg, err := AuthorityFromEnv(os.Getenv)
	if err != nil {
		log.Fatal(err)
	}
	return cfg
}

func ConsoleFromEnv(getenv func(string) string) (*Console, error) {
	cfg := &Console{
		ServerPort:    getenv("SERVER_PORT"),
		SessionSecret: getenv("SESSION_SECRET"),
		APIOrigin:     getenv("API_ORIGIN"),
		APIPrefix:     getenv("API_PREFIX"),
	}

	if cfg.SessionSecret == "" {
		return nil, errors.New("SESSION_SECRET is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "3000"
	}
	if cfg.APIOrigin == "" {
		cfg.APIOrigin = DefaultAPIOrigin
	}
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = DefaultAPIPrefix
	}

	csrfSecret := getenv("CSRF_KEY")
	if csrfSecret == "" {
		csrfSecret = cfg.SessionSecret
	}
	key := sha256.Sum256([]byte(csrfSecret))
	cfg.CSRFKey = key[:]

	var err error
	if cfg.SecureCookies, err = boolEnv(getenv, "SECURE_COOKIES", false); err != nil {
		return nil, err
	}
	if cfg.APITimeout, err = durationEnv(getenv, "API_TIMEOUT", 30*time.Second); err != nil {
		return nil, err
	}
	if cfg.PageLimit, err = intEnv(getenv, "PAGE_LIMIT", DefaultPageLimit); err != nil {
		return nil, err
	}
	if cfg.PageLimit <= 0 {
		return nil, fmt.Errorf("PAGE_LIMIT must be positive, got %d", cfg.PageLimit)
	}

	tz := getenv("DISPLAY_TZ")
	if tz == "" {
		tz = DefaultTimezone
	}
	if cfg.Location, err = time.LoadLocation(tz); err != nil {
		return nil, fmt.Errorf("DISPLAY_TZ %q: %w", tz, err)
	}

	return cfg, nil
}

func AuthorityFromEnv(getenv func(string) string) (*Authority, error) {
	cfg := &Authority{
		DBDSN:         getenv("DB_DSN"),
		ServerPort:    getenv("SERVER_PORT"),
		APIPrefix:     getenv("API_PREFIX"),
		JWTSecret:     getenv("JWT_SECRET"),
		AdminPassword: getenv("ADMIN_PASSWORD"),
		RedisAddr:     getenv("REDIS_ADDR"),
		RedisPassword: getenv("REDIS_PASSWORD"),
	}

	if cfg.DBDSN == "" {
		return nil, errors.New("DB_DSN is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	if cfg.ServerPort == "" {
		cfg.ServerPort = "8080"
	}
	if cfg.APIPrefix == "" {
		cfg.APIPrefix = DefaultAPIPrefix
	}
	if cfg.AdminPassword == "" {
		cfg.AdminPassword = "admin123"
	}

	var err error
	if cfg.TokenTTL, err = durationEnv(getenv, "TOKEN_TTL", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = intEnv(getenv, "REDIS_DB", 0); err != nil {
		return nil, err
	}

	return cfg, nil
}

func durationEnv(getenv func(string) string, key string, def time.Duration) (time.Duration, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func intEnv(getenv func(string) string, key string, def int) (int, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func boolEnv(getenv func(string) string, key string, def bool) (bool, error) {
	v := getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
