// Package session keeps the backend token and the signed-in profile in the
// console's cookie session.
package session

import (
	"context"
	"encoding/json"
	"log/slog"

	"report-console/internal/api"
	"report-console/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const (
	KeyToken   = "auth_token"
	KeyProfile = "user_info"
)

// Backend is the part of sessions.Session the store needs.
type Backend interface {
	Get(key interface{}) interface{}
	Set(key interface{}, val interface{})
	Delete(key interface{})
	Save() error
}

type Store struct {
	sess   Backend
	client *api.Client
}

func New(sess Backend, client *api.Client) *Store {
	return &Store{sess: sess, client: client}
}

// Default binds the request's cookie session.
func Default(c *gin.Context, client *api.Client) *Store {
	return New(sessions.Default(c), client)
}

func (s *Store) Token() string {
	tok, _ := s.sess.Get(KeyToken).(string)
	return tok
}

// Profile returns nil when no profile is stored or it cannot be decoded.
func (s *Store) Profile() *models.User {
	raw, ok := s.sess.Get(KeyProfile).(string)
	if !ok || raw == "" {
		return nil
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		slog.Warn("session: dropping unreadable profile", "err", err)
		return nil
	}
	return &u
}

func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// API returns the backend client bound to the session token.
func (s *Store) API() *api.Client {
	return s.client.WithToken(s.Token())
}

// Login persists token and profile.
func (s *Store) Login(token string, profile models.User) error {
	s.sess.Set(KeyToken, token)
	if err := s.setProfile(profile); err != nil {
		return err
	}
	return s.sess.Save()
}

func (s *Store) setProfile(profile models.User) error {
	profile.Password = ""
	raw, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	s.sess.Set(KeyProfile, string(raw))
	return nil
}

// Logout tells the backend to end the session, then clears the local keys
// whatever the backend answered.
func (s *Store) Logout(ctx context.Context) {
	defer func() {
		s.sess.Delete(KeyToken)
		s.sess.Delete(KeyProfile)
		if err := s.sess.Save(); err != nil {
			slog.Error("session: save after logout", "err", err)
		}
	}()

	if !s.IsAuthenticated() {
		return
	}
	if err := s.API().Logout(ctx); err != nil {
		slog.Warn("session: backend logout failed", "err", err)
	}
}

// CheckAuth validates the stored token against the backend and refreshes
// the profile. Any failure logs the session out.
func (s *Store) CheckAuth(ctx context.Context) bool {
	if !s.IsAuthenticated() {
		return false
	}

	me, err := s.API().Me(ctx)
	if err != nil {
		slog.Info("session: token rejected", "err", err)
		s.Logout(ctx)
		return false
	}

	if err := s.setProfile(me); err != nil {
		slog.Warn("session: profile refresh", "err", err)
		return true
	}
	if err := s.sess.Save(); err != nil {
		slog.Warn("session: save refreshed profile", "err", err)
	}
	return true
}
