package authority

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"report-console/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

func (a *API) Login(c *gin.Context) {
	var creds models.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	creds.Username = strings.TrimSpace(creds.Username)

	user, hash, err := a.store.UserByUsername(c.Request.Context(), creds.Username)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		storeError(c, err, "user")
		return
	}
	if err != nil || bcrypt.CompareHashAndPassword([]byte(hash), []byte(creds.Password)) != nil {
		slog.Info("auth_event", "event", "login_failed", "username", creds.Username)
		fail(c, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, _, err := a.tokens.Issue(user)
	if err != nil {
		storeError(c, err, "token")
		return
	}
	slog.Info("auth_event", "event", "login", "username", user.Username)
	ok(c, models.LoginResult{Token: token, User: user})
}

// Logout revokes the presented token until its expiry.
func (a *API) Logout(c *gin.Context) {
	cl := claimsFrom(c)
	if err := a.revoker.Revoke(c.Request.Context(), cl.ID, cl.ExpiresAt.Time); err != nil {
		slog.Error("revoke failed", "error", err)
		fail(c, http.StatusServiceUnavailable, "logout unavailable")
		return
	}
	slog.Info("auth_event", "event", "logout", "username", cl.Username)
	ok(c, nil)
}

func (a *API) Me(c *gin.Context) {
	user, err := a.store.UserByID(c.Request.Context(), claimsFrom(c).Subject)
	if errors.Is(err, models.ErrNotFound) {
		fail(c, http.StatusUnauthorized, "user no longer exists")
		return
	}
	if err != nil {
		storeError(c, err, "user")
		return
	}
	ok(c, user)
}
