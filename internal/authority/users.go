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

const minPasswordLength = 6

func (a *API) ListUsers(c *gin.Context) {
	pageNo, limit := pageParams(c)
	users, total, err := a.store.ListUsers(c.Request.Context(), pageNo, limit)
	if err != nil {
		storeError(c, err, "users")
		return
	}
	if users == nil {
		users = []models.User{}
	}
	ok(c, models.UserList{Users: users, Total: total})
}

func (a *API) GetUser(c *gin.Context) {
	u, err := a.store.UserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err, "user")
		return
	}
	ok(c, u)
}

func (a *API) CreateUser(c *gin.Context) {
	var in models.NewUser
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	in.Username = strings.TrimSpace(in.Username)
	if in.Role == "" {
		in.Role = models.RoleUser
	}
	switch {
	case in.Username == "":
		fail(c, http.StatusBadRequest, "username is required")
		return
	case len(in.Password) < minPasswordLength:
		fail(c, http.StatusBadRequest, "password must be at least 6 characters")
		return
	case !in.Role.Valid():
		fail(c, http.StatusBadRequest, "role must be admin or user")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		storeError(c, err, "user")
		return
	}
	id, err := a.store.CreateUser(c.Request.Context(), in.Username, strings.TrimSpace(in.Email), string(hash), in.Role)
	if err != nil {
		storeError(c, err, "user")
		return
	}
	a.audit(c, "user", id, "create", in.Username)
	slog.Info("user_event", "event", "created", "username", in.Username, "actor", claimsFrom(c).Username)
	ok(c, id)
}

// UpdateUser applies email, role and password. The username cannot change.
func (a *API) UpdateUser(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	fields, err := patchFields(body, map[string]bool{"email": true, "role": true, "password": true})
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	if role, found := fields["role"]; found && !models.UserRole(role.(string)).Valid() {
		fail(c, http.StatusBadRequest, "role must be admin or user")
		return
	}
	if pw, found := fields["password"]; found {
		delete(fields, "password")
		if len(pw.(string)) < minPasswordLength {
			fail(c, http.StatusBadRequest, "password must be at least 6 characters")
			return
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(pw.(string)), bcrypt.DefaultCost)
		if err != nil {
			storeError(c, err, "user")
			return
		}
		fields["password_hash"] = string(hash)
	}

	id := c.Param("id")
	if err := a.store.UpdateUser(c.Request.Context(), id, fields); err != nil {
		storeError(c, err, "user")
		return
	}
	a.audit(c, "user", id, "update", keys(fields))
	ok(c, nil)
}

// DeleteUser refuses the protected system account regardless of caller.
func (a *API) DeleteUser(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	u, err := a.store.UserByID(ctx, id)
	if err != nil {
		storeError(c, err, "user")
		return
	}
	if u.Protected() {
		slog.Warn("user_event", "event", "protected_delete_refused", "actor", claimsFrom(c).Username)
		fail(c, http.StatusForbidden, "the admin account cannot be deleted")
		return
	}

	if err := a.store.DeleteUser(ctx, id); err != nil {
		if errors.Is(err, models.ErrNotFound) {
			fail(c, http.StatusNotFound, "user not found")
			return
		}
		storeError(c, err, "user")
		return
	}
	a.audit(c, "user", id, "delete", u.Username)
	slog.Info("user_event", "event", "deleted", "username", u.Username, "actor", claimsFrom(c).Username)
	ok(c, nil)
}
