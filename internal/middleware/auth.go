package middleware

import (
	"net/http"

	"report-console/internal/api"
	"report-console/internal/models"
	"report-console/internal/session"

	"github.com/gin-gonic/gin"
)

// CurrentUserKey holds the signed-in profile in the gin context.
const CurrentUserKey = "CurrentUser"

// InjectUser exposes the stored profile to templates without asking the
// backend.
func InjectUser(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if u := session.Default(c, client).Profile(); u != nil {
			c.Set(CurrentUserKey, *u)
		}
		c.Next()
	}
}

// RequireAuth validates the session token against the backend once per
// page load. A rejected token has already cleared the session.
func RequireAuth(client *api.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := session.Default(c, client)
		if !store.CheckAuth(c.Request.Context()) {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		if u := store.Profile(); u != nil {
			c.Set(CurrentUserKey, *u)
		}
		c.Next()
	}
}

func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := map[models.UserRole]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		uVal, ok := c.Get(CurrentUserKey)
		user, isUser := uVal.(models.User)
		if !ok || !isUser {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		if _, ok := roleSet[user.Role]; !ok {
			c.String(http.StatusForbidden, "access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}
