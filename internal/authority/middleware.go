package authority

import (
	"log/slog"
	"net/http"
	"strings"

	"report-console/internal/models"

	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// Bearer admits requests carrying a valid, unrevoked token.
func (a *API) Bearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		raw, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(raw) == "" {
			fail(c, http.StatusUnauthorized, "missing bearer token")
			return
		}

		claims, err := a.tokens.Parse(strings.TrimSpace(raw))
		if err != nil {
			fail(c, http.StatusUnauthorized, "invalid or expired token")
			return
		}

		revoked, err := a.revoker.Revoked(c.Request.Context(), claims.ID)
		if err != nil {
			slog.Error("revocation check failed", "error", err)
			fail(c, http.StatusServiceUnavailable, "token check unavailable")
			return
		}
		if revoked {
			fail(c, http.StatusUnauthorized, "token has been revoked")
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claimsFrom(c).Role != string(models.RoleAdmin) {
			fail(c, http.StatusForbidden, "administrator role required")
			return
		}
		c.Next()
	}
}

func claimsFrom(c *gin.Context) *Claims {
	if v, ok := c.Get(claimsKey); ok {
		if cl, ok := v.(*Claims); ok {
			return cl
		}
	}
	return &Claims{}
}
