package server

import (
	"net/http"
	"time"

	"report-console/internal/api"
	"report-console/internal/config"
	"report-console/internal/handlers"
	"report-console/internal/httpclient"
	"report-console/internal/middleware"
	"report-console/internal/models"
	"report-console/internal/web"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

const sessionName = "report_session"

// NewClient builds the backend client shared by every request.
func NewClient(cfg *config.Console) *api.Client {
	return api.New(httpclient.New(httpclient.Config{
		Origin:  cfg.APIOrigin,
		Prefix:  cfg.APIPrefix,
		Timeout: cfg.APITimeout,
	}))
}

func NewRouter(cfg *config.Console, client *api.Client) (*gin.Engine, error) {
	r := gin.Default()

	tmpl, err := web.Templates(cfg.Location)
	if err != nil {
		return nil, err
	}
	r.SetHTMLTemplate(tmpl)

	store := cookie.NewStore([]byte(cfg.SessionSecret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   int((12 * time.Hour).Seconds()),
		HttpOnly: true,
		Secure:   cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(sessionName, store))

	r.Use(middleware.InjectUser(client))

	h := handlers.New(client, cfg.Location, cfg.PageLimit)

	// AUTH
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	auth := r.Group("/")
	auth.Use(middleware.RequireAuth(client))

	// DASHBOARD
	auth.GET("/", h.Dashboard)

	// PROJECTS
	auth.GET("/projects/new", h.ShowNewProject)
	auth.POST("/projects/new", h.CreateProject)
	auth.GET("/projects/step2", h.Step2Redirect)
	auth.GET("/projects/:id", h.ShowProject)
	auth.GET("/projects/:id/step2", h.ShowProjectStep2)
	auth.POST("/projects/:id/step2", h.SubmitProjectStep2)
	auth.POST("/projects/:id/delete", h.DeleteProject)

	// STOCKS
	auth.GET("/stocks/new", h.ShowNewStock)
	auth.POST("/stocks/new", h.CreateStock)
	auth.GET("/stocks/:id", h.ShowStock)
	auth.POST("/stocks/:id/delete", h.DeleteStock)

	// USERS (admin only)
	admin := auth.Group("/users")
	admin.Use(middleware.RequireRole(models.RoleAdmin))
	admin.GET("", h.ListUsers)
	admin.POST("", h.SaveUser)
	admin.GET("/:id/delete", h.ConfirmDeleteUser)
	admin.POST("/:id/delete", h.DeleteUser)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r, nil
}

// Protect wraps the engine with CSRF checks on every unsafe method.
func Protect(cfg *config.Console, next http.Handler) http.Handler {
	protect := csrf.Protect(
		cfg.CSRFKey,
		csrf.Secure(cfg.SecureCookies),
		csrf.Path("/"),
		csrf.FieldName("csrf_token"),
		csrf.SameSite(csrf.SameSiteLaxMode),
	)(next)

	if cfg.SecureCookies {
		return protect
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		protect.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
	})
}
