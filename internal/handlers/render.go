package handlers

import (
	"net/http"
	"time"

	"report-console/internal/api"
	"report-console/internal/httpclient"
	"report-console/internal/middleware"
	"report-console/internal/models"
	"report-console/internal/session"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/csrf"
)

// Handler serves the console pages. Every request builds its own session
// store and controller input from these settings.
type Handler struct {
	API   *api.Client
	Loc   *time.Location
	Limit int
}

func New(client *api.Client, loc *time.Location, limit int) *Handler {
	return &Handler{API: client, Loc: loc, Limit: limit}
}

func (h *Handler) session(c *gin.Context) *session.Store {
	return session.Default(c, h.API)
}

// backend is the API client bound to the request's session token.
func (h *Handler) backend(c *gin.Context) *api.Client {
	return h.session(c).API()
}

const (
	flashSuccess = "success"
	flashWarning = "warning"
	flashError   = "error"
)

var flashKinds = []string{flashSuccess, flashWarning, flashError}

type Flash struct {
	Kind    string
	Message string
}

func addFlash(c *gin.Context, kind, msg string) {
	sess := sessions.Default(c)
	sess.AddFlash(msg, kind)
	_ = sess.Save()
}

func takeFlashes(c *gin.Context) []Flash {
	sess := sessions.Default(c)
	var out []Flash
	for _, kind := range flashKinds {
		for _, v := range sess.Flashes(kind) {
			if msg, ok := v.(string); ok {
				out = append(out, Flash{Kind: kind, Message: msg})
			}
		}
	}
	if len(out) > 0 {
		_ = sess.Save()
	}
	return out
}

// render wraps c.HTML and adds what every page needs: the signed-in user,
// pending flashes and the CSRF field.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}

	if uVal, ok := c.Get(middleware.CurrentUserKey); ok {
		if u, ok := uVal.(models.User); ok {
			data["CurrentUser"] = u
		}
	}
	data["Flashes"] = takeFlashes(c)
	data["CSRFField"] = csrf.TemplateField(c.Request)

	c.HTML(status, tmpl, data)
}

// fail handles a backend error on a page: a rejected token ends the session,
// anything else becomes an error flash on the redirect target.
func (h *Handler) fail(c *gin.Context, err error, redirect string) {
	if httpclient.IsUnauthorized(err) {
		h.expire(c)
		return
	}
	addFlash(c, flashError, httpclient.Message(err))
	c.Redirect(http.StatusFound, redirect)
}

func (h *Handler) expire(c *gin.Context) {
	h.session(c).Logout(c.Request.Context())
	addFlash(c, flashError, "Your session has expired, please sign in again.")
	c.Redirect(http.StatusFound, "/login")
}
