package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"report-console/internal/httpclient"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowLogin(c *gin.Context) {
	if h.session(c).IsAuthenticated() {
		c.Redirect(http.StatusFound, "/")
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{"Title": "Sign in", "error": "", "username": ""})
}

type loginForm struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		render(c, http.StatusBadRequest, "login.html", gin.H{"Title": "Sign in", "error": "Invalid form data", "username": ""})
		return
	}
	form.Username = strings.TrimSpace(form.Username)
	if form.Username == "" || form.Password == "" {
		render(c, http.StatusBadRequest, "login.html", gin.H{"Title": "Sign in", "error": "Enter username and password", "username": form.Username})
		return
	}

	res, err := h.API.Login(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		msg := httpclient.Message(err)
		if httpclient.IsUnauthorized(err) {
			msg = "Wrong username or password"
		}
		var ne *httpclient.NetworkError
		status := http.StatusBadRequest
		if errors.As(err, &ne) {
			status = http.StatusBadGateway
		}
		slog.Info("auth_event", "event", "login_failed", "username", form.Username, "err", err)
		render(c, status, "login.html", gin.H{"Title": "Sign in", "error": msg, "username": form.Username})
		return
	}

	if err := h.session(c).Login(res.Token, res.User); err != nil {
		slog.Error("auth_event", "event", "session_save_failed", "err", err)
		render(c, http.StatusInternalServerError, "login.html", gin.H{"Title": "Sign in", "error": "Could not start a session", "username": form.Username})
		return
	}
	slog.Info("auth_event", "event", "login", "username", res.User.Username)
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	h.session(c).Logout(c.Request.Context())
	c.Redirect(http.StatusFound, "/login")
}
