package handlers

import (
	"errors"
	"net/http"
	"net/url"

	"report-console/internal/console"
	"report-console/internal/httpclient"
	"report-console/internal/models"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ListUsers(c *gin.Context) {
	page, err := console.LoadUsers(c.Request.Context(), h.backend(c), h.Limit, h.Loc)
	if err != nil && httpclient.IsUnauthorized(err) {
		h.expire(c)
		return
	}

	form := console.SaveUserInput{Role: models.RoleUser}
	if id := c.Query("edit"); id != "" {
		for _, u := range page.Users {
			if u.ID == id {
				form = console.SaveUserInput{ID: u.ID, Username: u.Username, Email: u.Email, Role: u.Role}
				break
			}
		}
	}

	data := gin.H{"Title": "Users", "Page": page, "Form": form, "error": ""}
	if err != nil {
		data["error"] = "Loading users failed: " + httpclient.Message(err)
	}
	render(c, http.StatusOK, "users.html", data)
}

func (h *Handler) SaveUser(c *gin.Context) {
	in := console.SaveUserInput{
		ID:       c.PostForm("id"),
		Username: c.PostForm("username"),
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
		Role:     models.UserRole(c.PostForm("role")),
	}

	_, err := console.SaveUser(c.Request.Context(), in, h.backend(c))
	if err != nil {
		if isInput(err) {
			addFlash(c, flashError, err.Error())
			c.Redirect(http.StatusFound, editURL(in.ID))
			return
		}
		h.fail(c, err, editURL(in.ID))
		return
	}

	if in.ID != "" {
		addFlash(c, flashSuccess, "User updated.")
	} else {
		addFlash(c, flashSuccess, "User added.")
	}
	c.Redirect(http.StatusFound, "/users")
}

func editURL(id string) string {
	if id == "" {
		return "/users"
	}
	return "/users?edit=" + url.QueryEscape(id)
}

func (h *Handler) ConfirmDeleteUser(c *gin.Context) {
	ref, err := console.ConfirmDelete(console.UserRef{
		ID:       c.Param("id"),
		Username: c.Query("username"),
	})
	if err != nil {
		addFlash(c, flashError, err.Error())
		c.Redirect(http.StatusFound, "/users")
		return
	}
	render(c, http.StatusOK, "user_delete.html", gin.H{"Title": "Delete user", "Target": ref})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	err := console.DeleteUser(c.Request.Context(), console.UserRef{
		ID:       c.Param("id"),
		Username: c.PostForm("username"),
	}, h.backend(c))
	if err != nil {
		if errors.Is(err, console.ErrProtectedUser) || errors.Is(err, console.ErrMissingUserID) {
			addFlash(c, flashError, err.Error())
			c.Redirect(http.StatusFound, "/users")
			return
		}
		h.fail(c, err, "/users")
		return
	}
	addFlash(c, flashSuccess, "User deleted.")
	c.Redirect(http.StatusFound, "/users")
}
