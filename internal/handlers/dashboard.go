package handlers

import (
	"errors"
	"net/http"

	"report-console/internal/console"
	"report-console/internal/httpclient"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Dashboard(c *gin.Context) {
	filter := console.Filter{
		Type:   c.Query("type"),
		Status: c.Query("status"),
	}

	d, err := console.LoadDashboard(c.Request.Context(), filter, console.DashboardDeps{
		Source: h.backend(c),
		Limit:  h.Limit,
		Loc:    h.Loc,
	})
	if err != nil && httpclient.IsUnauthorized(err) {
		h.expire(c)
		return
	}

	data := gin.H{"Title": "Dashboard", "Dashboard": d, "error": ""}
	if err != nil {
		data["error"] = "Loading data failed: " + httpclient.Message(err)
	}
	render(c, http.StatusOK, "dashboard.html", data)
}

func (h *Handler) ShowProject(c *gin.Context) {
	h.showDetail(c, console.KindProject)
}

func (h *Handler) ShowStock(c *gin.Context) {
	h.showDetail(c, console.KindStock)
}

func (h *Handler) showDetail(c *gin.Context, kind console.Kind) {
	d, err := console.LoadDetail(c.Request.Context(), kind, c.Param("id"), h.backend(c))
	if err != nil {
		h.fail(c, err, "/")
		return
	}
	render(c, http.StatusOK, "detail.html", gin.H{"Title": d.Name, "Detail": d})
}

func (h *Handler) DeleteProject(c *gin.Context) {
	if err := console.DeleteProject(c.Request.Context(), c.Param("id"), h.backend(c)); err != nil {
		h.fail(c, err, "/projects/"+c.Param("id"))
		return
	}
	addFlash(c, flashSuccess, "Project deleted.")
	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) DeleteStock(c *gin.Context) {
	if err := console.DeleteStock(c.Request.Context(), c.Param("id"), h.backend(c)); err != nil {
		h.fail(c, err, "/stocks/"+c.Param("id"))
		return
	}
	addFlash(c, flashSuccess, "Stock report deleted.")
	c.Redirect(http.StatusFound, "/")
}

// isInput reports errors caused by the submitted form rather than the
// backend.
func isInput(err error) bool {
	for _, target := range []error{
		console.ErrNameRequired, console.ErrContactRequired,
		console.ErrUsernameRequired, console.ErrPasswordRequired,
		console.ErrPasswordTooShort, console.ErrInvalidRole,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
