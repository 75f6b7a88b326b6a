package authority

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"report-console/internal/models"

	"github.com/gin-gonic/gin"
)

// ok answers with code 200 and an optional body.
func ok(c *gin.Context, body any) {
	env := gin.H{"code": http.StatusOK, "message": "success"}
	if body != nil {
		env["body"] = body
	}
	c.JSON(http.StatusOK, env)
}

// fail answers with the same code in the transport status and the
// envelope.
func fail(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, gin.H{"code": code, "message": msg})
}

// storeError maps a storage failure onto the envelope.
func storeError(c *gin.Context, err error, what string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		fail(c, http.StatusNotFound, what+" not found")
	case errors.Is(err, models.ErrDuplicate):
		fail(c, http.StatusConflict, what+" already exists")
	default:
		slog.Error("internal_error", "what", what, "error", err.Error())
		fail(c, http.StatusInternalServerError, "internal server error")
	}
}

func pageParams(c *gin.Context) (int, int) {
	pageNo, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || pageNo < 1 {
		pageNo = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}
	if limit > 500 {
		limit = 500
	}
	return pageNo, limit
}
