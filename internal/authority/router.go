package authority

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// NewRouter mounts /auth at the root and every resource under prefix.
func NewRouter(a *API, prefix string) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := r.Group("/auth")
	auth.POST("/login", a.Login)
	auth.POST("/logout", a.Bearer(), a.Logout)
	auth.GET("/me", a.Bearer(), a.Me)

	v := r.Group("/"+strings.Trim(prefix, "/"), a.Bearer())
	{
		v.POST("/projects", a.CreateProject)
		v.GET("/projects", a.ListProjects)
		v.GET("/projects/:id", a.GetProject)
		v.PATCH("/projects/:id", a.UpdateProject)
		v.DELETE("/projects/:id", a.DeleteProject)
		v.POST("/equipments/batch", a.CreateEquipments)
		v.GET("/equipments/project/:id", a.ListEquipments)

		v.POST("/stocks", a.CreateStock)
		v.GET("/stocks", a.ListStocks)
		v.GET("/stocks/:id", a.GetStock)
		v.PATCH("/stocks/:id", a.UpdateStock)
		v.DELETE("/stocks/:id", a.DeleteStock)
		v.POST("/stock-equipments/batch", a.CreateStockEquipments)
		v.GET("/stock-equipments/stock/:id", a.ListStockEquipments)
	}

	admin := v.Group("", RequireAdmin())
	{
		admin.GET("/users", a.ListUsers)
		admin.POST("/users", a.CreateUser)
		admin.GET("/users/:id", a.GetUser)
		admin.PATCH("/users/:id", a.UpdateUser)
		admin.DELETE("/users/:id", a.DeleteUser)
		admin.GET("/audit-logs", a.ListAuditLogs)
	}

	r.NoRoute(func(c *gin.Context) {
		fail(c, http.StatusNotFound, "route not found")
	})
	return r
}
