package authority

import (
	"log/slog"
	"net/http"
	"strings"

	"report-console/internal/models"

	"github.com/gin-gonic/gin"
)

func (a *API) CreateProject(c *gin.Context) {
	var in models.NewProject
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.ContactName) == "" {
		fail(c, http.StatusBadRequest, "p_name and contact_name are required")
		return
	}

	id, err := a.store.CreateProject(c.Request.Context(), in)
	if err != nil {
		storeError(c, err, "project")
		return
	}
	a.audit(c, "project", id, "create", in.Name)
	slog.Info("project_event", "event", "created", "p_id", id, "actor", claimsFrom(c).Username)
	ok(c, id)
}

func (a *API) ListProjects(c *gin.Context) {
	pageNo, limit := pageParams(c)
	items, total, err := a.store.ListProjects(c.Request.Context(), pageNo, limit)
	if err != nil {
		storeError(c, err, "projects")
		return
	}
	if items == nil {
		items = []models.Project{}
	}
	ok(c, models.ProjectList{Projects: items, Total: total})
}

func (a *API) GetProject(c *gin.Context) {
	p, err := a.store.GetProject(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err, "project")
		return
	}
	ok(c, p)
}

func (a *API) UpdateProject(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	fields, err := patchFields(body, projectColumns)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	id := c.Param("id")
	if err := a.store.UpdateProject(c.Request.Context(), id, fields); err != nil {
		storeError(c, err, "project")
		return
	}
	a.audit(c, "project", id, "update", keys(fields))
	ok(c, nil)
}

func (a *API) DeleteProject(c *gin.Context) {
	id := c.Param("id")
	if err := a.store.DeleteProject(c.Request.Context(), id); err != nil {
		storeError(c, err, "project")
		return
	}
	a.audit(c, "project", id, "delete", "")
	slog.Info("project_event", "event", "deleted", "p_id", id, "actor", claimsFrom(c).Username)
	ok(c, nil)
}

func (a *API) CreateEquipments(c *gin.Context) {
	var batch models.EquipmentBatch
	if err := c.ShouldBindJSON(&batch); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if batch.ProjectID == "" {
		fail(c, http.StatusBadRequest, "p_id is required")
		return
	}
	if msg := checkItems(batch.Equipments); msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}

	if err := a.store.CreateEquipments(c.Request.Context(), batch.ProjectID, batch.Equipments); err != nil {
		storeError(c, err, "project")
		return
	}
	a.audit(c, "project", batch.ProjectID, "add_equipment", itemCount(batch.Equipments))
	ok(c, nil)
}

func (a *API) ListEquipments(c *gin.Context) {
	items, err := a.store.ListEquipments(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err, "equipment")
		return
	}
	if items == nil {
		items = []models.Equipment{}
	}
	ok(c, items)
}
