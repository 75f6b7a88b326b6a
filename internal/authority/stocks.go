package authority

import (
	"log/slog"
	"net/http"
	"strings"

	"report-console/internal/models"

	"github.com/gin-gonic/gin"
)

func (a *API) CreateStock(c *gin.Context) {
	var in models.NewStock
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.ContactName) == "" {
		fail(c, http.StatusBadRequest, "stock_name and contact_name are required")
		return
	}

	id, err := a.store.CreateStock(c.Request.Context(), in)
	if err != nil {
		storeError(c, err, "stock")
		return
	}
	a.audit(c, "stock", id, "create", in.Name)
	slog.Info("stock_event", "event", "created", "s_id", id, "actor", claimsFrom(c).Username)
	ok(c, id)
}

func (a *API) ListStocks(c *gin.Context) {
	pageNo, limit := pageParams(c)
	items, total, err := a.store.ListStocks(c.Request.Context(), pageNo, limit)
	if err != nil {
		storeError(c, err, "stocks")
		return
	}
	if items == nil {
		items = []models.Stock{}
	}
	ok(c, models.StockList{Stocks: items, Total: total})
}

func (a *API) GetStock(c *gin.Context) {
	s, err := a.store.GetStock(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err, "stock")
		return
	}
	ok(c, s)
}

func (a *API) UpdateStock(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	fields, err := patchFields(body, stockColumns)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	id := c.Param("id")
	if err := a.store.UpdateStock(c.Request.Context(), id, fields); err != nil {
		storeError(c, err, "stock")
		return
	}
	a.audit(c, "stock", id, "update", keys(fields))
	ok(c, nil)
}

func (a *API) DeleteStock(c *gin.Context) {
	id := c.Param("id")
	if err := a.store.DeleteStock(c.Request.Context(), id); err != nil {
		storeError(c, err, "stock")
		return
	}
	a.audit(c, "stock", id, "delete", "")
	slog.Info("stock_event", "event", "deleted", "s_id", id, "actor", claimsFrom(c).Username)
	ok(c, nil)
}

func (a *API) CreateStockEquipments(c *gin.Context) {
	var batch models.StockEquipmentBatch
	if err := c.ShouldBindJSON(&batch); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if batch.StockID == "" {
		fail(c, http.StatusBadRequest, "s_id is required")
		return
	}
	if msg := checkItems(batch.Equipments); msg != "" {
		fail(c, http.StatusBadRequest, msg)
		return
	}

	if err := a.store.CreateStockEquipments(c.Request.Context(), batch.StockID, batch.Equipments); err != nil {
		storeError(c, err, "stock")
		return
	}
	a.audit(c, "stock", batch.StockID, "add_equipment", itemCount(batch.Equipments))
	ok(c, nil)
}

func (a *API) ListStockEquipments(c *gin.Context) {
	items, err := a.store.ListStockEquipments(c.Request.Context(), c.Param("id"))
	if err != nil {
		storeError(c, err, "equipment")
		return
	}
	if items == nil {
		items = []models.StockEquipment{}
	}
	ok(c, items)
}
