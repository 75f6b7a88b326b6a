package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"report-console/internal/api"
	"report-console/internal/console"
	"report-console/internal/httpclient"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowNewStock(c *gin.Context) {
	render(c, http.StatusOK, "stock_new.html", gin.H{
		"Title":     "New stock report",
		"Form":      api.StockInput{},
		"Equipment": console.NewEquipmentRows(nil, nil, nil),
	})
}

func (h *Handler) CreateStock(c *gin.Context) {
	in := api.StockInput{
		Name:         c.PostForm("stockName"),
		ContactName:  c.PostForm("contactName"),
		ContactPhone: strings.TrimSpace(c.PostForm("contactPhone")),
		ContactEmail: strings.TrimSpace(c.PostForm("contactEmail")),
		Owner:        strings.TrimSpace(c.PostForm("owner")),
		Remark:       strings.TrimSpace(c.PostForm("remarks")),
		Delivery:     deliveryForm(c),
	}
	rows := equipmentForm(c)
	renderForm := func(status int, msg string) {
		render(c, status, "stock_new.html", gin.H{
			"Title": "New stock report", "Form": in, "Equipment": rows, "error": msg,
		})
	}

	if editRows(c, &rows) {
		renderForm(http.StatusOK, "")
		return
	}

	items, err := collectEquipment(c)
	if err != nil {
		renderForm(http.StatusBadRequest, err.Error())
		return
	}

	res, err := console.SubmitStock(c.Request.Context(), console.StockInput{
		Stock:     in,
		Equipment: items,
	}, h.backend(c))
	if err != nil {
		if httpclient.IsUnauthorized(err) {
			h.expire(c)
			return
		}
		status := http.StatusBadGateway
		if isInput(err) {
			status = http.StatusBadRequest
		}
		renderForm(status, "Submission failed: "+httpclient.Message(err))
		return
	}

	if res.EquipmentWarning != nil {
		addFlash(c, flashWarning, fmt.Sprintf(
			"Stock report created (ID %s), but the equipment list could not be saved. Please add it again later.", res.ID))
	} else {
		addFlash(c, flashSuccess, fmt.Sprintf(
			"Stock report submitted. Stock ID %s. Please arrange shipment soon.", res.ID))
	}
	c.Redirect(http.StatusFound, "/")
}
