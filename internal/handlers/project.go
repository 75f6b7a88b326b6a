package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"report-console/internal/api"
	"report-console/internal/console"
	"report-console/internal/httpclient"

	"github.com/gin-gonic/gin"
)

func equipmentForm(c *gin.Context) console.EquipmentRows {
	return console.NewEquipmentRows(
		c.PostFormArray("partNumber[]"),
		c.PostFormArray("quantity[]"),
		c.PostFormArray("description[]"),
	)
}

// editRows applies an add-row or remove-row button. It reports whether the
// post was a row edit rather than a submission.
func editRows(c *gin.Context, rows *console.EquipmentRows) bool {
	if c.PostForm("addRow") != "" {
		rows.Add()
		return true
	}
	if v := c.PostForm("removeRow"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			rows.Remove(i)
		}
		return true
	}
	return false
}

func collectEquipment(c *gin.Context) ([]api.EquipmentInput, error) {
	return console.CollectEquipment(
		c.PostFormArray("partNumber[]"),
		c.PostFormArray("quantity[]"),
		c.PostFormArray("description[]"),
	)
}

func deliveryForm(c *gin.Context) api.DeliveryInput {
	return api.DeliveryInput{
		ExpectedDeliveryPeriod: strings.TrimSpace(c.PostForm("expectedDeliveryPeriod")),
		ExpectedDeliveryDate:   c.PostForm("expectedDeliveryDate"),
		ExpectedContractPeriod: strings.TrimSpace(c.PostForm("expectedContractPeriod")),
		ContractStartDate:      c.PostForm("contractStartDate"),
		ContractEndDate:        c.PostForm("contractEndDate"),
		DeliveryAddress:        strings.TrimSpace(c.PostForm("deliveryAddress")),
		SpecialRequirements:    strings.TrimSpace(c.PostForm("specialRequirements")),
	}
}

func (h *Handler) ShowNewProject(c *gin.Context) {
	render(c, http.StatusOK, "project_step1.html", gin.H{
		"Title":     "New project",
		"Form":      api.ProjectInput{},
		"Equipment": console.NewEquipmentRows(nil, nil, nil),
	})
}

func (h *Handler) CreateProject(c *gin.Context) {
	in := api.ProjectInput{
		Name:         c.PostForm("projectName"),
		ContactName:  c.PostForm("contactPerson"),
		ContactPhone: strings.TrimSpace(c.PostForm("contactPhone")),
		ContactEmail: strings.TrimSpace(c.PostForm("contactEmail")),
		Owner:        strings.TrimSpace(c.PostForm("owner")),
		Remark:       strings.TrimSpace(c.PostForm("remarks")),
	}
	rows := equipmentForm(c)
	renderForm := func(status int, msg string) {
		render(c, status, "project_step1.html", gin.H{
			"Title": "New project", "Form": in, "Equipment": rows, "error": msg,
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

	res, err := console.SubmitProjectStep1(c.Request.Context(), console.ProjectStep1Input{
		Project:   in,
		Equipment: items,
	}, console.ProjectStep1Deps{Projects: h.backend(c)})
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
			"Project created (ID %s), but the equipment list could not be saved. Please add it again later.", res.ID))
	} else {
		addFlash(c, flashSuccess, fmt.Sprintf(
			"Stage 1 submitted. Project ID %s. Remember to fill in stage 2 once the project is won.", res.ID))
	}
	c.Redirect(http.StatusFound, "/")
}

// Step2Redirect serves the legacy /projects/step2?id= form of the link.
func (h *Handler) Step2Redirect(c *gin.Context) {
	id := strings.TrimSpace(c.Query("id"))
	if id == "" {
		addFlash(c, flashError, console.ErrMissingProjectID.Error())
		c.Redirect(http.StatusFound, "/")
		return
	}
	c.Redirect(http.StatusFound, "/projects/"+url.PathEscape(id)+"/step2")
}

func (h *Handler) ShowProjectStep2(c *gin.Context) {
	form, err := console.LoadProjectStep2(c.Request.Context(), c.Param("id"), console.ProjectStep2Deps{
		Projects: h.backend(c),
		Loc:      h.Loc,
	})
	if err != nil {
		h.fail(c, fmt.Errorf("loading project failed: %w", err), "/")
		return
	}
	render(c, http.StatusOK, "project_step2.html", gin.H{"Title": "Project stage 2", "Form": form})
}

func (h *Handler) SubmitProjectStep2(c *gin.Context) {
	id := c.Param("id")
	delivery := deliveryForm(c)

	err := console.SubmitProjectStep2(c.Request.Context(), id, delivery, h.backend(c))
	if err != nil {
		if httpclient.IsUnauthorized(err) {
			h.expire(c)
			return
		}
		render(c, http.StatusBadGateway, "project_step2.html", gin.H{
			"Title": "Project stage 2",
			"Form": console.ProjectStep2Form{
				ProjectID:   id,
				ProjectName: c.PostForm("projectName"),
				Delivery:    delivery,
			},
			"error": "Submission failed: " + httpclient.Message(err),
		})
		return
	}

	addFlash(c, flashSuccess, "Stage 2 submitted.")
	c.Redirect(http.StatusFound, "/")
}
