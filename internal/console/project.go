package console

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"report-console/internal/api"
	"report-console/internal/models"
)

// ProjectStep1Input carries the first-stage form.
type ProjectStep1Input struct {
	Project   api.ProjectInput
	Equipment []api.EquipmentInput
}

type ProjectStep1Deps struct {
	Projects ProjectCreator
}

// SubmitProjectStep1 creates the project and then attaches its equipment.
// An equipment failure after the project exists is reported as a warning on
// the result; the project is kept and the batch is not retried.
func SubmitProjectStep1(ctx context.Context, input ProjectStep1Input, deps ProjectStep1Deps) (SubmitResult, error) {
	in := input.Project
	in.Name = strings.TrimSpace(in.Name)
	in.ContactName = strings.TrimSpace(in.ContactName)
	if in.Name == "" {
		return SubmitResult{}, ErrNameRequired
	}
	if in.ContactName == "" {
		return SubmitResult{}, ErrContactRequired
	}

	id, err := deps.Projects.CreateProject(ctx, in)
	if err != nil {
		return SubmitResult{}, fmt.Errorf("create project: %w", err)
	}
	res := SubmitResult{ID: id}
	slog.Info("project_event", "event", "created", "project_id", id, "equipment", len(input.Equipment))

	if len(input.Equipment) == 0 {
		return res, nil
	}
	if err := deps.Projects.CreateEquipmentBatch(ctx, id, input.Equipment); err != nil {
		slog.Warn("project_event", "event", "equipment_failed", "project_id", id, "err", err)
		res.EquipmentWarning = err
	}
	return res, nil
}

// ProjectStep2Form is the second-stage form pre-filled from the stored
// project. Date fields are YYYY-MM-DD in the display zone.
type ProjectStep2Form struct {
	ProjectID   string
	ProjectName string
	ContactName string
	Delivery    api.DeliveryInput
}

type ProjectStep2Deps struct {
	Projects ProjectReader
	Loc      *time.Location
}

// LoadProjectStep2 fetches the project the second stage belongs to.
func LoadProjectStep2(ctx context.Context, id string, deps ProjectStep2Deps) (ProjectStep2Form, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return ProjectStep2Form{}, ErrMissingProjectID
	}

	p, err := deps.Projects.GetProject(ctx, id)
	if err != nil {
		return ProjectStep2Form{}, fmt.Errorf("load project: %w", err)
	}

	return ProjectStep2Form{
		ProjectID:   id,
		ProjectName: p.Name,
		ContactName: p.ContactName,
		Delivery:    deliveryForm(p.Delivery, deps.Loc),
	}, nil
}

func deliveryForm(d models.Delivery, loc *time.Location) api.DeliveryInput {
	return api.DeliveryInput{
		ExpectedDeliveryPeriod: d.ExpectedDeliveryPeriod,
		ExpectedDeliveryDate:   models.CalendarDate(d.ExpectedDeliveryDate, loc),
		ExpectedContractPeriod: d.ExpectedContractPeriod,
		ContractStartDate:      models.CalendarDate(d.ContractStartDate, loc),
		ContractEndDate:        models.CalendarDate(d.ContractEndDate, loc),
		DeliveryAddress:        d.DeliveryAddress,
		SpecialRequirements:    d.SpecialRequirements,
	}
}

// SubmitProjectStep2 sends only the filled-in second-stage fields.
func SubmitProjectStep2(ctx context.Context, id string, delivery api.DeliveryInput, projects ProjectUpdater) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrMissingProjectID
	}
	if err := projects.UpdateProject(ctx, id, api.ProjectUpdate{Delivery: delivery}); err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	slog.Info("project_event", "event", "step2_submitted", "project_id", id)
	return nil
}
