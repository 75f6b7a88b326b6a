package api

import (
	"context"
	"net/http"
	"net/url"

	"report-console/internal/models"
)

// ProjectInput holds the first-stage fields of a project.
type ProjectInput struct {
	Name         string
	ContactName  string
	ContactPhone string
	ContactEmail string
	Owner        string
	Remark       string
}

func (in ProjectInput) wire() models.NewProject {
	return models.NewProject{
		Name:         in.Name,
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
		ContactEmail: in.ContactEmail,
		Owner:        in.Owner,
		Remark:       in.Remark,
	}
}

// ProjectUpdate is a partial update: empty fields are left untouched.
type ProjectUpdate struct {
	ProjectInput
	Delivery DeliveryInput
}

func (u ProjectUpdate) Payload() map[string]any {
	fields := []field{
		{"p_name", u.Name},
		{"contact_name", u.ContactName},
		{"contact_phone", u.ContactPhone},
		{"contact_email", u.ContactEmail},
		{"owner", u.Owner},
		{"remark", u.Remark},
	}
	return partial(append(fields, u.Delivery.fields()...)...)
}

// EquipmentInput is one equipment row in Go naming.
type EquipmentInput struct {
	PartNumber  string
	Quantity    int
	Description string
}

func equipmentItems(items []EquipmentInput) []models.EquipmentItem {
	out := make([]models.EquipmentItem, 0, len(items))
	for _, it := range items {
		out = append(out, models.EquipmentItem{
			PartNumber:  it.PartNumber,
			Quantity:    it.Quantity,
			Description: it.Description,
		})
	}
	return out
}

func (c *Client) CreateProject(ctx context.Context, in ProjectInput) (string, error) {
	return c.create(ctx, "/projects", in.wire())
}

func (c *Client) ListProjects(ctx context.Context, page, limit int) (models.ProjectList, error) {
	var out models.ProjectList
	err := c.get(ctx, "/projects", pageQuery(page, limit), &out)
	return out, err
}

func (c *Client) GetProject(ctx context.Context, id string) (models.Project, error) {
	var out models.Project
	err := c.get(ctx, "/projects/"+url.PathEscape(id), nil, &out)
	return out, err
}

func (c *Client) UpdateProject(ctx context.Context, id string, u ProjectUpdate) error {
	return c.send(ctx, http.MethodPatch, "/projects/"+url.PathEscape(id), u.Payload(), nil)
}

func (c *Client) DeleteProject(ctx context.Context, id string) error {
	return c.send(ctx, http.MethodDelete, "/projects/"+url.PathEscape(id), nil, nil)
}

// CreateEquipmentBatch attaches items to an existing project.
func (c *Client) CreateEquipmentBatch(ctx context.Context, projectID string, items []EquipmentInput) error {
	return c.send(ctx, http.MethodPost, "/equipments/batch", models.EquipmentBatch{
		ProjectID:  projectID,
		Equipments: equipmentItems(items),
	}, nil)
}

func (c *Client) ListEquipmentsByProject(ctx context.Context, projectID string) ([]models.Equipment, error) {
	var out []models.Equipment
	err := c.get(ctx, "/equipments/project/"+url.PathEscape(projectID), nil, &out)
	return out, err
}
