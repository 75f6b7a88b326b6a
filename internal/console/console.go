// Package console holds the page controllers of the reporting console. Each
// controller is a plain function over the narrow slice of the backend it
// needs; handlers build a fresh input per request.
package console

import (
	"context"
	"errors"

	"report-console/internal/api"
	"report-console/internal/models"
)

var (
	ErrNameRequired     = errors.New("name is required")
	ErrContactRequired  = errors.New("contact person is required")
	ErrMissingProjectID = errors.New("no project id given, open the form from the dashboard")
	ErrMissingStockID   = errors.New("no stock id given")
	ErrUnknownKind      = errors.New("unknown record kind")
)

// ProjectCreator creates first-stage projects and their equipment.
type ProjectCreator interface {
	CreateProject(ctx context.Context, in api.ProjectInput) (string, error)
	CreateEquipmentBatch(ctx context.Context, projectID string, items []api.EquipmentInput) error
}

type ProjectReader interface {
	GetProject(ctx context.Context, id string) (models.Project, error)
}

type ProjectUpdater interface {
	UpdateProject(ctx context.Context, id string, u api.ProjectUpdate) error
}

type StockCreator interface {
	CreateStock(ctx context.Context, in api.StockInput) (string, error)
	CreateStockEquipmentBatch(ctx context.Context, stockID string, items []api.EquipmentInput) error
}

// DashboardSource lists both record kinds and their equipment.
type DashboardSource interface {
	ListProjects(ctx context.Context, page, limit int) (models.ProjectList, error)
	ListStocks(ctx context.Context, page, limit int) (models.StockList, error)
	ListEquipmentsByProject(ctx context.Context, projectID string) ([]models.Equipment, error)
	ListStockEquipments(ctx context.Context, stockID string) ([]models.StockEquipment, error)
}

type DetailSource interface {
	GetProject(ctx context.Context, id string) (models.Project, error)
	GetStock(ctx context.Context, id string) (models.Stock, error)
	ListEquipmentsByProject(ctx context.Context, projectID string) ([]models.Equipment, error)
	ListStockEquipments(ctx context.Context, stockID string) ([]models.StockEquipment, error)
}

type RecordDeleter interface {
	DeleteProject(ctx context.Context, id string) error
	DeleteStock(ctx context.Context, id string) error
}

type UserDirectory interface {
	ListUsers(ctx context.Context, page, limit int) (models.UserList, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	CreateUser(ctx context.Context, in api.UserInput) (string, error)
	UpdateUser(ctx context.Context, id string, u api.UserUpdate) error
	DeleteUser(ctx context.Context, id string) error
}

var (
	_ ProjectCreator  = (*api.Client)(nil)
	_ ProjectReader   = (*api.Client)(nil)
	_ ProjectUpdater  = (*api.Client)(nil)
	_ StockCreator    = (*api.Client)(nil)
	_ DashboardSource = (*api.Client)(nil)
	_ DetailSource    = (*api.Client)(nil)
	_ RecordDeleter   = (*api.Client)(nil)
	_ UserDirectory   = (*api.Client)(nil)
)

// SubmitResult reports a created record. EquipmentWarning is set when the
// record exists but its equipment list could not be attached.
type SubmitResult struct {
	ID               string
	EquipmentWarning error
}
