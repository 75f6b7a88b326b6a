// Package authority is the reference implementation of the reporting
// backend the console talks to: a JSON API answering with the
// {code, message, body} envelope.
package authority

import (
	"context"

	"report-console/internal/database"
	"report-console/internal/models"
)

// Store is the persistence the backend needs. Update methods take column
// names and apply only the keys present.
type Store interface {
	UserByUsername(ctx context.Context, username string) (models.User, string, error)
	UserByID(ctx context.Context, id string) (models.User, error)
	ListUsers(ctx context.Context, page, limit int) ([]models.User, int64, error)
	CreateUser(ctx context.Context, username, email, passwordHash string, role models.UserRole) (string, error)
	UpdateUser(ctx context.Context, id string, fields map[string]any) error
	DeleteUser(ctx context.Context, id string) error

	CreateProject(ctx context.Context, in models.NewProject) (string, error)
	ListProjects(ctx context.Context, page, limit int) ([]models.Project, int64, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	UpdateProject(ctx context.Context, id string, fields map[string]any) error
	DeleteProject(ctx context.Context, id string) error
	CreateEquipments(ctx context.Context, projectID string, items []models.EquipmentItem) error
	ListEquipments(ctx context.Context, projectID string) ([]models.Equipment, error)

	CreateStock(ctx context.Context, in models.NewStock) (string, error)
	ListStocks(ctx context.Context, page, limit int) ([]models.Stock, int64, error)
	GetStock(ctx context.Context, id string) (models.Stock, error)
	UpdateStock(ctx context.Context, id string, fields map[string]any) error
	DeleteStock(ctx context.Context, id string) error
	CreateStockEquipments(ctx context.Context, stockID string, items []models.EquipmentItem) error
	ListStockEquipments(ctx context.Context, stockID string) ([]models.StockEquipment, error)

	Audit(ctx context.Context, e models.AuditEntry) error
	ListAuditLogs(ctx context.Context, page, limit int) ([]models.AuditEntry, int64, error)
}

var _ Store = (*database.Repository)(nil)
