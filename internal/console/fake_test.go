package console

import (
	"context"
	"errors"
	"sync"

	"report-console/internal/api"
	"report-console/internal/models"
)

// fakeBackend records every call and serves canned data. Safe for the
// dashboard's concurrent fan-out.
type fakeBackend struct {
	mu    sync.Mutex
	calls []string

	createID       string
	createErr      error
	batchErr       error
	batches        [][]api.EquipmentInput
	createdProject api.ProjectInput
	createdStock   api.StockInput

	projects     []models.Project
	stocks       []models.Stock
	projectsErr  error
	stocksErr    error
	equipment    map[string]int
	equipmentErr map[string]error

	updates map[string]api.ProjectUpdate

	users       []models.User
	usersErr    error
	userUpdates map[string]api.UserUpdate
	userCreates []api.UserInput
}

var errNotFound = errors.New("not found")

func (f *fakeBackend) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, call)
}

func (f *fakeBackend) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeBackend) CreateProject(_ context.Context, in api.ProjectInput) (string, error) {
	f.record("CreateProject")
	f.createdProject = in
	return f.createID, f.createErr
}

func (f *fakeBackend) CreateEquipmentBatch(_ context.Context, _ string, items []api.EquipmentInput) error {
	f.record("CreateEquipmentBatch")
	f.batches = append(f.batches, items)
	return f.batchErr
}

func (f *fakeBackend) CreateStock(_ context.Context, in api.StockInput) (string, error) {
	f.record("CreateStock")
	f.createdStock = in
	return f.createID, f.createErr
}

func (f *fakeBackend) CreateStockEquipmentBatch(_ context.Context, _ string, items []api.EquipmentInput) error {
	f.record("CreateStockEquipmentBatch")
	f.batches = append(f.batches, items)
	return f.batchErr
}

func (f *fakeBackend) GetProject(_ context.Context, id string) (models.Project, error) {
	f.record("GetProject")
	for _, p := range f.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Project{}, errNotFound
}

func (f *fakeBackend) GetStock(_ context.Context, id string) (models.Stock, error) {
	f.record("GetStock")
	for _, s := range f.stocks {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Stock{}, errNotFound
}

func (f *fakeBackend) UpdateProject(_ context.Context, id string, u api.ProjectUpdate) error {
	f.record("UpdateProject")
	if f.updates == nil {
		f.updates = map[string]api.ProjectUpdate{}
	}
	f.updates[id] = u
	return nil
}

func (f *fakeBackend) ListProjects(_ context.Context, _, _ int) (models.ProjectList, error) {
	f.record("ListProjects")
	if f.projectsErr != nil {
		return models.ProjectList{}, f.projectsErr
	}
	return models.ProjectList{Projects: f.projects, Total: int64(len(f.projects))}, nil
}

func (f *fakeBackend) ListStocks(_ context.Context, _, _ int) (models.StockList, error) {
	f.record("ListStocks")
	if f.stocksErr != nil {
		return models.StockList{}, f.stocksErr
	}
	return models.StockList{Stocks: f.stocks, Total: int64(len(f.stocks))}, nil
}

func (f *fakeBackend) ListEquipmentsByProject(_ context.Context, id string) ([]models.Equipment, error) {
	f.record("ListEquipmentsByProject")
	if err := f.equipmentErr[id]; err != nil {
		return nil, err
	}
	return make([]models.Equipment, f.equipment[id]), nil
}

func (f *fakeBackend) ListStockEquipments(_ context.Context, id string) ([]models.StockEquipment, error) {
	f.record("ListStockEquipments")
	if err := f.equipmentErr[id]; err != nil {
		return nil, err
	}
	return make([]models.StockEquipment, f.equipment[id]), nil
}

func (f *fakeBackend) DeleteProject(_ context.Context, _ string) error {
	f.record("DeleteProject")
	return nil
}

func (f *fakeBackend) DeleteStock(_ context.Context, _ string) error {
	f.record("DeleteStock")
	return nil
}

func (f *fakeBackend) ListUsers(_ context.Context, _, _ int) (models.UserList, error) {
	f.record("ListUsers")
	if f.usersErr != nil {
		return models.UserList{}, f.usersErr
	}
	return models.UserList{Users: f.users, Total: int64(len(f.users))}, nil
}

func (f *fakeBackend) GetUser(_ context.Context, id string) (models.User, error) {
	f.record("GetUser")
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, errNotFound
}

func (f *fakeBackend) CreateUser(_ context.Context, in api.UserInput) (string, error) {
	f.record("CreateUser")
	f.userCreates = append(f.userCreates, in)
	return "u-new", nil
}

func (f *fakeBackend) UpdateUser(_ context.Context, id string, u api.UserUpdate) error {
	f.record("UpdateUser")
	if f.userUpdates == nil {
		f.userUpdates = map[string]api.UserUpdate{}
	}
	f.userUpdates[id] = u
	return nil
}

func (f *fakeBackend) DeleteUser(_ context.Context, _ string) error {
	f.record("DeleteUser")
	return nil
}
