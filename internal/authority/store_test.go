package authority

import (
	"context"
	"fmt"
	"sync"

	"report-console/internal/models"
)

// memStore is an in-memory Store for handler tests.
type memStore struct {
	mu       sync.Mutex
	seq      int
	users    map[string]models.User
	hashes   map[string]string
	projects map[string]models.Project
	stocks   map[string]models.Stock
	equip    map[string][]models.EquipmentItem
	audits   []models.AuditEntry
	updates  []map[string]any
}

func newMemStore() *memStore {
	return &memStore{
		users:    map[string]models.User{},
		hashes:   map[string]string{},
		projects: map[string]models.Project{},
		stocks:   map[string]models.Stock{},
		equip:    map[string][]models.EquipmentItem{},
	}
}

func (m *memStore) nextID(prefix string) string {
	m.seq++
	return fmt.Sprintf("%s-%d", prefix, m.seq)
}

func (m *memStore) UserByUsername(_ context.Context, username string) (models.User, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, u := range m.users {
		if u.Username == username {
			return u, m.hashes[id], nil
		}
	}
	return models.User{}, "", models.ErrNotFound
}

func (m *memStore) UserByID(_ context.Context, id string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return models.User{}, models.ErrNotFound
	}
	return u, nil
}

func (m *memStore) ListUsers(context.Context, int, int) ([]models.User, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.User
	for _, u := range m.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (m *memStore) CreateUser(_ context.Context, username, email, hash string, role models.UserRole) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			return "", models.ErrDuplicate
		}
	}
	id := m.nextID("u")
	m.users[id] = models.User{ID: id, Username: username, Email: email, Role: role}
	m.hashes[id] = hash
	return id, nil
}

func (m *memStore) UpdateUser(_ context.Context, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return models.ErrNotFound
	}
	m.updates = append(m.updates, fields)
	if v, ok := fields["email"]; ok {
		u.Email = v.(string)
	}
	if v, ok := fields["role"]; ok {
		u.Role = models.UserRole(v.(string))
	}
	if v, ok := fields["password_hash"]; ok {
		m.hashes[id] = v.(string)
	}
	m.users[id] = u
	return nil
}

func (m *memStore) DeleteUser(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[id]; !ok {
		return models.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

func (m *memStore) CreateProject(_ context.Context, in models.NewProject) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID("p")
	m.projects[id] = models.Project{ID: id, Name: in.Name, ContactName: in.ContactName, Remark: in.Remark}
	return id, nil
}

func (m *memStore) ListProjects(context.Context, int, int) ([]models.Project, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Project
	for _, p := range m.projects {
		out = append(out, p)
	}
	return out, int64(len(out)), nil
}

func (m *memStore) GetProject(_ context.Context, id string) (models.Project, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok {
		return models.Project{}, models.ErrNotFound
	}
	return p, nil
}

func (m *memStore) UpdateProject(_ context.Context, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.projects[id]
	if !ok {
		return models.ErrNotFound
	}
	m.updates = append(m.updates, fields)
	if v, ok := fields["p_name"]; ok {
		p.Name = v.(string)
	}
	if v, ok := fields["expected_delivery_date"]; ok {
		p.ExpectedDeliveryDate = v.(string)
	}
	m.projects[id] = p
	return nil
}

func (m *memStore) DeleteProject(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[id]; !ok {
		return models.ErrNotFound
	}
	delete(m.projects, id)
	delete(m.equip, id)
	return nil
}

func (m *memStore) CreateEquipments(_ context.Context, projectID string, items []models.EquipmentItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.projects[projectID]; !ok {
		return models.ErrNotFound
	}
	m.equip[projectID] = append(m.equip[projectID], items...)
	return nil
}

func (m *memStore) ListEquipments(_ context.Context, projectID string) ([]models.Equipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Equipment
	for i, it := range m.equip[projectID] {
		out = append(out, models.Equipment{
			ID:          fmt.Sprintf("e-%d", i),
			ProjectID:   projectID,
			PartNumber:  it.PartNumber,
			Quantity:    it.Quantity,
			Description: it.Description,
		})
	}
	return out, nil
}

func (m *memStore) CreateStock(_ context.Context, in models.NewStock) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.nextID("s")
	m.stocks[id] = models.Stock{ID: id, Name: in.Name, ContactName: in.ContactName}
	return id, nil
}

func (m *memStore) ListStocks(context.Context, int, int) ([]models.Stock, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.Stock
	for _, s := range m.stocks {
		out = append(out, s)
	}
	return out, int64(len(out)), nil
}

func (m *memStore) GetStock(_ context.Context, id string) (models.Stock, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stocks[id]
	if !ok {
		return models.Stock{}, models.ErrNotFound
	}
	return s, nil
}

func (m *memStore) UpdateStock(_ context.Context, id string, fields map[string]any) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.stocks[id]; !ok {
		return models.ErrNotFound
	}
	m.updates = append(m.updates, fields)
	return nil
}

func (m *memStore) DeleteStock(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.stocks[id]; !ok {
		return models.ErrNotFound
	}
	delete(m.stocks, id)
	return nil
}

func (m *memStore) CreateStockEquipments(_ context.Context, stockID string, items []models.EquipmentItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.stocks[stockID]; !ok {
		return models.ErrNotFound
	}
	m.equip[stockID] = append(m.equip[stockID], items...)
	return nil
}

func (m *memStore) ListStockEquipments(_ context.Context, stockID string) ([]models.StockEquipment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.StockEquipment
	for _, it := range m.equip[stockID] {
		out = append(out, models.StockEquipment{StockID: stockID, PartNumber: it.PartNumber, Quantity: it.Quantity})
	}
	return out, nil
}

func (m *memStore) Audit(_ context.Context, e models.AuditEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = m.nextID("a")
	m.audits = append(m.audits, e)
	return nil
}

func (m *memStore) ListAuditLogs(context.Context, int, int) ([]models.AuditEntry, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := append([]models.AuditEntry(nil), m.audits...)
	return out, int64(len(out)), nil
}
