package console

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"report-console/internal/models"
)

// Filter values are accepted and echoed back but do not narrow the tables
// yet.
type Filter struct {
	Type   string
	Status string
}

type ProjectRow struct {
	models.Project
	EquipmentCount int
}

type StockRow struct {
	models.Stock
	EquipmentCount int
}

type Stats struct {
	TotalProjects int
	TotalStocks   int
	PendingStep2  int // projects still in the first stage
	UpdatedToday  int // projects created or updated on today's date
}

type Dashboard struct {
	Projects []ProjectRow
	Stocks   []StockRow
	Stats    Stats
	Filter   Filter
}

type DashboardDeps struct {
	Source DashboardSource
	Limit  int
	Loc    *time.Location
	Now    func() time.Time
}

// LoadDashboard loads both tables in parallel, each followed by a concurrent
// equipment count per row. A failed count shows as zero; a failed list is
// returned as an error alongside whatever did load.
func LoadDashboard(ctx context.Context, filter Filter, deps DashboardDeps) (Dashboard, error) {
	if filter != (Filter{}) {
		slog.Debug("dashboard: filter requested", "type", filter.Type, "status", filter.Status)
	}

	var (
		wg         sync.WaitGroup
		projects   []ProjectRow
		stocks     []StockRow
		projectErr error
		stockErr   error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		projects, projectErr = loadProjectRows(ctx, deps)
	}()
	go func() {
		defer wg.Done()
		stocks, stockErr = loadStockRows(ctx, deps)
	}()
	wg.Wait()

	sortNewestFirst(projects, func(r ProjectRow) string { return r.CreatedTime }, deps.Loc)
	sortNewestFirst(stocks, func(r StockRow) string { return r.CreatedTime }, deps.Loc)

	d := Dashboard{
		Projects: projects,
		Stocks:   stocks,
		Filter:   filter,
		Stats:    computeStats(projects, stocks, deps),
	}
	return d, errors.Join(projectErr, stockErr)
}

func loadProjectRows(ctx context.Context, deps DashboardDeps) ([]ProjectRow, error) {
	list, err := deps.Source.ListProjects(ctx, 1, deps.Limit)
	if err != nil {
		return nil, fmt.Errorf("load projects: %w", err)
	}

	rows := make([]ProjectRow, len(list.Projects))
	var wg sync.WaitGroup
	for i, p := range list.Projects {
		rows[i] = ProjectRow{Project: p}
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			eq, err := deps.Source.ListEquipmentsByProject(ctx, id)
			if err != nil {
				slog.Warn("dashboard: equipment count", "project_id", id, "err", err)
				return
			}
			rows[i].EquipmentCount = len(eq)
		}(i, p.ID)
	}
	wg.Wait()
	return rows, nil
}

func loadStockRows(ctx context.Context, deps DashboardDeps) ([]StockRow, error) {
	list, err := deps.Source.ListStocks(ctx, 1, deps.Limit)
	if err != nil {
		return nil, fmt.Errorf("load stocks: %w", err)
	}

	rows := make([]StockRow, len(list.Stocks))
	var wg sync.WaitGroup
	for i, s := range list.Stocks {
		rows[i] = StockRow{Stock: s}
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			eq, err := deps.Source.ListStockEquipments(ctx, id)
			if err != nil {
				slog.Warn("dashboard: equipment count", "stock_id", id, "err", err)
				return
			}
			rows[i].EquipmentCount = len(eq)
		}(i, s.ID)
	}
	wg.Wait()
	return rows, nil
}

func computeStats(projects []ProjectRow, stocks []StockRow, deps DashboardDeps) Stats {
	st := Stats{TotalProjects: len(projects), TotalStocks: len(stocks)}

	now := time.Now
	if deps.Now != nil {
		now = deps.Now
	}
	loc := deps.Loc
	if loc == nil {
		loc = time.UTC
	}
	today := now().In(loc).Format(time.DateOnly)

	for _, p := range projects {
		if p.Status() == models.StatusStep1 {
			st.PendingStep2++
		}
		if p.CreatedTime == "" {
			continue
		}
		if models.CalendarDate(p.CreatedTime, loc) == today || models.CalendarDate(p.UpdatedTime, loc) == today {
			st.UpdatedToday++
		}
	}
	return st
}

// sortNewestFirst orders rows by creation time, descending. Rows whose time
// cannot be read go last in their original order.
func sortNewestFirst[T any](rows []T, created func(T) string, loc *time.Location) {
	sort.SliceStable(rows, func(i, j int) bool {
		ti, okI := models.ParseTimestamp(created(rows[i]), loc)
		tj, okJ := models.ParseTimestamp(created(rows[j]), loc)
		if okI != okJ {
			return okI
		}
		return ti.After(tj)
	})
}

type Kind string

const (
	KindProject Kind = "project"
	KindStock   Kind = "stock"
)

// EquipmentLine is one equipment entry of a detail view.
type EquipmentLine struct {
	PartNumber  string
	Quantity    int
	Description string
}

// Detail is a freshly fetched record with its equipment.
type Detail struct {
	Kind      Kind
	ID        string
	Name      string
	Contact   string
	Email     string
	Phone     string
	Owner     string
	Remark    string
	Created   string
	Updated   string
	Status    models.Status
	Delivery  models.Delivery
	Equipment []EquipmentLine
}

// HasDelivery reports whether the delivery section is worth showing.
func (d Detail) HasDelivery() bool {
	return d.Kind == KindStock || d.Status != models.StatusStep1
}

func LoadDetail(ctx context.Context, kind Kind, id string, src DetailSource) (Detail, error) {
	id = strings.TrimSpace(id)
	switch kind {
	case KindProject:
		if id == "" {
			return Detail{}, ErrMissingProjectID
		}
		p, err := src.GetProject(ctx, id)
		if err != nil {
			return Detail{}, fmt.Errorf("load project: %w", err)
		}
		eq, err := src.ListEquipmentsByProject(ctx, id)
		if err != nil {
			return Detail{}, fmt.Errorf("load equipment: %w", err)
		}
		d := Detail{
			Kind: kind, ID: p.ID, Name: p.Name, Contact: p.ContactName,
			Email: p.ContactEmail, Phone: p.ContactPhone, Owner: p.Owner, Remark: p.Remark,
			Created: p.CreatedTime, Updated: p.UpdatedTime,
			Status: p.Status(), Delivery: p.Delivery,
		}
		for _, e := range eq {
			d.Equipment = append(d.Equipment, EquipmentLine{e.PartNumber, e.Quantity, e.Description})
		}
		return d, nil

	case KindStock:
		if id == "" {
			return Detail{}, ErrMissingStockID
		}
		s, err := src.GetStock(ctx, id)
		if err != nil {
			return Detail{}, fmt.Errorf("load stock: %w", err)
		}
		eq, err := src.ListStockEquipments(ctx, id)
		if err != nil {
			return Detail{}, fmt.Errorf("load equipment: %w", err)
		}
		d := Detail{
			Kind: kind, ID: s.ID, Name: s.Name, Contact: s.ContactName,
			Email: s.ContactEmail, Phone: s.ContactPhone, Owner: s.Owner, Remark: s.Remark,
			Created: s.CreatedTime, Updated: s.UpdatedTime,
			Delivery: s.Delivery,
		}
		for _, e := range eq {
			d.Equipment = append(d.Equipment, EquipmentLine{e.PartNumber, e.Quantity, e.Description})
		}
		return d, nil
	}
	return Detail{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

func DeleteProject(ctx context.Context, id string, records RecordDeleter) error {
	if strings.TrimSpace(id) == "" {
		return ErrMissingProjectID
	}
	if err := records.DeleteProject(ctx, id); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	slog.Info("project_event", "event", "deleted", "project_id", id)
	return nil
}

func DeleteStock(ctx context.Context, id string, records RecordDeleter) error {
	if strings.TrimSpace(id) == "" {
		return ErrMissingStockID
	}
	if err := records.DeleteStock(ctx, id); err != nil {
		return fmt.Errorf("delete stock: %w", err)
	}
	slog.Info("stock_event", "event", "deleted", "stock_id", id)
	return nil
}
