package console

import (
	"context"
	"errors"
	"testing"
	"time"

	"report-console/internal/models"
)

var utc8 = time.FixedZone("UTC+8", 8*3600)

func dashboardDeps(f *fakeBackend, now time.Time) DashboardDeps {
	return DashboardDeps{
		Source: f,
		Limit:  100,
		Loc:    utc8,
		Now:    func() time.Time { return now },
	}
}

func TestLoadDashboard_FailingCountDefaultsToZero(t *testing.T) {
	f := &fakeBackend{
		projects: []models.Project{
			{ID: "a", CreatedTime: "2024-01-01T00:00:00Z"},
			{ID: "b", CreatedTime: "2024-01-02T00:00:00Z"},
			{ID: "c", CreatedTime: "2024-01-03T00:00:00Z"},
		},
		equipment:    map[string]int{"a": 2, "b": 7, "c": 1},
		equipmentErr: map[string]error{"b": errors.New("timeout")},
	}

	d, err := LoadDashboard(context.Background(), Filter{}, dashboardDeps(f, time.Now()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	counts := map[string]int{}
	for _, r := range d.Projects {
		counts[r.ID] = r.EquipmentCount
	}
	if counts["a"] != 2 || counts["b"] != 0 || counts["c"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

func TestLoadDashboard_SortsNewestFirst(t *testing.T) {
	f := &fakeBackend{
		projects: []models.Project{
			{ID: "old", CreatedTime: "2024-01-01T00:00:00Z"},
			{ID: "none"},
			{ID: "new", CreatedTime: "2024-03-01T00:00:00+08:00"},
		},
		stocks: []models.Stock{
			{ID: "s-old", CreatedTime: "2023-12-01 10:00:00"},
			{ID: "s-new", CreatedTime: "2024-02-01 10:00:00"},
		},
	}

	d, err := LoadDashboard(context.Background(), Filter{}, dashboardDeps(f, time.Now()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Projects[0].ID != "new" || d.Projects[1].ID != "old" || d.Projects[2].ID != "none" {
		t.Errorf("project order = %v, %v, %v", d.Projects[0].ID, d.Projects[1].ID, d.Projects[2].ID)
	}
	if d.Stocks[0].ID != "s-new" {
		t.Errorf("stock order starts with %s", d.Stocks[0].ID)
	}
}

func TestLoadDashboard_Stats(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 0, 0, 0, utc8)
	f := &fakeBackend{
		projects: []models.Project{
			// created yesterday 17:00 UTC = today 01:00 in UTC+8
			{ID: "1", CreatedTime: "2024-05-31T17:00:00Z"},
			{ID: "2", CreatedTime: "2024-05-01T00:00:00Z", UpdatedTime: "2024-06-01T08:00:00+08:00",
				Delivery: models.Delivery{ExpectedDeliveryDate: "2024-07-01"}},
			{ID: "3", CreatedTime: "2024-05-01T00:00:00Z",
				Delivery: models.Delivery{ExpectedDeliveryDate: "2024-07-01", ExpectedDeliveryPeriod: "Q3"}},
			{ID: "4", UpdatedTime: "2024-06-01T08:00:00+08:00"},
		},
		stocks: []models.Stock{{ID: "s"}},
	}

	d, err := LoadDashboard(context.Background(), Filter{}, dashboardDeps(f, now))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Stats{TotalProjects: 4, TotalStocks: 1, PendingStep2: 2, UpdatedToday: 2}
	if d.Stats != want {
		t.Errorf("stats = %+v, want %+v", d.Stats, want)
	}

	status := map[string]models.Status{}
	for _, r := range d.Projects {
		status[r.ID] = r.Status()
	}
	if status["1"] != models.StatusStep1 || status["2"] != models.StatusStep2 || status["3"] != models.StatusCompleted {
		t.Errorf("status = %v", status)
	}
}

func TestLoadDashboard_ListFailureKeepsOtherTable(t *testing.T) {
	listErr := errors.New("projects down")
	f := &fakeBackend{
		projectsErr: listErr,
		stocks:      []models.Stock{{ID: "s1"}, {ID: "s2"}},
		equipment:   map[string]int{"s1": 3},
	}

	d, err := LoadDashboard(context.Background(), Filter{Type: "project", Status: "step1"}, dashboardDeps(f, time.Now()))
	if !errors.Is(err, listErr) {
		t.Fatalf("err = %v", err)
	}
	if len(d.Projects) != 0 || len(d.Stocks) != 2 {
		t.Errorf("got %d projects, %d stocks", len(d.Projects), len(d.Stocks))
	}
	if d.Filter.Type != "project" || d.Filter.Status != "step1" {
		t.Errorf("filter not echoed: %+v", d.Filter)
	}
}

func TestLoadDashboard_FilterIsNotApplied(t *testing.T) {
	f := &fakeBackend{projects: []models.Project{
		{ID: "a"},
		{ID: "b", Delivery: models.Delivery{ExpectedDeliveryDate: "x", ExpectedDeliveryPeriod: "y"}},
	}}
	d, err := LoadDashboard(context.Background(), Filter{Status: "completed"}, dashboardDeps(f, time.Now()))
	if err != nil {
		t.Fatal(err)
	}
	if len(d.Projects) != 2 {
		t.Errorf("rows = %d", len(d.Projects))
	}
}

func TestLoadDetail(t *testing.T) {
	f := &fakeBackend{
		projects:  []models.Project{{ID: "p", Name: "Acme"}},
		stocks:    []models.Stock{{ID: "s", Name: "Depot"}},
		equipment: map[string]int{"p": 2, "s": 1},
	}
	ctx := context.Background()

	d, err := LoadDetail(ctx, KindProject, "p", f)
	if err != nil || d.Name != "Acme" || len(d.Equipment) != 2 || d.HasDelivery() {
		t.Errorf("project detail = %+v, %v", d, err)
	}
	d, err = LoadDetail(ctx, KindStock, "s", f)
	if err != nil || d.Name != "Depot" || len(d.Equipment) != 1 || !d.HasDelivery() {
		t.Errorf("stock detail = %+v, %v", d, err)
	}
	if _, err := LoadDetail(ctx, "order", "p", f); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("err = %v", err)
	}
	if _, err := LoadDetail(ctx, KindProject, "missing", f); !errors.Is(err, errNotFound) {
		t.Errorf("err = %v", err)
	}
}

func TestDeleteRecords(t *testing.T) {
	f := &fakeBackend{}
	ctx := context.Background()
	if err := DeleteProject(ctx, "", f); !errors.Is(err, ErrMissingProjectID) {
		t.Errorf("err = %v", err)
	}
	if err := DeleteProject(ctx, "p", f); err != nil {
		t.Error(err)
	}
	if err := DeleteStock(ctx, "s", f); err != nil {
		t.Error(err)
	}
	if got := f.Calls(); len(got) != 2 || got[0] != "DeleteProject" || got[1] != "DeleteStock" {
		t.Errorf("calls = %v", got)
	}
}
