package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"report-console/internal/models"

	"gorm.io/gorm"
)

// Repository is the gorm-backed storage of the reporting backend.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func stamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.ErrNotFound
	}
	return err
}

func page(db *gorm.DB, pageNo, limit int) *gorm.DB {
	if pageNo < 1 {
		pageNo = 1
	}
	if limit < 1 {
		limit = 20
	}
	return db.Order("created_at desc").Offset((pageNo - 1) * limit).Limit(limit)
}

// update applies a merge patch to the record with the given id.
func (r *Repository) update(ctx context.Context, model any, id string, fields map[string]any) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("id = ?", id).First(model).Error; err != nil {
		return notFound(err)
	}
	if len(fields) == 0 {
		return nil
	}
	return db.Model(model).Updates(fields).Error
}

func (r *Repository) remove(ctx context.Context, model any, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return models.ErrNotFound
	}
	return nil
}

// USERS

func userOut(u User) models.User {
	return models.User{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      models.UserRole(u.Role),
		CreatedAt: stamp(u.CreatedAt),
		UpdatedAt: stamp(u.UpdatedAt),
	}
}

// UserByUsername returns the user and its password hash.
func (r *Repository) UserByUsername(ctx context.Context, username string) (models.User, string, error) {
	var u User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return models.User{}, "", notFound(err)
	}
	return userOut(u), u.PasswordHash, nil
}

func (r *Repository) UserByID(ctx context.Context, id string) (models.User, error) {
	var u User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return models.User{}, notFound(err)
	}
	return userOut(u), nil
}

func (r *Repository) ListUsers(ctx context.Context, pageNo, limit int) ([]models.User, int64, error) {
	db := r.db.WithContext(ctx)
	var total int64
	if err := db.Model(&User{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []User
	if err := page(db, pageNo, limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]models.User, 0, len(rows))
	for _, u := range rows {
		out = append(out, userOut(u))
	}
	return out, total, nil
}

func (r *Repository) CreateUser(ctx context.Context, username, email, passwordHash string, role models.UserRole) (string, error) {
	db := r.db.WithContext(ctx)
	var count int64
	if err := db.Model(&User{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return "", err
	}
	if count > 0 {
		return "", fmt.Errorf("user %q: %w", username, models.ErrDuplicate)
	}
	u := User{Username: username, Email: email, PasswordHash: passwordHash, Role: string(role)}
	if err := db.Create(&u).Error; err != nil {
		return "", err
	}
	return u.ID, nil
}

// UpdateUser takes column names; a password must already be hashed into
// password_hash.
func (r *Repository) UpdateUser(ctx context.Context, id string, fields map[string]any) error {
	return r.update(ctx, &User{}, id, fields)
}

func (r *Repository) DeleteUser(ctx context.Context, id string) error {
	return r.remove(ctx, &User{}, id)
}

// PROJECTS

func deliveryOut(d Delivery) models.Delivery {
	return models.Delivery{
		ExpectedDeliveryPeriod: d.ExpectedDeliveryPeriod,
		ExpectedDeliveryDate:   d.ExpectedDeliveryDate,
		ExpectedContractPeriod: d.ExpectedContractPeriod,
		ContractStartDate:      d.ContractStartDate,
		ContractEndDate:        d.ContractEndDate,
		DeliveryAddress:        d.DeliveryAddress,
		SpecialRequirements:    d.SpecialRequirements,
	}
}

func projectOut(p Project) models.Project {
	return models.Project{
		ID:           p.ID,
		Name:         p.PName,
		ContactName:  p.ContactName,
		ContactPhone: p.ContactPhone,
		ContactEmail: p.ContactEmail,
		Owner:        p.Owner,
		Remark:       p.Remark,
		CreatedTime:  stamp(p.CreatedAt),
		UpdatedTime:  stamp(p.UpdatedAt),
		Delivery:     deliveryOut(p.Delivery),
	}
}

func (r *Repository) CreateProject(ctx context.Context, in models.NewProject) (string, error) {
	p := Project{
		PName:        in.Name,
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
		ContactEmail: in.ContactEmail,
		Owner:        in.Owner,
		Remark:       in.Remark,
	}
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return "", err
	}
	return p.ID, nil
}

func (r *Repository) ListProjects(ctx context.Context, pageNo, limit int) ([]models.Project, int64, error) {
	db := r.db.WithContext(ctx)
	var total int64
	if err := db.Model(&Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []Project
	if err := page(db, pageNo, limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]models.Project, 0, len(rows))
	for _, p := range rows {
		out = append(out, projectOut(p))
	}
	return out, total, nil
}

func (r *Repository) GetProject(ctx context.Context, id string) (models.Project, error) {
	var p Project
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error; err != nil {
		return models.Project{}, notFound(err)
	}
	return projectOut(p), nil
}

func (r *Repository) UpdateProject(ctx context.Context, id string, fields map[string]any) error {
	return r.update(ctx, &Project{}, id, fields)
}

func (r *Repository) DeleteProject(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("p_id = ?", id).Delete(&Equipment{}).Error; err != nil {
			return err
		}
		return NewRepository(tx).remove(ctx, &Project{}, id)
	})
}

func (r *Repository) CreateEquipments(ctx context.Context, projectID string, items []models.EquipmentItem) error {
	if _, err := r.GetProject(ctx, projectID); err != nil {
		return err
	}
	rows := make([]Equipment, 0, len(items))
	for _, it := range items {
		rows = append(rows, Equipment{
			ProjectID:   projectID,
			PartNumber:  it.PartNumber,
			Quantity:    it.Quantity,
			Description: it.Description,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *Repository) ListEquipments(ctx context.Context, projectID string) ([]models.Equipment, error) {
	var rows []Equipment
	if err := r.db.WithContext(ctx).Where("p_id = ?", projectID).Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.Equipment, 0, len(rows))
	for _, e := range rows {
		out = append(out, models.Equipment{
			ID:          e.ID,
			ProjectID:   e.ProjectID,
			PartNumber:  e.PartNumber,
			Quantity:    e.Quantity,
			Description: e.Description,
		})
	}
	return out, nil
}

// STOCKS

func stockOut(s Stock) models.Stock {
	return models.Stock{
		ID:           s.ID,
		Name:         s.StockName,
		ContactName:  s.ContactName,
		ContactPhone: s.ContactPhone,
		ContactEmail: s.ContactEmail,
		Owner:        s.Owner,
		Remark:       s.Remark,
		CreatedTime:  stamp(s.CreatedAt),
		UpdatedTime:  stamp(s.UpdatedAt),
		Delivery:     deliveryOut(s.Delivery),
	}
}

func (r *Repository) CreateStock(ctx context.Context, in models.NewStock) (string, error) {
	s := Stock{
		StockName:    in.Name,
		ContactName:  in.ContactName,
		ContactPhone: in.ContactPhone,
		ContactEmail: in.ContactEmail,
		Owner:        in.Owner,
		Remark:       in.Remark,
		Delivery: Delivery{
			ExpectedDeliveryPeriod: in.ExpectedDeliveryPeriod,
			ExpectedDeliveryDate:   in.ExpectedDeliveryDate,
			ExpectedContractPeriod: in.ExpectedContractPeriod,
			ContractStartDate:      in.ContractStartDate,
			ContractEndDate:        in.ContractEndDate,
			DeliveryAddress:        in.DeliveryAddress,
			SpecialRequirements:    in.SpecialRequirements,
		},
	}
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return "", err
	}
	return s.ID, nil
}

func (r *Repository) ListStocks(ctx context.Context, pageNo, limit int) ([]models.Stock, int64, error) {
	db := r.db.WithContext(ctx)
	var total int64
	if err := db.Model(&Stock{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var rows []Stock
	if err := page(db, pageNo, limit).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	out := make([]models.Stock, 0, len(rows))
	for _, s := range rows {
		out = append(out, stockOut(s))
	}
	return out, total, nil
}

func (r *Repository) GetStock(ctx context.Context, id string) (models.Stock, error) {
	var s Stock
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&s).Error; err != nil {
		return models.Stock{}, notFound(err)
	}
	return stockOut(s), nil
}

func (r *Repository) UpdateStock(ctx context.Context, id string, fields map[string]any) error {
	return r.update(ctx, &Stock{}, id, fields)
}

func (r *Repository) DeleteStock(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("s_id = ?", id).Delete(&StockEquipment{}).Error; err != nil {
			return err
		}
		return NewRepository(tx).remove(ctx, &Stock{}, id)
	})
}

func (r *Repository) CreateStockEquipments(ctx context.Context, stockID string, items []models.EquipmentItem) error {
	if _, err := r.GetStock(ctx, stockID); err != nil {
		return err
	}
	rows := make([]StockEquipment, 0, len(items))
	for _, it := range items {
		rows = append(rows, StockEquipment{
			StockID:     stockID,
			PartNumber:  it.PartNumber,
			Quantity:    it.Quantity,
			Description: it.Description,
		})
	}
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *Repository) ListStockEquipments(ctx context.Context, stockID string) ([]models.StockEquipment, error) {
	var rows []StockEquipment
	if err := r.db.WithContext(ctx).Where("s_id = ?", stockID).Order("created_at asc").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]models.StockEquipment, 0, len(rows))
	for _, e := range rows {
		out = append(out, models.StockEquipment{
			ID:          e.ID,
			StockID:     e.StockID,
			PartNumber:  e.PartNumber,
			Quantity:    e.Quantity,
			Description: e.Description,
		})
	}
	return out, nil
}
