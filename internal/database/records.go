package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base carries the uuid primary key and timestamps of every table.
type Base struct {
	ID        string `gorm:"primaryKey;size:36"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (b *Base) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

type User struct {
	Base
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"not null;default:user"`
}

// Delivery columns are shared by projects and stocks.
type Delivery struct {
	ExpectedDeliveryPeriod string
	ExpectedDeliveryDate   string
	ExpectedContractPeriod string
	ContractStartDate      string
	ContractEndDate        string
	DeliveryAddress        string
	SpecialRequirements    string `gorm:"type:text"`
}

type Project struct {
	Base
	PName        string `gorm:"column:p_name;not null"`
	ContactName  string
	ContactPhone string
	ContactEmail string
	Owner        string
	Remark       string `gorm:"type:text"`
	Delivery     `gorm:"embedded"`
	Equipments   []Equipment `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

type Equipment struct {
	Base
	ProjectID   string `gorm:"column:p_id;index;not null"`
	PartNumber  string `gorm:"not null"`
	Quantity    int    `gorm:"not null"`
	Description string
}

type Stock struct {
	Base
	StockName    string `gorm:"not null"`
	ContactName  string
	ContactPhone string
	ContactEmail string
	Owner        string
	Remark       string `gorm:"type:text"`
	Delivery     `gorm:"embedded"`
	Equipments   []StockEquipment `gorm:"foreignKey:StockID;constraint:OnDelete:CASCADE"`
}

type StockEquipment struct {
	Base
	StockID     string `gorm:"column:s_id;index;not null"`
	PartNumber  string `gorm:"not null"`
	Quantity    int    `gorm:"not null"`
	Description string
}

type AuditLog struct {
	Base
	UserID   string `gorm:"index"`
	Username string
	Entity   string `gorm:"index"`
	EntityID string
	Action   string
	Details  string `gorm:"type:text"`
}
