package database

import (
	"errors"
	"fmt"
	"log"
	"time"

	"report-console/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the database, retrying while it starts up, and migrates the
// schema.
func Connect(dsn string) *gorm.DB {
	var (
		db  *gorm.DB
		err error
	)

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Printf("trying to connect to DB (attempt %d/%d)...", i, maxAttempts)

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			log.Println("connected to DB successfully")
			break
		}

		log.Printf("failed to connect to DB: %v", err)
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatalf("failed to connect to db after %d attempts: %v", maxAttempts, err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Project{},
		&Equipment{},
		&Stock{},
		&StockEquipment{},
		&AuditLog{},
	)
}

// SeedAdmin creates the protected administrator account when it is missing.
// An existing account keeps its password.
func SeedAdmin(db *gorm.DB, password string) error {
	var existing User
	err := db.Where("username = ?", models.ProtectedUsername).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := User{
		Username:     models.ProtectedUsername,
		PasswordHash: string(hash),
		Role:         string(models.RoleAdmin),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	log.Printf("created default admin user: %s", admin.Username)
	return nil
}
