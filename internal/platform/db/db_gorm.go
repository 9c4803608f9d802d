// Package db opens the gorm connection, runs migrations and seeds the
// bootstrap administrator.
package db

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "buildright/internal/feature/auth/domain/entity"
	predentity "buildright/internal/feature/predictions/domain/entity"
	"buildright/internal/platform/config"
)

// Open connects to the configured database. TranslateError is enabled so
// driver-specific constraint violations surface as gorm sentinel errors.
func Open(cfg config.DB) (*gorm.DB, error) {
	gc := &gorm.Config{TranslateError: true}

	switch cfg.Driver {
	case "", "sqlite":
		if dir := filepath.Dir(cfg.DSN); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create db directory: %w", err)
			}
		}
		return gorm.Open(sqlite.Open(cfg.DSN), gc)
	case "postgres":
		return gorm.Open(postgres.Open(cfg.DSN), gc)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}

// Migrate creates or updates the schema for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&authentity.User{}, &predentity.Prediction{})
}

// SeedAdmin creates the administrator account if it does not exist yet.
// Re-running it against a seeded database is a no-op.
func SeedAdmin(db *gorm.DB, email, password string) error {
	var existing authentity.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("look up admin: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := authentity.User{
		FirstName: "Admin",
		LastName:  "User",
		Email:     email,
		Password:  string(hash),
		Company:   "BuildRight",
		JobTitle:  "Administrator",
		Role:      authentity.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		// A concurrent seeder may have won the race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return fmt.Errorf("create admin: %w", err)
	}
	return nil
}
