package setup

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/tusharnayak1515/users-data-backend/internal/domain"
)

// MigrateDB creates or updates the schema for all models. The sized
// varchar columns on User keep the unique indexes on email and phone
// valid on MySQL.
func MigrateDB(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("cannot migrate database with nil DB connection")
	}
	if err := db.AutoMigrate(&domain.User{}, &domain.DataRecord{}); err != nil {
		return fmt.Errorf("auto-migrate tables: %w", err)
	}
	return nil
}
