package database

import (
	"cofoundermatch_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate creates/updates the schema for all collections.
// gen_random_uuid() requires PostgreSQL 13+ (or pgcrypto).
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Developer{},
		&models.Founder{},
		&models.Application{},
	)
}
