package models

import "gorm.io/gorm"

// AllModels returns all models for migration
// Note: APIKey must be migrated before User, which references it
func AllModels() []interface{} {
	return []interface{}{
		&APIKey{},
		&User{},
		&FlightRegistry{},
	}
}

// AutoMigrate runs GORM auto-migration for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
