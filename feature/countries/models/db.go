package models

import "gorm.io/gorm"

// Migrate creates or updates the tables backing the countries feature.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Country{}, &SystemStatus{})
}
