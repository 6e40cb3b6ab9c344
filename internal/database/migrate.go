package database

import (
	"gorm.io/gorm"

	"github.com/tastemap/backend/internal/model"
)

// Migrate brings the schema up to date. The catalog is a single collection,
// so GORM auto-migration covers both PostgreSQL and the SQLite test store.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Recipe{},
	)
}
