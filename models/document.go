package models

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Document is one top-level subtree of the inventory tree, stored as a
// JSON blob keyed by its path ("items", "bills", "users",
// "notifications", "secure"). The backing store cannot represent a field
// that is present but undefined, so optional fields are omitted entirely
// when absent; null is a distinct persisted value.
type Document struct {
	Path string `json:"path" gorm:"primaryKey;size:64"`
	Data []byte `json:"data" gorm:"not null"`
}

// InitDB opens the database connection.
func InitDB() (*gorm.DB, error) {
	// DATABASE_URL selects PostgreSQL for production deployments.
	databaseURL := os.Getenv("DATABASE_URL")

	if databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		return db, nil
	}

	// SQLite for development.
	db, err := gorm.Open(sqlite.Open("inventra.db"), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	return db, nil
}
