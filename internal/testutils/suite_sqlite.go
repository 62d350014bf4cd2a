//go:build !integration

package testutils

import (
	"fmt"
	"testing"

	"maintenance-hub-backend/internal/config"
	"maintenance-hub-backend/internal/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SetupTestSuite opens a private in-memory SQLite database with the full schema.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	return setupSuite(t)
}

func setupSuite(t testing.TB) *BaseTestSuite {
	t.Helper()
	db := NewTestDB(t)
	return &BaseTestSuite{
		DB: db,
		Config: &config.Config{
			DatabaseDriver: database.DriverSQLite,
			Port:           "8080",
			LogLevel:       "debug",
			Environment:    "test",
		},
	}
}

// NewTestDB returns a migrated in-memory SQLite database closed at test cleanup.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := database.Initialize(dsn, &database.Options{Driver: database.DriverSQLite})
	if err != nil {
		t.Fatalf("failed to open sqlite test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// CleanupSharedContainer is a no-op without the integration tag.
func CleanupSharedContainer() {}
