package testutil

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/SebastianCO11/Drone-System-Prototype/config"
	"github.com/SebastianCO11/Drone-System-Prototype/models"
)

// OpenTestDB opens an in-memory SQLite database with all models migrated.
// Each call returns an isolated database.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Device{},
		&models.Route{},
		&models.Reservation{},
		&models.Order{},
		&models.ServiceLog{},
		&models.Weather{},
		&models.SystemLog{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

// NewTestConfig returns a configuration suitable for handler tests
func NewTestConfig() *config.Config {
	return &config.Config{
		DatabaseURL: "sqlite::memory:",
		Port:        "4000",
		GoEnv:       "test",
		JWTSecret:   "test-secret",
		JWTTTLHours: 1,
		MailFrom:    "test@dronedelivery.local",
	}
}
