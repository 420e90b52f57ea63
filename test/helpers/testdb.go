package helpers

import (
	"os"
	"testing"

	"cofoundermatch_backend/database"
	"cofoundermatch_backend/internal/config"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OpenTestDB connects to the database named by TEST_DATABASE_URL and runs
// migrations. Tests that need a database are skipped when it is unset.
func OpenTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database tests")
	}

	os.Setenv("DATABASE_URL", dsn)
	if os.Getenv("JWT_SECRET") == "" {
		os.Setenv("JWT_SECRET", "test_secret_key_1234567890")
	}
	os.Setenv("SERVER_ENV", "test")
	config.LoadConfig()

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect to test database (%s): %v", dsn, err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}
