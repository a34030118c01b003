package db

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"fastdesign/internal/config"
	"fastdesign/models"
)

func TestInitializeRequiresURL(t *testing.T) {
	t.Parallel()

	db, err := Initialize(config.DatabaseConfig{URL: "  "})
	if err == nil {
		t.Fatal("expected error when database URL is empty")
	}
	if db != nil {
		t.Fatal("expected returned db handle to be nil on error")
	}
}

func TestAutoMigrateRejectsNilDatabase(t *testing.T) {
	t.Parallel()

	if err := AutoMigrate(nil); err == nil {
		t.Fatal("expected error when database handle is nil")
	}
}

func TestAutoMigrateWithSQLite(t *testing.T) {
	t.Parallel()

	sqliteDB, err := gorm.Open(sqlite.Open("file:fastdesign-migrate?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}

	if err := AutoMigrate(sqliteDB); err != nil {
		t.Fatalf("automigrate sqlite database: %v", err)
	}
	if !sqliteDB.Migrator().HasTable(&models.ThemePreference{}) {
		t.Fatal("expected theme preference table to exist")
	}

	pref := models.ThemePreference{ClientID: "client-a"}
	if err := sqliteDB.Create(&pref).Error; err != nil {
		t.Fatalf("create preference: %v", err)
	}
	var loaded models.ThemePreference
	if err := sqliteDB.First(&loaded, "client_id = ?", "client-a").Error; err != nil {
		t.Fatalf("load preference: %v", err)
	}
	if loaded.Theme != models.ThemeDefault {
		t.Fatalf("expected column default %q, got %q", models.ThemeDefault, loaded.Theme)
	}
}

func TestConfigurePropagatesInitializationError(t *testing.T) {
	t.Parallel()

	if _, err := Configure(config.DatabaseConfig{}); err == nil {
		t.Fatal("expected configuration error when initialize fails")
	}
}
