package mock

import (
	"context"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	applog "fastdesign/internal/log"
	"fastdesign/models"
)

// DemoClientID owns the seeded dark-theme preference.
const DemoClientID = "00000000-0000-4000-8000-000000000001"

// New returns an in-memory sqlite database with the preference schema and a
// single seeded preference.
func New(ctx context.Context) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database")

	db, err := gorm.Open(sqlite.Open("file:fastdesign-mock?mode=memory&cache=shared"), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&models.ThemePreference{}); err != nil {
		return nil, err
	}

	if err := seed(ctx, db); err != nil {
		return nil, err
	}

	applog.Debug(ctx, "mock database ready")
	return db, nil
}

func seed(ctx context.Context, db *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	var pref models.ThemePreference
	return db.WithContext(ctx).
		Where(models.ThemePreference{ClientID: DemoClientID}).
		Assign(models.ThemePreference{Theme: models.ThemeDark}).
		FirstOrCreate(&pref).Error
}
