package repositories

import (
	"context"
	"fmt"

	"github.com/muchtrie/tugasdrop/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDatabase opens the metadata store and runs migrations.
// TranslateError is on so a unique-index violation surfaces as
// gorm.ErrDuplicatedKey, which the admission path relies on as the
// authoritative duplicate signal.
func ConnectDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := db.AutoMigrate(&models.Upload{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return db, nil
}

// Ping verifies connectivity with a trivial round trip.
func Ping(ctx context.Context, db *gorm.DB) error {
	var one int
	return db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error
}
