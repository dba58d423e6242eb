package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"prepwise-backend/internal/config"
	"prepwise-backend/internal/model"
)

var conn *gorm.DB

// InitFromConfig opens the Postgres connection and migrates the schema.
// Only called when DB INITIALIZE is enabled; the live request path never
// depends on it.
func InitFromConfig(cfg *config.APIConfig) error {
	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}

	if err := db.AutoMigrate(model.SchemaModels()...); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}

	conn = db
	return nil
}

// GetDB returns the gorm connection, or nil when the DB is not initialized.
func GetDB() *gorm.DB {
	return conn
}
