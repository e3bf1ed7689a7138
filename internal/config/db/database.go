package db

import (
	"fmt"

	"github.com/apptrackhq/apptrack-go/internal/config"
	"github.com/apptrackhq/apptrack-go/internal/domain/jobapp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection and migrates the schema.
// Callers own the handle; there is no package-level connection state.
func Connect() (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(gdb); err != nil {
		return nil, err
	}

	return gdb, nil
}

// Migrate creates or updates the schema for all tracked entities.
func Migrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(
		&jobapp.JobApplication{},
	); err != nil {
		return fmt.Errorf("failed to auto migrate: %w", err)
	}
	return nil
}
