package database

import (
	"context"
	"embed"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var embedMigrations embed.FS

// goose keeps its dialect and filesystem in package globals
var gooseMu sync.Mutex

// migrationTarget returns the goose dialect and embedded directory for a driver
func migrationTarget(driver string) (dialect string, dir string, err error) {
	switch driver {
	case "postgres":
		return "postgres", "migrations/postgres", nil
	case "sqlite":
		return "sqlite3", "migrations/sqlite", nil
	default:
		return "", "", fmt.Errorf("no migrations for database driver: %s", driver)
	}
}

// MigrationCommand is a goose operation supported by Migrate
type MigrationCommand string

const (
	MigrateUp     MigrationCommand = "up"
	MigrateDown   MigrationCommand = "down"
	MigrateStatus MigrationCommand = "status"
)

// Migrate runs the embedded goose migrations for the configured driver
func Migrate(ctx context.Context, db *gorm.DB, cfg DatabaseConfig, command MigrationCommand) error {
	dialect, dir, err := migrationTarget(cfg.NormalizedDriver())
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(log)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	log.WithField("command", command).WithField("dialect", dialect).Info("Running database migrations")

	switch command {
	case MigrateUp:
		err = goose.UpContext(ctx, sqlDB, dir)
	case MigrateDown:
		err = goose.DownContext(ctx, sqlDB, dir)
	case MigrateStatus:
		err = goose.StatusContext(ctx, sqlDB, dir)
	default:
		return fmt.Errorf("unknown migration command: %s", command)
	}
	if err != nil {
		return fmt.Errorf("migration %s failed: %w", command, err)
	}
	return nil
}
