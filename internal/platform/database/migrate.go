package database

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/pressly/goose/v3"
	"gorm.io/gorm"
)

//go:embed migrations
var migrationsFS embed.FS

// MigrationStatus describes one schema migration and whether it is applied.
type MigrationStatus struct {
	Version   int64
	Source    string
	Applied   bool
	AppliedAt time.Time
}

// Migrator applies the embedded migrations for one dialect.
type Migrator struct {
	provider *goose.Provider
}

// NewMigrator builds a Migrator for db using the migrations of driver.
func NewMigrator(db *gorm.DB, driver string) (*Migrator, error) {
	dialect, dir, err := migrationSource(driver)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB handle: %w", err)
	}

	fsys, err := fs.Sub(migrationsFS, dir)
	if err != nil {
		return nil, fmt.Errorf("opening %s migrations: %w", driver, err)
	}

	provider, err := goose.NewProvider(dialect, sqlDB, fsys)
	if err != nil {
		return nil, fmt.Errorf("creating migration provider: %w", err)
	}

	return &Migrator{provider: provider}, nil
}

// Up applies every pending migration and returns the versions it applied.
func (m *Migrator) Up(ctx context.Context) ([]int64, error) {
	results, err := m.provider.Up(ctx)
	if err != nil {
		return nil, fmt.Errorf("applying migrations: %w", err)
	}

	applied := make([]int64, 0, len(results))
	for _, r := range results {
		applied = append(applied, r.Source.Version)
	}
	return applied, nil
}

// Down rolls back the most recent migration and returns its version.
// It returns 0 and no error when nothing is applied.
func (m *Migrator) Down(ctx context.Context) (int64, error) {
	result, err := m.provider.Down(ctx)
	if errors.Is(err, goose.ErrNoNextVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("rolling back migration: %w", err)
	}
	if result == nil {
		return 0, nil
	}
	return result.Source.Version, nil
}

// Status reports every known migration in version order.
func (m *Migrator) Status(ctx context.Context) ([]MigrationStatus, error) {
	statuses, err := m.provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading migration status: %w", err)
	}

	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version:   s.Source.Version,
			Source:    s.Source.Path,
			Applied:   s.State == goose.StateApplied,
			AppliedAt: s.AppliedAt,
		})
	}
	return out, nil
}

// Version returns the highest applied migration version.
func (m *Migrator) Version(ctx context.Context) (int64, error) {
	v, err := m.provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return v, nil
}

func migrationSource(driver string) (goose.Dialect, string, error) {
	switch driver {
	case DriverSQLite:
		return goose.DialectSQLite3, "migrations/sqlite", nil
	case DriverPostgres:
		return goose.DialectPostgres, "migrations/postgres", nil
	default:
		return "", "", fmt.Errorf("no migrations for database driver %q", driver)
	}
}
