// Package database opens the relational store behind the todo service and
// manages its schema.
//
// Two drivers are supported: "sqlite" for local runs and tests, and
// "postgres" for deployed environments. The schema is versioned with goose
// migrations embedded in the binary, one directory per dialect.
package database

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen11/todo-service/internal/platform/config"
)

// Driver names accepted in database.driver.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const slowQueryThreshold = 200 * time.Millisecond

// sqliteDefaults are appended to SQLite DSNs that do not set them. Immediate
// transactions take the write lock at BEGIN, so concurrent read-modify-write
// transactions queue on the busy timeout instead of failing with
// "database is locked" when they upgrade from a shared lock.
var sqliteDefaults = []struct{ key, value string }{
	{"_txlock", "immediate"},
	{"_busy_timeout", "5000"},
}

// Open connects to the database described by cfg and applies the pool
// settings. GORM's own log output is routed through logger at warn level so
// slow queries and driver errors share the service's log format.
func Open(cfg config.DatabaseConfig, logger *slog.Logger) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.Driver, cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.New(
			slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
			gormlogger.Config{
				SlowThreshold:             slowQueryThreshold,
				LogLevel:                  gormlogger.Warn,
				IgnoreRecordNotFoundError: true,
			},
		),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return db, nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("getting sql.DB handle: %w", err)
	}
	return sqlDB.Close()
}

func dialectorFor(driver, dsn string) (gorm.Dialector, error) {
	if dsn == "" {
		return nil, errors.New("database dsn must not be empty")
	}
	switch driver {
	case DriverSQLite:
		return sqlite.Open(SQLiteDSN(dsn)), nil
	case DriverPostgres:
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

// SQLiteDSN returns dsn with the transaction lock mode and busy timeout the
// store relies on, keeping any value the caller already set.
func SQLiteDSN(dsn string) string {
	base, query, _ := strings.Cut(dsn, "?")
	params, err := url.ParseQuery(query)
	if err != nil {
		return dsn
	}

	var extra []string
	for _, opt := range sqliteDefaults {
		if !params.Has(opt.key) {
			extra = append(extra, opt.key+"="+opt.value)
		}
	}
	if len(extra) == 0 {
		return dsn
	}
	if query != "" {
		extra = append([]string{query}, extra...)
	}
	return base + "?" + strings.Join(extra, "&")
}
