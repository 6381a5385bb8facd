// Package gormstore implements the department and seller store ports on a
// relational database through gorm. SQLite backs local runs and tests;
// PostgreSQL backs shared environments.
package gormstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/jsamuelsen11/sellerdesk/internal/domain"
	"github.com/jsamuelsen11/sellerdesk/internal/platform/config"
)

const slowQueryThreshold = 200 * time.Millisecond

// DB owns the gorm connection shared by both stores. It also reports
// database health to the readiness probe.
type DB struct {
	gorm   *gorm.DB
	sql    *sql.DB
	logger *slog.Logger
}

// Open connects to the configured database, applies the pool settings,
// pings it, and migrates the schema when enabled.
func Open(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.DSN)
	case config.DriverPostgres:
		dialector = postgres.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Driver)
	}

	g, err := gorm.Open(dialector, &gorm.Config{
		Logger:         newGormLogger(logger, cfg.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	sqlDB, err := g.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB: %w", err)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db := &DB{gorm: g, sql: sqlDB, logger: logger}
	if cfg.AutoMigrate {
		if err := db.Migrate(ctx); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	logger.InfoContext(ctx, "database connected",
		slog.String("driver", cfg.Driver),
		slog.Bool("auto_migrate", cfg.AutoMigrate),
	)
	return db, nil
}

// Migrate creates or updates the department and seller tables.
func (db *DB) Migrate(ctx context.Context) error {
	if err := db.gorm.WithContext(ctx).AutoMigrate(&departmentRecord{}, &sellerRecord{}); err != nil {
		return fmt.Errorf("migrating schema: %w", err)
	}
	return nil
}

// Departments returns the department store.
func (db *DB) Departments() *DepartmentStore {
	return &DepartmentStore{db: db.gorm}
}

// Sellers returns the seller store.
func (db *DB) Sellers() *SellerStore {
	return &SellerStore{db: db.gorm}
}

// Name implements ports.HealthChecker.
func (db *DB) Name() string {
	return "database"
}

// HealthCheck implements ports.HealthChecker by pinging the database.
func (db *DB) HealthCheck(ctx context.Context) error {
	return db.sql.PingContext(ctx)
}

// Close releases the connection pool.
func (db *DB) Close() error {
	return db.sql.Close()
}

func newGormLogger(logger *slog.Logger, level string) gormlogger.Interface {
	return gormlogger.NewSlogLogger(logger.With(slog.String("component", "gorm")), gormlogger.Config{
		SlowThreshold:             slowQueryThreshold,
		LogLevel:                  gormLogLevel(level),
		IgnoreRecordNotFoundError: true,
		ParameterizedQueries:      true,
	})
}

func gormLogLevel(level string) gormlogger.LogLevel {
	switch level {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// translate maps gorm failures onto domain errors. op names the failed call
// in the StorageError so the alert text says what went wrong.
func translate(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrDuplicatedKey):
		return &domain.StorageError{Op: op, Err: fmt.Errorf("%w: %w", domain.ErrConflict, err)}
	default:
		return &domain.StorageError{Op: op, Err: err}
	}
}
