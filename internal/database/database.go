package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/killallgit/podcast-api/pkg/config"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DB struct {
	*gorm.DB
}

// TableStatus describes whether a model's table exists
type TableStatus struct {
	Table  string
	Exists bool
}

// Initialize opens a sqlite database at dbPath with default pool settings
func Initialize(dbPath string, verbose bool) (*DB, error) {
	return Open(config.DatabaseConfig{
		Driver:                "sqlite",
		Path:                  dbPath,
		MaxConnections:        10,
		MaxIdleConnections:    5,
		ConnectionMaxLifetime: time.Hour,
		Verbose:               verbose,
	})
}

// Open creates a new database connection with the provided configuration
func Open(cfg config.DatabaseConfig) (*DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	// Configure GORM logger
	logLevel := logger.Error
	if cfg.Verbose {
		logLevel = logger.Info
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, apperrors.DatabaseError(apperrors.ErrCodeDatabaseConnection, "connect", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	if cfg.MaxIdleConnections > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConnections)
	}
	if cfg.MaxConnections > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxConnections)
	}
	if cfg.ConnectionMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnectionMaxLifetime)
	}

	return &DB{DB: db}, nil
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "", "sqlite":
		if err := ensureDir(cfg.Path); err != nil {
			return nil, err
		}
		return sqlite.Open(cfg.Path), nil
	case "postgres":
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, apperrors.ConfigError("database.driver", fmt.Sprintf("unsupported driver %q", cfg.Driver))
	}
}

// ensureDir creates the directory holding a sqlite file
func ensureDir(dbPath string) error {
	if dbPath == "" || dbPath == ":memory:" {
		return nil
	}
	dir := filepath.Dir(dbPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	return nil
}

// Close closes the database connection
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}
	return sqlDB.Close()
}

// HealthCheck verifies the database connection is working
func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database not initialized")
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying SQL database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	return nil
}

// AutoMigrate runs GORM auto migration for the provided models
func (db *DB) AutoMigrate(models ...any) error {
	if err := db.DB.AutoMigrate(models...); err != nil {
		return apperrors.DatabaseError(apperrors.ErrCodeDatabaseMigration, "auto migration", err)
	}
	return nil
}

// DropTables drops the tables of the provided models in reverse order
func (db *DB) DropTables(models ...any) error {
	reversed := make([]any, 0, len(models))
	for i := len(models) - 1; i >= 0; i-- {
		reversed = append(reversed, models[i])
	}
	if err := db.Migrator().DropTable(reversed...); err != nil {
		return apperrors.DatabaseError(apperrors.ErrCodeDatabaseMigration, "drop tables", err)
	}
	return nil
}

// Status reports which of the provided models have a table
func (db *DB) Status(models ...any) ([]TableStatus, error) {
	statuses := make([]TableStatus, 0, len(models))
	for _, m := range models {
		stmt := &gorm.Statement{DB: db.DB}
		if err := stmt.Parse(m); err != nil {
			return nil, fmt.Errorf("parsing model: %w", err)
		}
		statuses = append(statuses, TableStatus{
			Table:  stmt.Schema.Table,
			Exists: db.Migrator().HasTable(m),
		})
	}
	return statuses, nil
}
