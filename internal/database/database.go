package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/comite-bacias/presenca/internal/config"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Connect opens the SQL database selected by the storage driver.
func Connect(storage config.StorageConfig, dbCfg config.DatabaseConfig) (*gorm.DB, error) {
	switch storage.Driver {
	case config.StorageDriverPostgres:
		return ConnectReturnGormDB(dbCfg)
	case config.StorageDriverSqlite:
		return ConnectSqlite(storage.SqlitePath)
	default:
		return nil, fmt.Errorf("storage driver %q is not backed by a SQL database", storage.Driver)
	}
}

func ConnectReturnGormDB(cfg config.DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)

	idle, err := time.ParseDuration(cfg.MaxIdleTime)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_IDLE_TIME: %w", err)
	}
	sqlDB.SetConnMaxIdleTime(idle)

	return db, nil
}

// ConnectSqlite opens a sqlite file, creating its directory when needed.
// An empty path opens a private in-memory database.
func ConnectSqlite(path string) (*gorm.DB, error) {
	dsn := "file::memory:"
	if path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create sqlite directory: %w", err)
			}
		}
		dsn = path
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Discard,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer, and a private in-memory database lives in one connection
	sqlDB.SetMaxOpenConns(1)

	return db, nil
}
