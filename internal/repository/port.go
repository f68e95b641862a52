package repository

import (
	"fmt"

	"github.com/comite-bacias/presenca/internal/attendance"
	"github.com/comite-bacias/presenca/internal/config"
	"github.com/comite-bacias/presenca/internal/database"
	"go.uber.org/zap"
)

// NewPort opens the storage selected by cfg.Storage.Driver. The returned close func
// releases the underlying database and is never nil.
func NewPort(cfg *config.Config, logger *zap.SugaredLogger) (attendance.Port, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Storage.Driver {
	case config.StorageDriverMemory:
		logger.Warn("Using in-memory storage, data is lost on restart")
		return NewMemoryKV(), noop, nil

	case config.StorageDriverBadger:
		kv, err := NewBadgerKV(cfg.Storage.BadgerDir, logger)
		if err != nil {
			return nil, noop, fmt.Errorf("opening badger: %w", err)
		}
		return kv, kv.Close, nil

	case config.StorageDriverSqlite, config.StorageDriverPostgres:
		db, err := database.Connect(cfg.Storage, cfg.DB)
		if err != nil {
			return nil, noop, fmt.Errorf("connecting to database: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, noop, err
		}

		// sqlite is the zero-setup default, so its table is created on the fly
		if cfg.Storage.Driver == config.StorageDriverSqlite {
			if err := AutoMigrate(db); err != nil {
				sqlDB.Close()
				return nil, noop, fmt.Errorf("migrating sqlite: %w", err)
			}
		}

		return NewRepository(db, logger).KV, sqlDB.Close, nil
	}

	return nil, noop, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}
