package main

import (
	"github.com/comite-bacias/presenca/internal/config"
	"github.com/comite-bacias/presenca/internal/database"
	"github.com/comite-bacias/presenca/internal/env"
	"github.com/comite-bacias/presenca/internal/repository"
	"go.uber.org/zap"
)

func init() {
	env.LoadEnv()
}

// Creates the key/value table for the sqlite and postgres storage drivers.
func main() {
	logger := zap.Must(zap.NewDevelopment()).Sugar()
	defer logger.Sync()
	cfg := config.GetConfig()

	logger.Infof("Storage driver: %s", cfg.Storage.Driver)

	db, err := database.Connect(cfg.Storage, cfg.DB)
	if err != nil {
		logger.Panic(err)
	}

	if err := repository.AutoMigrate(db); err != nil {
		logger.Panic(err)
	}
	logger.Info("Migration complete")
}
