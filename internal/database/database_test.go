package database

import (
	"path/filepath"
	"testing"

	"github.com/comite-bacias/presenca/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConnectSqlite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "presenca.sqlite")

	db, err := Connect(config.StorageConfig{Driver: config.StorageDriverSqlite, SqlitePath: path}, config.DatabaseConfig{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	defer sqlDB.Close()
	assert.NoError(t, sqlDB.Ping())
}

func TestConnectInMemorySqlite(t *testing.T) {
	db, err := ConnectSqlite("")
	require.NoError(t, err)

	var one int
	require.NoError(t, db.Raw("SELECT 1").Scan(&one).Error)
	assert.Equal(t, 1, one)
}

func TestConnectRejectsNonSQLDrivers(t *testing.T) {
	for _, d := range []config.StorageDriver{config.StorageDriverMemory, config.StorageDriverBadger, "redis"} {
		_, err := Connect(config.StorageConfig{Driver: d}, config.DatabaseConfig{})
		assert.Error(t, err, d)
	}
}
