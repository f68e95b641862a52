package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/comite-bacias/presenca/internal/attendance"
	"github.com/comite-bacias/presenca/internal/config"
	"github.com/comite-bacias/presenca/internal/database"
	"github.com/comite-bacias/presenca/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newSqliteKV(t *testing.T) *KVRepository {
	t.Helper()

	db, err := database.ConnectSqlite(filepath.Join(t.TempDir(), "kv.sqlite"))
	require.NoError(t, err)
	require.NoError(t, AutoMigrate(db))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return NewRepository(db, zap.NewNop().Sugar()).KV
}

func newBadgerKV(t *testing.T) *BadgerKV {
	t.Helper()

	kv, err := NewBadgerKV("", nil)
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })
	return kv
}

func TestPortContract(t *testing.T) {
	ports := map[string]func(t *testing.T) attendance.Port{
		"memory": func(t *testing.T) attendance.Port { return NewMemoryKV() },
		"sqlite": func(t *testing.T) attendance.Port { return newSqliteKV(t) },
		"badger": func(t *testing.T) attendance.Port { return newBadgerKV(t) },
	}

	for name, newPort := range ports {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			port := newPort(t)

			got, err := port.Get(ctx, attendance.CollectionRecords)
			require.NoError(t, err)
			assert.Nil(t, got)

			require.NoError(t, port.Put(ctx, attendance.CollectionRecords, []byte(`[{"id":"1"}]`)))
			require.NoError(t, port.Put(ctx, attendance.CollectionRecords, []byte(`[{"id":"1"},{"id":"2"}]`)))

			got, err = port.Get(ctx, attendance.CollectionRecords)
			require.NoError(t, err)
			assert.Equal(t, `[{"id":"1"},{"id":"2"}]`, string(got))

			got, err = port.Get(ctx, attendance.CollectionSignatures)
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestStoreRoundTripThroughSqlite(t *testing.T) {
	ctx := context.Background()
	kv := newSqliteKV(t)

	s := attendance.NewStore(kv)
	r, change, err := s.CreateRecord("ATA 01/2025")
	require.NoError(t, err)
	require.NoError(t, s.Persist(ctx, change))

	_, change, err = s.SubmitSignature(r.ID, model.SignatureFields{
		SignerName: "Maria Silva", TaxID: "12345678901", Email: "m@x.com", Organization: "Secretaria",
	})
	require.NoError(t, err)
	require.NoError(t, s.Persist(ctx, change))

	reloaded := attendance.NewStore(kv)
	require.NoError(t, reloaded.Load(ctx))
	assert.Equal(t, s.ListRecords(), reloaded.ListRecords())
	assert.Equal(t, s.ListSignatures(""), reloaded.ListSignatures(""))

	var count int64
	require.NoError(t, kv.db.Model(&model.KVEntry{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestBadgerPersistsOnDisk(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	kv, err := NewBadgerKV(dir, nil)
	require.NoError(t, err)
	require.NoError(t, kv.Put(ctx, attendance.CollectionSignatures, []byte("[]")))
	require.NoError(t, kv.Close())

	kv, err = NewBadgerKV(dir, nil)
	require.NoError(t, err)
	defer kv.Close()

	got, err := kv.Get(ctx, attendance.CollectionSignatures)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(got))
}

func TestNewPort(t *testing.T) {
	logger := zap.NewNop().Sugar()

	tests := []struct {
		name    string
		storage config.StorageConfig
		wantErr bool
	}{
		{"Memory", config.StorageConfig{Driver: config.StorageDriverMemory}, false},
		{"Sqlite", config.StorageConfig{Driver: config.StorageDriverSqlite, SqlitePath: filepath.Join(t.TempDir(), "p.sqlite")}, false},
		{"Badger", config.StorageConfig{Driver: config.StorageDriverBadger, BadgerDir: t.TempDir()}, false},
		{"Unknown", config.StorageConfig{Driver: "redis"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			port, closeFn, err := NewPort(&config.Config{Storage: tt.storage}, logger)
			require.NotNil(t, closeFn)
			defer closeFn()

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			require.NoError(t, port.Put(context.Background(), attendance.CollectionRecords, []byte("[]")))
			got, err := port.Get(context.Background(), attendance.CollectionRecords)
			require.NoError(t, err)
			assert.Equal(t, "[]", string(got))
		})
	}
}
