package repository

import (
	"context"
	"time"

	"github.com/comite-bacias/presenca/internal/attendance"
	constant "github.com/comite-bacias/presenca/internal/constant"
	"github.com/comite-bacias/presenca/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRepository stores each collection as one row of kv_entries. It satisfies attendance.Port.
type KVRepository struct {
	*baseRepository
}

var _ attendance.Port = (*KVRepository)(nil)

func (kr KVRepository) Get(ctx context.Context, key attendance.Collection) ([]byte, error) {
	return kr.GetTx(ctx, nil, key)
}

func (kr KVRepository) GetTx(ctx context.Context, tx *gorm.DB, key attendance.Collection) ([]byte, error) {
	kr.logger.Debugf("Get kv entry with key: %s \n", key)

	db := kr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	// Find instead of First so that a missing key is not logged as an error
	var entries []model.KVEntry
	if err := db.WithContext(ctx).Model(&model.KVEntry{}).Where(model.KVEntry{Key: string(key)}).Limit(1).Find(&entries).Error; err != nil {
		return nil, err
	}

	if len(entries) == 0 {
		return nil, nil
	}
	return entries[0].Value, nil
}

func (kr KVRepository) Put(ctx context.Context, key attendance.Collection, data []byte) error {
	return kr.PutTx(ctx, nil, key, data)
}

func (kr KVRepository) PutTx(ctx context.Context, tx *gorm.DB, key attendance.Collection, data []byte) error {
	kr.logger.Debugf("Put kv entry with key: %s, size: %d bytes \n", key, len(data))

	db := kr.getDB(tx)
	ctx, cancel := context.WithTimeout(ctx, constant.QUERY_TIMEOUT_DURATION)
	defer cancel()

	entry := model.KVEntry{
		Key:       string(key),
		Value:     data,
		UpdatedAt: time.Now().UTC(),
	}

	return db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
}
