package repository

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/comite-bacias/presenca/internal/attendance"
	badger "github.com/dgraph-io/badger/v4"
	"go.uber.org/zap"
)

// BadgerKV stores collections in an embedded badger database. An empty dir keeps it in memory.
type BadgerKV struct {
	db     *badger.DB
	logger *zap.SugaredLogger
}

var _ attendance.Port = (*BadgerKV)(nil)

// badger wants Warningf, zap calls it Warnf
type badgerLogger struct {
	*zap.SugaredLogger
}

func (l badgerLogger) Warningf(template string, args ...interface{}) {
	l.Warnf(template, args...)
}

func NewBadgerKV(dir string, logger *zap.SugaredLogger) (*BadgerKV, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	opts := badger.DefaultOptions(dir).
		WithLogger(badgerLogger{logger}).
		WithLoggingLevel(badger.WARNING)

	if dir == "" {
		opts = opts.WithInMemory(true)
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}

	return &BadgerKV{db: db, logger: logger}, nil
}

func (b *BadgerKV) Get(_ context.Context, key attendance.Collection) ([]byte, error) {
	b.logger.Debugf("Get badger key: %s", key)

	var value []byte
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (b *BadgerKV) Put(_ context.Context, key attendance.Collection, data []byte) error {
	b.logger.Debugf("Put badger key: %s, size: %d bytes", key, len(data))

	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
}

func (b *BadgerKV) Close() error {
	return b.db.Close()
}
