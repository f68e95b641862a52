package repository

import (
	"context"
	"sync"

	"github.com/comite-bacias/presenca/internal/attendance"
)

// MemoryKV keeps collections in process memory. Nothing survives a restart.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[attendance.Collection][]byte
}

var _ attendance.Port = (*MemoryKV)(nil)

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[attendance.Collection][]byte)}
}

func (m *MemoryKV) Get(_ context.Context, key attendance.Collection) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, nil
	}
	return append([]byte(nil), v...), nil
}

func (m *MemoryKV) Put(_ context.Context, key attendance.Collection, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[key] = append([]byte(nil), data...)
	return nil
}
