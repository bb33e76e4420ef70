package store

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by KV.Get when the key has never been set.
var ErrNotFound = errors.New("key not found")

// KV is the byte store backing the persistence adapter. Implementations:
// MemoryKV, the SQLite DB, and BadgerKV.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Close() error
}

// MemoryKV is a map-backed KV for tests and ephemeral runs.
type MemoryKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryKV creates an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

func (m *MemoryKV) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryKV) Set(key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

func (m *MemoryKV) Close() error { return nil }
