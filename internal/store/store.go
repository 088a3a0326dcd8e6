// Package store provides the key-value persistence layer for lifedash.
//
// A Store holds opaque string values under string keys. Callers own the
// serialization format. Implementations are synchronous and meant for a
// single caller; concurrent writers get last-writer-wins.
package store

import "sync"

// Well-known keys.
const (
	KeyRecord  = "lifeDashData"
	KeyTheme   = "lifeDash-theme"
	KeyHistory = "lifeDash-history"
)

// Store is the get/set contract the dashboard core depends on.
// Errors are storage-medium failures only; a missing key is ok=false.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
}

// Memory is an in-process Store, used by tests and dry runs.
type Memory struct {
	mu   sync.Mutex
	data map[string]string
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

// Get implements Store.
func (m *Memory) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

// Set implements Store.
func (m *Memory) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
