// Package memory implements an in-memory slot store for development and testing.
package memory

import (
	"context"
	"sync"

	"storefront/internal/domain"
)

// DB implements an in-memory key-value slot store.
type DB struct {
	mu    sync.Mutex
	slots map[string][]byte
}

// New creates a new in-memory store.
func New() *DB {
	return &DB{
		slots: make(map[string][]byte),
	}
}

// Ensure interfaces are met.
var _ domain.SlotStore = (*DB)(nil)

// Get returns a copy of the value stored under key.
func (db *DB) Get(ctx context.Context, key string) ([]byte, bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	v, ok := db.slots[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Put stores a copy of value under key, replacing any previous value.
func (db *DB) Put(ctx context.Context, key string, value []byte) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.slots[key] = append([]byte(nil), value...)
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (db *DB) Delete(ctx context.Context, key string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	delete(db.slots, key)
	return nil
}

// Len returns the number of stored slots.
func (db *DB) Len() int {
	db.mu.Lock()
	defer db.mu.Unlock()
	return len(db.slots)
}
