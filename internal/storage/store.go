// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
)

// ErrClosed is returned by stores used after Close.
var ErrClosed = errors.New("store is closed")

//go:generate mockgen -destination=mocks/mock_store.go -package=mocks -source=store.go Store

// Store is a flat key-value store holding serialized ledger collections.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, Redis,
// in-memory) without changing the ledger.
type Store interface {
	// Get returns the value stored under key.
	// Returns nil and no error when the key has never been written.
	Get(ctx context.Context, key string) ([]byte, error)

	// PutAll writes every entry atomically: either all keys are updated or none are.
	PutAll(ctx context.Context, entries map[string][]byte) error

	// Close releases any resources held by the store.
	Close() error
}
