// Package redis provides a Redis-backed implementation of the storage.Store interface.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/mmynk/billease/internal/storage"
)

// DefaultPrefix namespaces ledger keys in a shared Redis database.
const DefaultPrefix = "billease:"

var _ storage.Store = (*RedisStore)(nil)

// RedisStore implements storage.Store with one Redis string per key.
type RedisStore struct {
	client    redis.UniversalClient
	keyPrefix string
	owned     bool
}

// Options configures a RedisStore connection.
type Options struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// New connects to Redis and verifies the connection with PING.
func New(ctx context.Context, opts Options) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	store := NewWithClient(client, opts.KeyPrefix)
	store.owned = true
	return store, nil
}

// NewWithClient wraps a client managed by the caller. Close leaves it open.
func NewWithClient(client redis.UniversalClient, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = DefaultPrefix
	}
	return &RedisStore{client: client, keyPrefix: keyPrefix}
}

// Get retrieves the value for the given key.
// Returns nil, nil when the key does not exist.
func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, s.keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get: %w", err)
	}
	return val, nil
}

// PutAll writes every entry in a MULTI/EXEC transaction.
func (s *RedisStore) PutAll(ctx context.Context, entries map[string][]byte) error {
	if len(entries) == 0 {
		return nil
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for key, value := range entries {
			pipe.Set(ctx, s.keyPrefix+key, value, 0)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis put: %w", err)
	}
	return nil
}

// Close closes the client if the store created it.
func (s *RedisStore) Close() error {
	if !s.owned {
		return nil
	}
	return s.client.Close()
}
