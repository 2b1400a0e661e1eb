package main

import (
	"context"
	"fmt"

	"github.com/mmynk/billease/internal/config"
	"github.com/mmynk/billease/internal/storage"
	"github.com/mmynk/billease/internal/storage/memory"
	"github.com/mmynk/billease/internal/storage/postgres"
	"github.com/mmynk/billease/internal/storage/redis"
	"github.com/mmynk/billease/internal/storage/sqlite"
)

// openStore creates the storage backend selected by cfg.StorageDriver.
func openStore(ctx context.Context, cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageDriver {
	case config.DriverSQLite:
		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverPostgres:
		store, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverRedis:
		store, err := redis.New(ctx, redis.Options{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.RedisPrefix,
		})
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.DriverMemory:
		return memory.New(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
