package kv

import (
	"context"
	"fmt"
	"formbuilder-server/internal/infra/cache"
	"formbuilder-server/internal/infra/sql"
	"log/slog"
	"time"
)

type Backend string

const (
	BackendMemory   Backend = "memory"
	BackendSQLite   Backend = "sqlite"
	BackendPostgres Backend = "postgres"
	BackendRedis    Backend = "redis"
)

type Options struct {
	Backend Backend
	// DSN is the sqlite file path or the postgres connection string. An
	// empty sqlite DSN opens an in-memory database.
	DSN      string
	CacheTTL time.Duration
	Redis    RedisConfig
}

// Open builds the configured store. Remote backends are wrapped in a
// read-through cache when CacheTTL is positive.
func Open(ctx context.Context, opts Options) (Store, error) {
	var (
		store Store
		err   error
	)

	switch opts.Backend {
	case BackendMemory, "":
		return NewMemoryStore(), nil
	case BackendSQLite:
		store, err = openSQLite(opts.DSN)
	case BackendPostgres:
		store, err = openPostgres(opts.DSN)
	case BackendRedis:
		store, err = openRedis(ctx, opts.Redis)
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
	if err != nil {
		return nil, err
	}

	slog.Info("store opened", slog.String("backend", string(opts.Backend)))

	if opts.CacheTTL <= 0 {
		return store, nil
	}

	c, err := cache.New(nil)
	if err != nil {
		return nil, fmt.Errorf("creating cache: %w", err)
	}
	return NewCachedStore(store, c, opts.CacheTTL), nil
}

func openSQLite(path string) (Store, error) {
	var (
		orm sql.ORM
		err error
	)
	if path == "" {
		orm, err = sql.NewMemoryORM()
	} else {
		orm, err = sql.NewSQLiteORM(path)
	}
	if err != nil {
		return nil, err
	}
	return NewSQLStore(orm)
}

func openPostgres(dsn string) (Store, error) {
	orm, err := sql.NewPostgresORM(dsn)
	if err != nil {
		return nil, err
	}
	return NewSQLStore(orm)
}

func openRedis(ctx context.Context, config RedisConfig) (Store, error) {
	client, err := NewRedisClient(ctx, config)
	if err != nil {
		return nil, err
	}
	return NewRedisStore(client), nil
}
