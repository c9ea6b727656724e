package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"formbuilder-server/cmd/config"
	"formbuilder-server/internal/forms/derived"
	"formbuilder-server/internal/forms/persistence"
	"formbuilder-server/internal/forms/usecases"
	"formbuilder-server/internal/infra/kv"
	"formbuilder-server/internal/infra/utils"
	"formbuilder-server/internal/logger"
)

func main() {
	cfg := config.LoadConfig()

	log, err := logger.New(cfg.General.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	redisConfig := kv.DefaultRedisConfig()
	redisConfig.Addr = cfg.Redis.Addr
	redisConfig.Password = cfg.Redis.Password
	redisConfig.DB = cfg.Redis.DB

	store, err := kv.Open(ctx, kv.Options{
		Backend:  kv.Backend(cfg.Store.Backend),
		DSN:      cfg.Store.DSN,
		CacheTTL: cfg.Store.CacheTTL,
		Redis:    redisConfig,
	})
	if err != nil {
		log.Errorw("opening store", "backend", cfg.Store.Backend, "error", err)
		os.Exit(1)
	}
	log.Debugw("store opened", "backend", cfg.Store.Backend, "namespace", cfg.Store.Namespace)

	cli := &app{
		schemas:   usecases.NewSchemaService(persistence.NewSchemaRepository(store, cfg.Store.Namespace)),
		evaluator: derived.NewEvaluator(utils.SystemClock()),
		log:       log,
		out:       os.Stdout,
	}

	err = cli.run(ctx, os.Args[1:])
	switch {
	case err == nil:
	case errors.Is(err, errUsage):
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
