package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/credkit/pkg/config"
	"github.com/dmitrymomot/credkit/pkg/httpserver"
	"github.com/dmitrymomot/credkit/pkg/logger"
	"github.com/dmitrymomot/credkit/pkg/mongo"
	"github.com/dmitrymomot/credkit/pkg/pg"
	"github.com/dmitrymomot/credkit/pkg/redis"
	"github.com/dmitrymomot/credkit/svc/auth"
	"github.com/dmitrymomot/credkit/svc/userstore"
)

// userStore is an opened backend with its readiness check and cleanup.
type userStore struct {
	auth.Store
	ready httpserver.Check
	close func()
}

// openStore connects the backend named by kind. Backend settings are read
// from the environment only for the selected kind.
func openStore(ctx context.Context, kind string, log *slog.Logger) (*userStore, error) {
	log = log.With(logger.Component("userstore"), slog.String("driver", kind))

	switch kind {
	case storeMemory:
		log.Warn("using in-memory user store, data is lost on restart")
		return &userStore{
			Store: userstore.NewMemory(),
			ready: func(context.Context) error { return nil },
			close: func() {},
		}, nil

	case storeMongo:
		var cfg mongo.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		client, err := mongo.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		store := userstore.NewMongo(client.Database(cfg.Database))
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.WithoutCancel(ctx))
			return nil, err
		}
		log.Info("connected", slog.String("database", cfg.Database))
		return &userStore{
			Store: store,
			ready: mongo.Healthcheck(client),
			close: func() {
				if err := client.Disconnect(context.Background()); err != nil {
					log.Error("failed to disconnect", logger.Error(err))
				}
			},
		}, nil

	case storePostgres:
		var cfg pg.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := userstore.MigratePostgres(ctx, pool, cfg, log); err != nil {
			pool.Close()
			return nil, err
		}
		log.Info("connected")
		return &userStore{
			Store: userstore.NewPostgres(pool),
			ready: pg.Healthcheck(pool),
			close: pool.Close,
		}, nil

	case storeRedis:
		var cfg redis.Config
		if err := config.Load(&cfg); err != nil {
			return nil, err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		log.Info("connected", slog.String("key_prefix", cfg.KeyPrefix))
		return &userStore{
			Store: userstore.NewRedis(client, cfg.KeyPrefix),
			ready: redis.Healthcheck(client),
			close: func() {
				if err := client.Close(); err != nil {
					log.Error("failed to close", logger.Error(err))
				}
			},
		}, nil
	}

	return nil, fmt.Errorf("unknown USER_STORE %q", kind)
}
