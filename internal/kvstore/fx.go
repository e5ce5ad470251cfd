package kvstore

import (
	"context"

	redis "github.com/redis/go-redis/v9"
	"github.com/streamrent/streamrent/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New builds the persistence backend selected by STORAGE_TYPE.
func New(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (Store, error) {
	log = log.Named("kvstore")

	if cfg.StorageType == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			},
			OnStop: func(ctx context.Context) error {
				_ = ctx
				return client.Close()
			},
		})
		log.Info("using redis backend", zap.String("addr", cfg.RedisAddr))
		return NewRedisStore(client)
	}

	dialector, err := Dialect(cfg)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			_ = ctx
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})
	log.Info("using sql backend", zap.String("type", cfg.StorageType))
	return NewGormStore(db)
}

var Module = fx.Module("kvstore",
	fx.Provide(New),
)
