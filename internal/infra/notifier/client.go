package notifier

import (
	"context"
	"time"

	"queueless/internal/pkg/config"
	"queueless/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

const connectTimeout = 5 * time.Second

func Connect(cfg config.RedisConfig) (*redis.Client, func(), error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, nil, errs.Wrapf(err, "failed to connect to redis at %s", cfg.Addr)
	}

	cleanup := func() {
		_ = client.Close()
	}
	return client, cleanup, nil
}
