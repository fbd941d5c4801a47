package bootstrap

import (
	"context"
	"log/slog"

	"queueless/internal/infra/notifier"
	"queueless/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedisClient,
	),
)

// NewRedisClient returns nil when notifications are disabled.
func NewRedisClient(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*redis.Client, error) {
	if !cfg.Redis.Enabled {
		logger.Info("redis notifications disabled")
		return nil, nil
	}

	client, cleanup, err := notifier.Connect(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return client, nil
}
