package bootstrap

import (
	"time"

	"queueless/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		NewQueueLocation,
	),
)

// NewQueueLocation is the zone that defines calendar days for every queue.
func NewQueueLocation(cfg config.Config) (*time.Location, error) {
	return cfg.Queue.Location()
}
