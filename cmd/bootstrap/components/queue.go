package components

import (
	"context"
	"log/slog"
	"time"

	"queueless/internal/domain/queue"
	"queueless/internal/domain/timeslot"
	"queueless/internal/infra/dispatch"
	"queueless/internal/infra/notifier"
	"queueless/internal/infra/repository"
	"queueless/internal/pkg/clock"
	"queueless/internal/pkg/config"
	"queueless/internal/pkg/metrics"
	"queueless/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var QueueModule = fx.Module("queue",
	fx.Provide(
		clock.NewRealClock,
		timeslot.NewRegistry,
		queue.NewStore,
		func(repo *repository.TokenRepository) queue.HighWaterMarkSource { return repo },
		queue.NewSequencer,
		queue.NewEstimator,
		NewDispatchSinks,
		fx.Annotate(
			NewDispatcher,
			fx.As(new(shared.EventPublisher)),
		),
	),
)

// NewDispatchSinks lists the event consumers. The notifier joins only when
// redis is enabled.
func NewDispatchSinks(repo *repository.TokenRepository, client *redis.Client, cfg config.Config) []dispatch.NamedSink {
	sinks := []dispatch.NamedSink{{Name: "postgres", Sink: repo}}
	if client != nil {
		sinks = append(sinks, dispatch.NamedSink{Name: "redis", Sink: notifier.NewRedisNotifier(client, cfg.Redis)})
	}
	return sinks
}

func NewDispatcher(
	lc fx.Lifecycle,
	cfg config.Config,
	sinks []dispatch.NamedSink,
	logger *slog.Logger,
	m *metrics.Metrics,
) *dispatch.Dispatcher {
	d := dispatch.New(dispatch.Config{
		Workers:     cfg.Dispatch.Workers,
		Buffer:      cfg.Dispatch.Buffer,
		MaxAttempts: cfg.Dispatch.MaxAttempts,
		BaseBackoff: cfg.Dispatch.BaseBackoff,
	}, sinks, logger, m)

	lc.Append(fx.Hook{
		OnStart: d.Start,
		OnStop: func(ctx context.Context) error {
			ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return d.Stop(ctx)
		},
	})
	return d
}
