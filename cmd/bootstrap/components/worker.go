package components

import (
	"log/slog"

	"queueless/internal/domain/queue"
	"queueless/internal/domain/timeslot"
	"queueless/internal/pkg/clock"
	"queueless/internal/pkg/config"
	"queueless/internal/pkg/metrics"
	"queueless/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewRegistrySync,
		NewDayJanitor,
	),
	fx.Invoke(
		func(lc fx.Lifecycle, w *worker.RegistrySync) {
			lc.Append(fx.Hook{OnStart: w.Start, OnStop: w.Stop})
		},
		func(lc fx.Lifecycle, j *worker.DayJanitor) {
			lc.Append(fx.Hook{OnStart: j.Start, OnStop: j.Stop})
		},
	),
)

func NewRegistrySync(
	cfg config.Config,
	loader worker.DirectoryLoader,
	registry *timeslot.Registry,
	store *queue.Store,
	clk clock.Clock,
	logger *slog.Logger,
) *worker.RegistrySync {
	return worker.NewRegistrySync(loader, registry, store, clk, cfg.Queue.RegistryRefresh, logger)
}

func NewDayJanitor(
	cfg config.Config,
	store *queue.Store,
	sequencer *queue.Sequencer,
	registry *timeslot.Registry,
	clk clock.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) *worker.DayJanitor {
	return worker.NewDayJanitor(store, sequencer, registry, clk, cfg.Queue.RetainDays, cfg.Queue.EvictionInterval, m, logger)
}
