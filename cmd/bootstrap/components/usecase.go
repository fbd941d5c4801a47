package components

import (
	"log/slog"
	"time"

	"queueless/internal/domain/queue"
	"queueless/internal/domain/timeslot"
	"queueless/internal/pkg/clock"
	"queueless/internal/pkg/metrics"
	"queueless/internal/usecase"
	"queueless/internal/usecase/commands"
	"queueless/internal/usecase/queries"
	"queueless/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewBookingCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		func(store *queue.Store, registry *timeslot.Registry, clk clock.Clock) queries.QueueQueries {
			return queries.NewQueueQueries(store, registry, clk)
		},
		func(registry *timeslot.Registry) queries.DirectoryQueries {
			return queries.NewDirectoryQueries(registry)
		},
		queries.NewHistoryQueries,
		func(rs queries.AnalyticsReadStore, loc *time.Location) queries.AnalyticsQueries {
			return queries.NewAnalyticsQueries(rs, loc)
		},
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewBookingCommands(
	registry *timeslot.Registry,
	sequencer *queue.Sequencer,
	store *queue.Store,
	estimator *queue.Estimator,
	publisher shared.EventPublisher,
	clk clock.Clock,
	logger *slog.Logger,
	m *metrics.Metrics,
) commands.BookingCommands {
	return commands.NewBookingUseCase(commands.BookingDeps{
		Registry:  registry,
		Sequencer: sequencer,
		Store:     store,
		Estimator: estimator,
		Publisher: publisher,
		Clock:     clk,
		Logger:    logger,
		Metrics:   m,
	})
}
