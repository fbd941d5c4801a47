package components

import (
	"queueless/internal/infra/pgquery"
	"queueless/internal/infra/readstore"
	"queueless/internal/infra/repository"
	"queueless/internal/infra/uow"
	"queueless/internal/usecase/queries"
	"queueless/internal/worker"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Directory
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.DirectoryReadQueries)),
		),
		fx.Annotate(
			readstore.NewDirectoryReadStore,
			fx.As(new(worker.DirectoryLoader)),
		),
		// History
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TokenHistoryReadQueries)),
		),
		fx.Annotate(
			readstore.NewTokenHistoryReadStore,
			fx.As(new(queries.TokenHistoryReadStore)),
		),
		// Analytics
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.AnalyticsReadQueries)),
		),
		fx.Annotate(
			readstore.NewAnalyticsReadStore,
			fx.As(new(queries.AnalyticsReadStore)),
		),
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		// UnitOfWork
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(uow.UnitOfWork)),
		),
		// Token
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(repository.TokenWriteQueries)),
		),
		repository.NewTokenRepository,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgquery.Queries {
	return pgquery.New()
}

func NewDBTX(pool *pgxpool.Pool) pgquery.DBTX {
	return pool
}
