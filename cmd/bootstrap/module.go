package bootstrap

import (
	"queueless/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	MetricsModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.PersistenceModule,
	components.QueueModule,
	components.UseCaseModule,
	components.WorkerModule,
	components.HandlerModule,
)
