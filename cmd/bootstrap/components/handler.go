package components

import (
	"queueless/internal/handler"
	"queueless/internal/handler/api"
	"queueless/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewQueueHandler,
		api.NewDepartmentHandler,
		api.NewHistoryHandler,
		api.NewAnalyticsHandler,
		func(q *api.QueueHandler, d *api.DepartmentHandler, h *api.HistoryHandler, a *api.AnalyticsHandler) handler.Handlers {
			return handler.Handlers{Queue: q, Departments: d, History: h, Analytics: a}
		},
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
