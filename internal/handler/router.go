package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"queueless/internal/domain/user"
	"queueless/internal/handler/api"
	"queueless/internal/handler/middleware"
	"queueless/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Queue       *api.QueueHandler
	Departments *api.DepartmentHandler
	History     *api.HistoryHandler
	Analytics   *api.AnalyticsHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *slog.Logger,
	handlers Handlers,
	authMiddleware *middleware.AuthMiddleware,
	gatherer prometheus.Gatherer,
) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, handlers, authMiddleware, gatherer)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware, gatherer prometheus.Gatherer) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	operator := authMiddleware.RequireRoleAtLeast(user.RoleOperator)
	admin := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		tokens := apiGroup.Group("/queue/departments/:departmentId/tokens")
		addRoutes(tokens, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Queue.Book},
			{Method: http.MethodGet, Path: "", Handler: h.Queue.List, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodGet, Path: "/:number", Handler: h.Queue.Get},
			{Method: http.MethodPost, Path: "/:number/serve", Handler: h.Queue.Serve, Mw: []gin.HandlerFunc{operator}},
			{Method: http.MethodPost, Path: "/:number/miss", Handler: h.Queue.Miss, Mw: []gin.HandlerFunc{operator}},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/departments", Handler: h.Departments.List},
			{Method: http.MethodGet, Path: "/tokens/history", Handler: h.History.List},
			{Method: http.MethodGet, Path: "/admin/analytics", Handler: h.Analytics.Get, Mw: []gin.HandlerFunc{admin}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
