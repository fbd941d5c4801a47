package bootstrap

import (
	"queueless/internal/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		NewMetricsRegistry,
		fx.Annotate(
			func(r *prometheus.Registry) *prometheus.Registry { return r },
			fx.As(new(prometheus.Registerer)),
			fx.As(new(prometheus.Gatherer)),
		),
		metrics.New,
	),
)

func NewMetricsRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}
