package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"queueless/internal/domain/timeslot"
	"queueless/internal/pkg/clock"
	"queueless/internal/pkg/metrics"
)

type DayEvictor interface {
	Evict(cutoff timeslot.Day) int
}

// DayJanitor drops per-day queue state older than the retention window.
type DayJanitor struct {
	store      DayEvictor
	sequencer  DayEvictor
	registry   *timeslot.Registry
	clock      clock.Clock
	retainDays int
	metrics    *metrics.Metrics
	logger     *slog.Logger
	periodic   *periodic

	mu      sync.Mutex
	lastDay timeslot.Day
}

func NewDayJanitor(
	store DayEvictor,
	sequencer DayEvictor,
	registry *timeslot.Registry,
	clk clock.Clock,
	retainDays int,
	interval time.Duration,
	m *metrics.Metrics,
	logger *slog.Logger,
) *DayJanitor {
	if logger == nil {
		logger = slog.Default()
	}
	if retainDays < 0 {
		retainDays = 0
	}
	j := &DayJanitor{
		store:      store,
		sequencer:  sequencer,
		registry:   registry,
		clock:      clk,
		retainDays: retainDays,
		metrics:    m,
		logger:     logger,
	}
	j.periodic = &periodic{name: "day_janitor", interval: interval, fn: j.Sweep, logger: logger}
	return j
}

func (j *DayJanitor) Start(ctx context.Context) error {
	return j.periodic.start(ctx, false)
}

func (j *DayJanitor) Stop(ctx context.Context) error {
	return j.periodic.stop(ctx)
}

// Sweep evicts days before today minus the retention window. Queue depth
// gauges are reset when the day rolls over.
func (j *DayJanitor) Sweep(_ context.Context) error {
	today := timeslot.DayOf(j.clock.Now(), j.registry.Location())
	cutoff := today.AddDays(-j.retainDays)

	days := j.store.Evict(cutoff)
	counters := j.sequencer.Evict(cutoff)

	j.mu.Lock()
	rolled := !j.lastDay.IsZero() && j.lastDay != today
	j.lastDay = today
	j.mu.Unlock()

	if rolled {
		for _, id := range j.registry.DepartmentIDs() {
			j.metrics.ForgetQueue(id.String())
		}
	}

	if days > 0 || counters > 0 {
		j.logger.Info("evicted expired queue days", "cutoff", cutoff.String(), "days", days, "counters", counters)
	}
	return nil
}
