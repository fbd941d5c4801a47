package dispatch

import (
	"context"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"queueless/internal/domain/queue"
	"queueless/internal/pkg/backoff"
	"queueless/internal/pkg/errs"
	"queueless/internal/pkg/metrics"
)

const (
	kindTransition = "transition"
	kindEstimate   = "estimate"
)

var ErrStopped = errs.New("dispatcher stopped")

// Sink receives queue events. Implementations must tolerate redelivery of
// the same event.
type Sink interface {
	RecordTransition(ctx context.Context, event queue.TransitionEvent) error
	RecordEstimate(ctx context.Context, update queue.EstimateUpdate) error
}

type NamedSink struct {
	Name string
	Sink Sink
}

type Config struct {
	Workers     int
	Buffer      int
	MaxAttempts int
	BaseBackoff time.Duration
}

type envelope struct {
	transition *queue.TransitionEvent
	estimate   *queue.EstimateUpdate
}

// Dispatcher delivers events to every sink off the request path. Events of
// one day queue always land on the same worker, so they reach each sink in
// publish order.
type Dispatcher struct {
	cfg     Config
	sinks   []NamedSink
	logger  *slog.Logger
	metrics *metrics.Metrics

	partitions []chan envelope
	wg         sync.WaitGroup

	mu      sync.RWMutex
	started bool
	closed  bool

	runCtx context.Context
	cancel context.CancelFunc
}

func New(cfg Config, sinks []NamedSink, logger *slog.Logger, m *metrics.Metrics) *Dispatcher {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.Buffer < 0 {
		cfg.Buffer = 0
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	if logger == nil {
		logger = slog.Default()
	}

	partitions := make([]chan envelope, cfg.Workers)
	for i := range partitions {
		partitions[i] = make(chan envelope, cfg.Buffer)
	}
	runCtx, cancel := context.WithCancel(context.Background())

	return &Dispatcher{
		cfg:        cfg,
		sinks:      sinks,
		logger:     logger,
		metrics:    m,
		partitions: partitions,
		runCtx:     runCtx,
		cancel:     cancel,
	}
}

func (d *Dispatcher) Start(_ context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return ErrStopped
	}
	if d.started {
		return nil
	}
	d.started = true

	for i, ch := range d.partitions {
		d.wg.Add(1)
		go d.run(i, ch)
	}
	d.logger.Info("event dispatcher started", "workers", len(d.partitions), "sinks", len(d.sinks))
	return nil
}

// Stop refuses new events, drains what is buffered and waits for the
// workers. When ctx expires first, in-flight retries are abandoned.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	for _, ch := range d.partitions {
		close(ch)
	}
	started := d.started
	d.mu.Unlock()

	if !started {
		d.cancel()
		return nil
	}

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.cancel()
		d.logger.Info("event dispatcher stopped")
		return nil
	case <-ctx.Done():
		d.cancel()
		<-done
		return errs.Wrap(ctx.Err(), "event dispatcher drain interrupted")
	}
}

func (d *Dispatcher) PublishTransition(ctx context.Context, event queue.TransitionEvent) {
	d.enqueue(ctx, event.Token.Key(), envelope{transition: &event}, kindTransition)
}

func (d *Dispatcher) PublishEstimates(ctx context.Context, updates []queue.EstimateUpdate) {
	for i := range updates {
		upd := updates[i]
		d.enqueue(ctx, upd.Key, envelope{estimate: &upd}, kindEstimate)
	}
}

func (d *Dispatcher) enqueue(ctx context.Context, key queue.DayKey, env envelope, kind string) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(kind, key, ErrStopped)
		return
	}

	select {
	case d.partitions[d.partition(key)] <- env:
	case <-ctx.Done():
		d.drop(kind, key, ctx.Err())
	}
}

func (d *Dispatcher) partition(key queue.DayKey) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key.String()))
	return int(h.Sum32() % uint32(len(d.partitions)))
}

func (d *Dispatcher) run(id int, ch <-chan envelope) {
	defer d.wg.Done()
	for env := range ch {
		for _, s := range d.sinks {
			d.deliver(id, s, env)
		}
	}
}

func (d *Dispatcher) deliver(worker int, s NamedSink, env envelope) {
	kind, key := kindTransition, queue.DayKey{}
	call := func(ctx context.Context) error {
		return s.Sink.RecordTransition(ctx, *env.transition)
	}
	if env.transition != nil {
		key = env.transition.Token.Key()
	} else {
		kind, key = kindEstimate, env.estimate.Key
		call = func(ctx context.Context) error {
			return s.Sink.RecordEstimate(ctx, *env.estimate)
		}
	}

	var err error
	for attempt := 0; attempt < d.cfg.MaxAttempts; attempt++ {
		if err = call(d.runCtx); err == nil {
			return
		}
		if attempt == d.cfg.MaxAttempts-1 {
			break
		}
		d.logger.Warn("event delivery failed, retrying",
			"sink", s.Name, "kind", kind, "key", key.String(), "attempt", attempt+1, "worker", worker, "error", err)
		if sleepErr := backoff.Sleep(d.runCtx, backoff.Exponential(attempt, d.cfg.BaseBackoff)); sleepErr != nil {
			err = errs.Wrap(err, "delivery abandoned on shutdown")
			break
		}
	}
	d.drop(kind, key, errs.Wrapf(err, "sink %s", s.Name))
}

func (d *Dispatcher) drop(kind string, key queue.DayKey, err error) {
	d.logger.Error("dropping queue event",
		"kind", kind, "key", key.String(), "error", err)
	d.metrics.DispatchDropped(kind)
}
