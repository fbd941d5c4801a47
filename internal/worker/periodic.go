package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

var ErrAlreadyRunning = errors.New("worker already running")

// periodic runs fn every interval until stopped. The first run happens
// synchronously inside start so callers can fail fast.
type periodic struct {
	name     string
	interval time.Duration
	fn       func(ctx context.Context) error
	logger   *slog.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

func (p *periodic) start(ctx context.Context, runFirst bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.running {
		return ErrAlreadyRunning
	}

	if runFirst {
		if err := p.fn(ctx); err != nil {
			return err
		}
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.running = true

	p.wg.Add(1)
	go p.loop(loopCtx)
	p.logger.Info("worker started", "worker", p.name, "interval", p.interval)
	return nil
}

func (p *periodic) stop(ctx context.Context) error {
	p.mu.Lock()
	if !p.running {
		p.mu.Unlock()
		return nil
	}
	p.running = false
	p.cancel()
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		p.logger.Info("worker stopped", "worker", p.name)
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *periodic) loop(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := p.fn(ctx); err != nil && !errors.Is(err, context.Canceled) {
				p.logger.Error("worker run failed", "worker", p.name, "error", err)
			}
		}
	}
}
