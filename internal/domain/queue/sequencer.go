package queue

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"queueless/internal/domain/timeslot"
)

// HighWaterMarkSource reports the highest token number already issued for a
// key, so numbering survives a restart.
type HighWaterMarkSource interface {
	HighWaterMark(ctx context.Context, key DayKey) (int64, error)
}

// Sequencer hands out strictly increasing token numbers per key. Numbers
// consumed by rejected bookings are never reissued.
type Sequencer struct {
	mu       sync.Mutex
	counters map[DayKey]*counter
	source   HighWaterMarkSource
}

type counter struct {
	mu     sync.Mutex
	seeded atomic.Bool
	last   atomic.Int64
}

// NewSequencer accepts a nil source, in which case every key starts at 1.
func NewSequencer(source HighWaterMarkSource) *Sequencer {
	return &Sequencer{
		counters: make(map[DayKey]*counter),
		source:   source,
	}
}

func (s *Sequencer) Next(ctx context.Context, key DayKey) (int64, error) {
	c := s.counterFor(key)
	if err := c.seed(ctx, key, s.source); err != nil {
		return 0, err
	}
	return c.last.Add(1), nil
}

// Last returns the most recently issued number for key, or 0.
func (s *Sequencer) Last(key DayKey) int64 {
	s.mu.Lock()
	c, ok := s.counters[key]
	s.mu.Unlock()
	if !ok {
		return 0
	}
	return c.last.Load()
}

// Evict forgets counters of days before cutoff and returns how many were removed.
func (s *Sequencer) Evict(cutoff timeslot.Day) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key := range s.counters {
		if key.Day.Before(cutoff) {
			delete(s.counters, key)
			removed++
		}
	}
	return removed
}

func (s *Sequencer) counterFor(key DayKey) *counter {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.counters[key]
	if !ok {
		c = &counter{}
		s.counters[key] = c
	}
	return c
}

// seed runs at most once successfully per counter. A failed seed is retried
// by the next caller.
func (c *counter) seed(ctx context.Context, key DayKey, source HighWaterMarkSource) error {
	if c.seeded.Load() {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seeded.Load() {
		return nil
	}
	if source != nil {
		hw, err := source.HighWaterMark(ctx, key)
		if err != nil {
			return fmt.Errorf("seed sequence %s: %w", key, err)
		}
		c.last.Store(hw)
	}
	c.seeded.Store(true)
	return nil
}
