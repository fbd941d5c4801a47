//go:build unit

package queue_test

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"queueless/internal/domain/queue"
	"queueless/internal/domain/timeslot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestStore_Enqueue(t *testing.T) {
	slotID := uuid.New()

	t.Run("capacity counts queued and served tokens", func(t *testing.T) {
		s := queue.NewStore()
		require.NoError(t, s.Enqueue(tokenFixture(1, slotID), 2))
		require.NoError(t, s.Enqueue(tokenFixture(2, slotID), 2))
		_, err := s.MarkServed(testKey, 1, at(9, 5))
		require.NoError(t, err)

		assert.ErrorIs(t, s.Enqueue(tokenFixture(3, slotID), 2), queue.ErrCapacityExceeded)
	})

	t.Run("missed tokens keep their capacity unit", func(t *testing.T) {
		s := queue.NewStore()
		require.NoError(t, s.Enqueue(tokenFixture(1, slotID), 1))
		_, err := s.MarkMissed(testKey, 1, at(9, 5))
		require.NoError(t, err)

		assert.ErrorIs(t, s.Enqueue(tokenFixture(2, slotID), 1), queue.ErrCapacityExceeded)
		assert.Equal(t, 1, s.Snapshot(testKey).Occupied[slotID])
	})

	t.Run("rejected number still counts as last issued", func(t *testing.T) {
		s := queue.NewStore()
		require.NoError(t, s.Enqueue(tokenFixture(1, slotID), 1))
		require.ErrorIs(t, s.Enqueue(tokenFixture(2, slotID), 1), queue.ErrCapacityExceeded)
		assert.Equal(t, int64(2), s.Snapshot(testKey).LastNumber)
	})

	t.Run("duplicate number", func(t *testing.T) {
		s := queue.NewStore()
		require.NoError(t, s.Enqueue(tokenFixture(1, slotID), 5))
		assert.ErrorIs(t, s.Enqueue(tokenFixture(1, slotID), 5), queue.ErrDuplicateToken)
	})

	t.Run("late admission keeps number order", func(t *testing.T) {
		s := queue.NewStore()
		require.NoError(t, s.Enqueue(tokenFixture(1, slotID), 5))
		require.NoError(t, s.Enqueue(tokenFixture(3, slotID), 5))
		require.NoError(t, s.Enqueue(tokenFixture(2, slotID), 5))

		snap := s.Snapshot(testKey)
		numbers := make([]int64, 0, len(snap.Queued))
		for _, tok := range snap.Queued {
			numbers = append(numbers, tok.Number())
		}
		assert.Equal(t, []int64{1, 2, 3}, numbers)

		pos, err := s.PositionOf(testKey, 3)
		require.NoError(t, err)
		assert.Equal(t, 2, pos)
	})
}

func TestStore_Complete(t *testing.T) {
	slotID := uuid.New()

	s := queue.NewStore()
	require.NoError(t, s.Enqueue(tokenFixture(1, slotID), 3))
	require.NoError(t, s.Enqueue(tokenFixture(2, slotID), 3))

	served, err := s.MarkServed(testKey, 1, at(9, 5))
	require.NoError(t, err)
	assert.Equal(t, queue.StatusServed, served.Status())
	assert.Equal(t, at(9, 5), served.CompletedAt())

	t.Run("terminal token cannot transition again", func(t *testing.T) {
		_, err := s.MarkMissed(testKey, 1, at(9, 6))
		assert.ErrorIs(t, err, queue.ErrInvalidTransition)
		_, err = s.MarkServed(testKey, 1, at(9, 6))
		assert.ErrorIs(t, err, queue.ErrInvalidTransition)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := s.MarkServed(testKey, 99, at(9, 6))
		assert.ErrorIs(t, err, queue.ErrTokenNotFound)
		_, err = s.MarkServed(queue.NewDayKey(uuid.New(), testDay), 1, at(9, 6))
		assert.ErrorIs(t, err, queue.ErrTokenNotFound)
	})

	t.Run("positions shift forward", func(t *testing.T) {
		pos, err := s.PositionOf(testKey, 2)
		require.NoError(t, err)
		assert.Equal(t, 0, pos)

		_, err = s.PositionOf(testKey, 1)
		assert.ErrorIs(t, err, queue.ErrNotQueued)
	})

	t.Run("counts", func(t *testing.T) {
		snap := s.Snapshot(testKey)
		assert.Equal(t, 1, snap.Served)
		assert.Equal(t, 0, snap.Missed)
		assert.Len(t, snap.Queued, 1)
		assert.Equal(t, 2, snap.Occupied[slotID])
	})
}

func TestStore_SlotInUse(t *testing.T) {
	slotID := uuid.New()
	s := queue.NewStore()
	require.NoError(t, s.Enqueue(tokenFixture(1, slotID), 1))
	_, err := s.MarkServed(testKey, 1, at(9, 5))
	require.NoError(t, err)

	assert.True(t, s.SlotInUse(slotID, testDay))
	assert.False(t, s.SlotInUse(uuid.New(), testDay))
	assert.False(t, s.SlotInUse(slotID, testDay.AddDays(1)))
}

// slotPace estimates a single slot opening at 09:00 with ten minutes per token.
func slotPace(slotID uuid.UUID) func(queue.DaySnapshot) map[int64]time.Time {
	return func(snap queue.DaySnapshot) map[int64]time.Time {
		out := map[int64]time.Time{}
		for i, tok := range snap.QueuedInSlot(slotID) {
			out[tok.Number()] = at(9, 0).Add(time.Duration(i) * 10 * time.Minute)
		}
		return out
	}
}

func TestStore_Reestimate(t *testing.T) {
	slotID := uuid.New()
	s := queue.NewStore()
	require.NoError(t, s.Enqueue(tokenFixture(1, slotID), 3))
	require.NoError(t, s.Enqueue(tokenFixture(2, slotID), 3))

	var published []queue.EstimateUpdate
	updates, err := s.Reestimate(testKey, at(8, 0), slotPace(slotID), func(snap queue.DaySnapshot, upd []queue.EstimateUpdate) {
		published = upd
		tok, ok := snap.QueuedToken(2)
		require.True(t, ok)
		assert.Equal(t, at(9, 10), tok.EstimatedServeTime())
	})
	require.NoError(t, err)
	require.Len(t, updates, 2)
	assert.Equal(t, updates, published)
	assert.Equal(t, 1, updates[1].Position)
	assert.Equal(t, at(8, 0), updates[1].ComputedAt)

	t.Run("unchanged estimates are not reported", func(t *testing.T) {
		updates, err := s.Reestimate(testKey, at(8, 1), slotPace(slotID), nil)
		require.NoError(t, err)
		assert.Empty(t, updates)
	})

	t.Run("completion shifts the queue forward", func(t *testing.T) {
		_, err := s.MarkServed(testKey, 1, at(9, 1))
		require.NoError(t, err)

		updates, err := s.Reestimate(testKey, at(9, 1), slotPace(slotID), nil)
		require.NoError(t, err)
		require.Len(t, updates, 1)
		assert.Equal(t, int64(2), updates[0].Number)
		assert.Equal(t, 0, updates[0].Position)

		tok, err := s.Token(testKey, 2)
		require.NoError(t, err)
		assert.Equal(t, at(9, 0), tok.EstimatedServeTime())
	})

	t.Run("unknown key", func(t *testing.T) {
		_, err := s.Reestimate(queue.NewDayKey(uuid.New(), testDay), at(9, 0), slotPace(slotID), nil)
		assert.ErrorIs(t, err, queue.ErrTokenNotFound)
	})
}

func TestStore_ReestimatePublishesInRecordingOrder(t *testing.T) {
	slotID := uuid.New()
	s := queue.NewStore()
	for n := int64(1); n <= 12; n++ {
		require.NoError(t, s.Enqueue(tokenFixture(n, slotID), 12))
	}

	var (
		mu   sync.Mutex
		last = map[int64]time.Time{}
	)
	publish := func(_ queue.DaySnapshot, updates []queue.EstimateUpdate) {
		mu.Lock()
		defer mu.Unlock()
		for _, upd := range updates {
			last[upd.Number] = upd.EstimatedServeTime
		}
	}

	var g errgroup.Group
	for n := int64(1); n <= 8; n++ {
		g.Go(func() error {
			if _, err := s.MarkServed(testKey, n, at(9, int(n))); err != nil {
				return err
			}
			_, err := s.Reestimate(testKey, at(9, int(n)), slotPace(slotID), publish)
			return err
		})
	}
	require.NoError(t, g.Wait())

	for _, tok := range s.Snapshot(testKey).Queued {
		assert.Equal(t, tok.EstimatedServeTime(), last[tok.Number()], "token %d", tok.Number())
	}
}

func TestStore_ConcurrentLastUnit(t *testing.T) {
	slotID := uuid.New()
	s := queue.NewStore()
	require.NoError(t, s.Enqueue(tokenFixture(1, slotID), 2))

	var admitted, rejected atomic.Int32
	var g errgroup.Group
	for n := int64(2); n <= 51; n++ {
		g.Go(func() error {
			err := s.Enqueue(tokenFixture(n, slotID), 2)
			switch {
			case err == nil:
				admitted.Add(1)
			case errors.Is(err, queue.ErrCapacityExceeded):
				rejected.Add(1)
			default:
				return err
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(1), admitted.Load())
	assert.Equal(t, int32(49), rejected.Load())
}

func TestStore_KeysAreIndependent(t *testing.T) {
	slotID := uuid.New()
	s := queue.NewStore()
	other := queue.NewDayKey(uuid.New(), testDay)
	require.NoError(t, s.Enqueue(tokenFixture(1, slotID), 1))

	tok := queue.NewToken(uuid.New(), 1, other, slotID, uuid.New(), "Annex", at(8, 0))
	require.NoError(t, s.Enqueue(tok, 1))
	assert.Len(t, s.Keys(), 2)
}

func TestStore_Evict(t *testing.T) {
	slotID := uuid.New()
	s := queue.NewStore()
	require.NoError(t, s.Enqueue(tokenFixture(1, slotID), 1))
	tomorrow := queue.NewDayKey(deptID, testDay.AddDays(1))
	require.NoError(t, s.Enqueue(queue.NewToken(uuid.New(), 1, tomorrow, slotID, uuid.New(), "", at(8, 0)), 1))

	assert.Equal(t, 0, s.Evict(testDay))
	assert.Equal(t, 1, s.Evict(timeslot.NewDay(2025, time.March, 11)))
	assert.Equal(t, uint64(0), s.Snapshot(testKey).Version)
	assert.NotZero(t, s.Snapshot(tomorrow).Version)
}
