//go:build unit

package queue_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"queueless/internal/domain/queue"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type stubHighWater struct {
	mu    sync.Mutex
	calls int
	value int64
	err   error
}

func (s *stubHighWater) HighWaterMark(context.Context, queue.DayKey) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		err := s.err
		s.err = nil
		return 0, err
	}
	return s.value, nil
}

func TestSequencer_Next(t *testing.T) {
	ctx := context.Background()

	t.Run("starts at one per key", func(t *testing.T) {
		seq := queue.NewSequencer(nil)
		other := queue.NewDayKey(uuid.New(), testDay)

		n, err := seq.Next(ctx, testKey)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = seq.Next(ctx, testKey)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		n, err = seq.Next(ctx, other)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		n, err = seq.Next(ctx, queue.NewDayKey(deptID, testDay.AddDays(1)))
		require.NoError(t, err)
		assert.Equal(t, int64(1), n, "numbering restarts every day")
	})

	t.Run("seeds once from the high water mark", func(t *testing.T) {
		src := &stubHighWater{value: 41}
		seq := queue.NewSequencer(src)

		n, err := seq.Next(ctx, testKey)
		require.NoError(t, err)
		assert.Equal(t, int64(42), n)

		_, err = seq.Next(ctx, testKey)
		require.NoError(t, err)
		assert.Equal(t, 1, src.calls)
		assert.Equal(t, int64(43), seq.Last(testKey))
	})

	t.Run("failed seed is retried", func(t *testing.T) {
		src := &stubHighWater{value: 5, err: errors.New("db down")}
		seq := queue.NewSequencer(src)

		_, err := seq.Next(ctx, testKey)
		require.Error(t, err)

		n, err := seq.Next(ctx, testKey)
		require.NoError(t, err)
		assert.Equal(t, int64(6), n)
	})

	t.Run("concurrent callers get distinct increasing numbers", func(t *testing.T) {
		seq := queue.NewSequencer(&stubHighWater{})
		const callers = 200

		var mu sync.Mutex
		got := make([]int64, 0, callers)
		var g errgroup.Group
		for range callers {
			g.Go(func() error {
				n, err := seq.Next(ctx, testKey)
				if err != nil {
					return err
				}
				mu.Lock()
				got = append(got, n)
				mu.Unlock()
				return nil
			})
		}
		require.NoError(t, g.Wait())

		sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
		for i, n := range got {
			assert.Equal(t, int64(i+1), n)
		}
	})
}

func TestSequencer_Evict(t *testing.T) {
	seq := queue.NewSequencer(nil)
	ctx := context.Background()
	_, err := seq.Next(ctx, testKey)
	require.NoError(t, err)
	tomorrow := queue.NewDayKey(deptID, testDay.AddDays(1))
	_, err = seq.Next(ctx, tomorrow)
	require.NoError(t, err)

	assert.Equal(t, 1, seq.Evict(testDay.AddDays(1)))
	assert.Equal(t, int64(0), seq.Last(testKey))
	assert.Equal(t, int64(1), seq.Last(tomorrow))
}
