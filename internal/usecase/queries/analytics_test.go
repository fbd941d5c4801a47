//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"queueless/internal/domain/timeslot"
	"queueless/internal/pkg/errs"
	"queueless/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type analyticsStoreStub struct {
	from, to time.Time
	err      error
}

func (s *analyticsStoreStub) StatusSummary(_ context.Context, from, to time.Time) ([]queries.StatusCount, error) {
	s.from, s.to = from, to
	if s.err != nil {
		return nil, s.err
	}
	return []queries.StatusCount{{Status: "SERVED", Count: 7}, {Status: "MISSED", Count: 3}}, nil
}

func (s *analyticsStoreStub) PeakHours(context.Context, time.Time, time.Time) ([]queries.HourCount, error) {
	return []queries.HourCount{{Hour: 10, Count: 6}}, nil
}

func (s *analyticsStoreStub) DepartmentUsage(context.Context, time.Time, time.Time) ([]queries.DepartmentUsage, error) {
	return []queries.DepartmentUsage{}, nil
}

func TestAnalyticsQueries(t *testing.T) {
	ctx := context.Background()
	loc := time.FixedZone("IST", 5*3600+1800)
	from := timeslot.NewDay(2025, time.March, 1)
	to := timeslot.NewDay(2025, time.March, 31)

	t.Run("range covers whole days in the queue zone", func(t *testing.T) {
		stub := &analyticsStoreStub{}
		view, err := queries.NewAnalyticsQueries(stub, loc).Analytics(ctx, from, to)
		require.NoError(t, err)

		assert.True(t, stub.from.Equal(time.Date(2025, time.March, 1, 0, 0, 0, 0, loc)))
		assert.True(t, stub.to.Equal(time.Date(2025, time.April, 1, 0, 0, 0, 0, loc)))
		assert.Equal(t, int64(10), view.Total)
		assert.Equal(t, "2025-03-01", view.From)
		assert.Equal(t, "2025-03-31", view.To)
		assert.Len(t, view.PeakHours, 1)
	})

	t.Run("single day", func(t *testing.T) {
		_, err := queries.NewAnalyticsQueries(&analyticsStoreStub{}, loc).Analytics(ctx, from, from)
		require.NoError(t, err)
	})

	t.Run("reversed range", func(t *testing.T) {
		_, err := queries.NewAnalyticsQueries(&analyticsStoreStub{}, loc).Analytics(ctx, to, from)
		assert.True(t, errs.Is(err, queries.ErrInvalidRange))
	})

	t.Run("range too long", func(t *testing.T) {
		_, err := queries.NewAnalyticsQueries(&analyticsStoreStub{}, loc).Analytics(ctx, from, from.AddDays(queries.MaxAnalyticsRange+1))
		assert.True(t, errs.Is(err, queries.ErrInvalidRange))
	})

	t.Run("store failure", func(t *testing.T) {
		stub := &analyticsStoreStub{err: errors.New("timeout")}
		_, err := queries.NewAnalyticsQueries(stub, loc).Analytics(ctx, from, to)
		assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
	})
}
