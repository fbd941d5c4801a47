//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"queueless/internal/domain/queue"
	"queueless/internal/domain/timeslot"
	"queueless/internal/domain/user"
	"queueless/internal/pkg/clock"
	"queueless/internal/pkg/errs"
	"queueless/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueueQueries(t *testing.T) {
	ctx := context.Background()
	day := timeslot.NewDay(2025, time.March, 10)
	now := time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC)
	deptID := uuid.New()

	registry := timeslot.NewRegistry(time.UTC)
	morning, err := timeslot.NewTimeSlot(uuid.New(), deptID, timeslot.MustTimeOfDay(9, 0), timeslot.MustTimeOfDay(12, 0), 10, 10*time.Minute)
	require.NoError(t, err)
	afternoon, err := timeslot.NewTimeSlot(uuid.New(), deptID, timeslot.MustTimeOfDay(13, 0), timeslot.MustTimeOfDay(16, 0), 10, 10*time.Minute)
	require.NoError(t, err)
	require.NoError(t, registry.ReplaceDepartment(timeslot.Department{
		ID:                deptID,
		Name:              "Radiology",
		ServiceCenterName: "City Hospital",
	}, []timeslot.TimeSlot{morning, afternoon}, nil))

	store := queue.NewStore()
	key := queue.NewDayKey(deptID, day)
	owner := queries.Actor{UserID: uuid.New(), Role: user.RoleCitizen}
	admit := func(number int64, slot timeslot.TimeSlot) {
		t.Helper()
		token := queue.NewToken(uuid.New(), number, key, slot.ID(), owner.UserID, "City Hospital", now)
		require.NoError(t, store.Enqueue(token, slot.Capacity()))
	}
	admit(1, morning)
	admit(2, afternoon)
	admit(3, morning)
	_, err = store.MarkServed(key, 1, now.Add(5*time.Minute))
	require.NoError(t, err)

	q := queries.NewQueueQueries(store, registry, clock.NewMockClock(now))

	t.Run("get queued token carries its position in the slot", func(t *testing.T) {
		view, err := q.GetToken(ctx, owner, deptID, day, 3)
		require.NoError(t, err)
		assert.Equal(t, "QUEUED", view.Status)
		assert.Equal(t, "Radiology", view.DepartmentName)
		require.NotNil(t, view.Position)
		assert.Equal(t, 0, *view.Position)
	})

	t.Run("get served token has no position", func(t *testing.T) {
		view, err := q.GetToken(ctx, owner, deptID, day, 1)
		require.NoError(t, err)
		assert.Equal(t, "SERVED", view.Status)
		assert.Nil(t, view.Position)
		require.NotNil(t, view.CompletedAt)
	})

	t.Run("unknown number", func(t *testing.T) {
		_, err := q.GetToken(ctx, owner, deptID, day, 99)
		assert.True(t, errs.Is(err, queue.ErrTokenNotFound))
	})

	t.Run("unknown department", func(t *testing.T) {
		_, err := q.GetToken(ctx, owner, uuid.New(), day, 1)
		assert.True(t, errs.Is(err, timeslot.ErrDepartmentNotFound))

		_, err = q.ListQueue(ctx, uuid.New(), day)
		assert.True(t, errs.Is(err, timeslot.ErrDepartmentNotFound))
	})

	t.Run("another citizen is denied", func(t *testing.T) {
		stranger := queries.Actor{UserID: uuid.New(), Role: user.RoleCitizen}
		_, err := q.GetToken(ctx, stranger, deptID, day, 3)
		assert.True(t, errs.Is(err, errs.ErrAccessDenied))
	})

	t.Run("operator sees any token", func(t *testing.T) {
		operator := queries.Actor{UserID: uuid.New(), Role: user.RoleOperator}
		view, err := q.GetToken(ctx, operator, deptID, day, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(3), view.Number)
	})

	t.Run("list numbers positions per slot", func(t *testing.T) {
		view, err := q.ListQueue(ctx, deptID, day)
		require.NoError(t, err)
		assert.Equal(t, 1, view.Served)
		assert.Equal(t, int64(3), view.LastNumber)
		require.Len(t, view.Waiting, 2)

		positions := map[int64]int{}
		for _, tv := range view.Waiting {
			require.NotNil(t, tv.Position)
			positions[tv.Number] = *tv.Position
		}
		assert.Equal(t, map[int64]int{2: 0, 3: 0}, positions)
	})

	t.Run("empty day", func(t *testing.T) {
		view, err := q.ListQueue(ctx, deptID, day.AddDays(1))
		require.NoError(t, err)
		assert.Empty(t, view.Waiting)
		assert.Zero(t, view.LastNumber)
	})
}
