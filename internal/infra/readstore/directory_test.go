//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"queueless/internal/domain/timeslot"
	"queueless/internal/infra"
	"queueless/internal/infra/pgquery"
	"queueless/internal/infra/readstore"
	readstoremock "queueless/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pgTime(h, m int) pgtype.Time {
	return pgtype.Time{Microseconds: int64(h*60+m) * int64(time.Minute/time.Microsecond), Valid: true}
}

func TestDirectoryReadStore_LoadDirectory(t *testing.T) {
	ctx := context.Background()
	cardiology := uuid.New()
	radiology := uuid.New()
	center := uuid.New()

	depts := []pgquery.DepartmentRow{
		{ID: cardiology, Name: "Cardiology", ServiceCenterID: center, ServiceCenterName: "City Hospital"},
		{ID: radiology, Name: "Radiology", ServiceCenterID: center, ServiceCenterName: "City Hospital"},
	}

	t.Run("groups slots by department and skips invalid rows", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockDirectoryReadQueries(ctrl)
		store := readstore.NewDirectoryReadStore(q, nil)

		q.EXPECT().ListActiveDepartments(ctx, gomock.Any()).Return(depts, nil)
		q.EXPECT().ListActiveTimeSlots(ctx, gomock.Any()).Return([]pgquery.TimeSlotRow{
			{ID: uuid.New(), DepartmentID: cardiology, StartTime: pgTime(9, 0), EndTime: pgTime(10, 0), Capacity: 3, AvgServiceMinutes: 10},
			{ID: uuid.New(), DepartmentID: cardiology, StartTime: pgTime(14, 30), EndTime: pgTime(16, 0), Capacity: 6, AvgServiceMinutes: 15},
			{ID: uuid.New(), DepartmentID: radiology, StartTime: pgTime(9, 0), EndTime: pgTime(9, 0), Capacity: 3, AvgServiceMinutes: 10},
		}, nil)

		configs, invalid, err := store.LoadDirectory(ctx)
		require.NoError(t, err)
		require.Len(t, configs, 2)
		assert.Len(t, invalid, 1)
		assert.ErrorIs(t, invalid[0], timeslot.ErrInvalidSlot)

		assert.Equal(t, "Cardiology", configs[0].Department.Name)
		assert.Equal(t, "City Hospital", configs[0].Department.ServiceCenterName)
		require.Len(t, configs[0].Slots, 2)
		assert.Equal(t, timeslot.MustTimeOfDay(14, 30), configs[0].Slots[1].Start())
		assert.Equal(t, 15*time.Minute, configs[0].Slots[1].AverageServiceDuration())
		assert.Empty(t, configs[1].Slots)
	})

	t.Run("database failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readstoremock.NewMockDirectoryReadQueries(ctrl)
		store := readstore.NewDirectoryReadStore(q, nil)

		q.EXPECT().ListActiveDepartments(ctx, gomock.Any()).Return(nil, errors.New("down"))

		_, _, err := store.LoadDirectory(ctx)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
