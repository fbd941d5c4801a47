//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"queueless/internal/domain/timeslot"
	"queueless/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryQueries_ListDepartments(t *testing.T) {
	ctx := context.Background()
	registry := timeslot.NewRegistry(time.UTC)
	q := queries.NewDirectoryQueries(registry)

	t.Run("empty registry", func(t *testing.T) {
		views, err := q.ListDepartments(ctx)
		require.NoError(t, err)
		assert.Empty(t, views)
	})

	cityID := uuid.New()
	northID := uuid.New()
	radiology := timeslot.Department{ID: uuid.New(), Name: "Radiology", ServiceCenterID: cityID, ServiceCenterName: "City Hospital"}
	cardiology := timeslot.Department{ID: uuid.New(), Name: "Cardiology", ServiceCenterID: cityID, ServiceCenterName: "City Hospital"}
	dental := timeslot.Department{ID: uuid.New(), Name: "Dental", ServiceCenterID: northID, ServiceCenterName: "North Clinic"}

	afternoon, err := timeslot.NewTimeSlot(uuid.New(), radiology.ID, timeslot.MustTimeOfDay(13, 0), timeslot.MustTimeOfDay(16, 0), 8, 15*time.Minute)
	require.NoError(t, err)
	morning, err := timeslot.NewTimeSlot(uuid.New(), radiology.ID, timeslot.MustTimeOfDay(9, 0), timeslot.MustTimeOfDay(12, 0), 10, 10*time.Minute)
	require.NoError(t, err)
	require.NoError(t, registry.ReplaceDepartment(radiology, []timeslot.TimeSlot{afternoon, morning}, nil))
	require.NoError(t, registry.ReplaceDepartment(dental, nil, nil))
	require.NoError(t, registry.ReplaceDepartment(cardiology, nil, nil))

	t.Run("grouped by service center then department name", func(t *testing.T) {
		views, err := q.ListDepartments(ctx)
		require.NoError(t, err)
		require.Len(t, views, 3)

		names := make([]string, len(views))
		for i, v := range views {
			names[i] = v.ServiceCenterName + "/" + v.Name
		}
		assert.Equal(t, []string{"City Hospital/Cardiology", "City Hospital/Radiology", "North Clinic/Dental"}, names)
	})

	t.Run("slots are listed in start order", func(t *testing.T) {
		views, err := q.ListDepartments(ctx)
		require.NoError(t, err)
		view := views[1]
		require.Equal(t, radiology.ID, view.ID)
		require.Len(t, view.Slots, 2)
		assert.Equal(t, queries.SlotView{
			ID:                    morning.ID(),
			Start:                 "09:00",
			End:                   "12:00",
			Capacity:              10,
			AverageServiceMinutes: 10,
		}, view.Slots[0])
		assert.Equal(t, "13:00", view.Slots[1].Start)
		assert.Equal(t, 15, view.Slots[1].AverageServiceMinutes)
		assert.Empty(t, views[0].Slots)
	})

	t.Run("removed department disappears", func(t *testing.T) {
		require.NoError(t, registry.RemoveDepartment(dental.ID, nil))
		views, err := q.ListDepartments(ctx)
		require.NoError(t, err)
		require.Len(t, views, 2)
		for _, v := range views {
			assert.NotEqual(t, dental.ID, v.ID)
		}
	})
}
