//go:build unit

package timeslot_test

import (
	"testing"
	"time"

	"queueless/internal/domain/timeslot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	deptID = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	day    = timeslot.NewDay(2025, time.March, 10)
)

func mustSlot(t *testing.T, id uuid.UUID, start, end timeslot.TimeOfDay, capacity int) timeslot.TimeSlot {
	t.Helper()
	slot, err := timeslot.NewTimeSlot(id, deptID, start, end, capacity, 10*time.Minute)
	require.NoError(t, err)
	return slot
}

func newRegistry(t *testing.T, slots ...timeslot.TimeSlot) *timeslot.Registry {
	t.Helper()
	r := timeslot.NewRegistry(time.UTC)
	require.NoError(t, r.ReplaceDepartment(timeslot.Department{ID: deptID, Name: "Cardiology"}, slots, nil))
	return r
}

func slotByID(t *testing.T, r *timeslot.Registry, departmentID, slotID uuid.UUID) (timeslot.TimeSlot, error) {
	t.Helper()
	slots, err := r.Slots(departmentID)
	if err != nil {
		return timeslot.TimeSlot{}, err
	}
	for _, slot := range slots {
		if slot.ID() == slotID {
			return slot, nil
		}
	}
	return timeslot.TimeSlot{}, timeslot.ErrSlotNotFound
}

func TestNewTimeSlot(t *testing.T) {
	tests := []struct {
		name     string
		start    timeslot.TimeOfDay
		end      timeslot.TimeOfDay
		capacity int
		avg      time.Duration
		wantErr  bool
	}{
		{name: "valid", start: timeslot.MustTimeOfDay(9, 0), end: timeslot.MustTimeOfDay(10, 0), capacity: 3, avg: time.Minute},
		{name: "end before start", start: timeslot.MustTimeOfDay(10, 0), end: timeslot.MustTimeOfDay(9, 0), capacity: 3, avg: time.Minute, wantErr: true},
		{name: "empty window", start: timeslot.MustTimeOfDay(9, 0), end: timeslot.MustTimeOfDay(9, 0), capacity: 3, avg: time.Minute, wantErr: true},
		{name: "zero capacity", start: timeslot.MustTimeOfDay(9, 0), end: timeslot.MustTimeOfDay(10, 0), capacity: 0, avg: time.Minute, wantErr: true},
		{name: "zero duration", start: timeslot.MustTimeOfDay(9, 0), end: timeslot.MustTimeOfDay(10, 0), capacity: 1, avg: 0, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := timeslot.NewTimeSlot(uuid.New(), deptID, tt.start, tt.end, tt.capacity, tt.avg)
			if tt.wantErr {
				assert.ErrorIs(t, err, timeslot.ErrInvalidSlot)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRegistry_FindApplicableSlot(t *testing.T) {
	morning := mustSlot(t, uuid.New(), timeslot.MustTimeOfDay(9, 0), timeslot.MustTimeOfDay(10, 0), 3)
	late := mustSlot(t, uuid.New(), timeslot.MustTimeOfDay(11, 0), timeslot.MustTimeOfDay(12, 0), 3)
	r := newRegistry(t, late, morning)

	at := func(h, m int) time.Time { return time.Date(2025, time.March, 10, h, m, 0, 0, time.UTC) }

	t.Run("inside a slot", func(t *testing.T) {
		occ, err := r.FindApplicableSlot(deptID, at(9, 30))
		require.NoError(t, err)
		assert.Equal(t, morning.ID(), occ.Slot.ID())
		assert.Equal(t, at(9, 0), occ.Start)
		assert.Equal(t, at(10, 0), occ.End)
		assert.Equal(t, day, occ.Day)
	})

	t.Run("start is inclusive", func(t *testing.T) {
		occ, err := r.FindApplicableSlot(deptID, at(11, 0))
		require.NoError(t, err)
		assert.Equal(t, late.ID(), occ.Slot.ID())
	})

	t.Run("end is exclusive", func(t *testing.T) {
		_, err := r.FindApplicableSlot(deptID, at(10, 0))
		assert.ErrorIs(t, err, timeslot.ErrSlotNotFound)
	})

	t.Run("gap between slots", func(t *testing.T) {
		_, err := r.FindApplicableSlot(deptID, at(10, 30))
		assert.ErrorIs(t, err, timeslot.ErrSlotNotFound)
	})

	t.Run("unknown department", func(t *testing.T) {
		_, err := r.FindApplicableSlot(uuid.New(), at(9, 30))
		assert.ErrorIs(t, err, timeslot.ErrDepartmentNotFound)
	})
}

func TestRegistry_OccurrencesOn(t *testing.T) {
	morning := mustSlot(t, uuid.New(), timeslot.MustTimeOfDay(9, 0), timeslot.MustTimeOfDay(10, 0), 3)
	late := mustSlot(t, uuid.New(), timeslot.MustTimeOfDay(11, 0), timeslot.MustTimeOfDay(12, 0), 3)
	r := newRegistry(t, late, morning)

	occs, err := r.OccurrencesOn(deptID, day)
	require.NoError(t, err)
	require.Len(t, occs, 2)
	assert.Equal(t, morning.ID(), occs[0].Slot.ID())
	assert.Equal(t, late.ID(), occs[1].Slot.ID())
}

func TestRegistry_Slots(t *testing.T) {
	late := mustSlot(t, uuid.New(), timeslot.MustTimeOfDay(14, 0), timeslot.MustTimeOfDay(15, 0), 2)
	early := mustSlot(t, uuid.New(), timeslot.MustTimeOfDay(8, 0), timeslot.MustTimeOfDay(9, 0), 2)
	r := newRegistry(t, late, early)

	slots, err := r.Slots(deptID)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, early.ID(), slots[0].ID())
	assert.Equal(t, late.ID(), slots[1].ID())

	_, err = r.Slots(uuid.New())
	assert.ErrorIs(t, err, timeslot.ErrDepartmentNotFound)
}

func TestRegistry_ReplaceDepartment(t *testing.T) {
	info := timeslot.Department{ID: deptID, Name: "Cardiology"}
	morningID := uuid.New()
	morning := mustSlot(t, morningID, timeslot.MustTimeOfDay(9, 0), timeslot.MustTimeOfDay(10, 0), 3)

	t.Run("rejects overlapping slots", func(t *testing.T) {
		r := timeslot.NewRegistry(time.UTC)
		overlapping := mustSlot(t, uuid.New(), timeslot.MustTimeOfDay(9, 30), timeslot.MustTimeOfDay(10, 30), 3)
		err := r.ReplaceDepartment(info, []timeslot.TimeSlot{morning, overlapping}, nil)
		assert.ErrorIs(t, err, timeslot.ErrSlotOverlap)
		_, err = r.Department(deptID)
		assert.ErrorIs(t, err, timeslot.ErrDepartmentNotFound)
	})

	t.Run("adjacent slots do not overlap", func(t *testing.T) {
		r := timeslot.NewRegistry(time.UTC)
		adjacent := mustSlot(t, uuid.New(), timeslot.MustTimeOfDay(10, 0), timeslot.MustTimeOfDay(11, 0), 3)
		assert.NoError(t, r.ReplaceDepartment(info, []timeslot.TimeSlot{morning, adjacent}, nil))
	})

	t.Run("rejects slot of another department", func(t *testing.T) {
		r := timeslot.NewRegistry(time.UTC)
		foreign, err := timeslot.NewTimeSlot(uuid.New(), uuid.New(), timeslot.MustTimeOfDay(9, 0), timeslot.MustTimeOfDay(10, 0), 1, time.Minute)
		require.NoError(t, err)
		assert.ErrorIs(t, r.ReplaceDepartment(info, []timeslot.TimeSlot{foreign}, nil), timeslot.ErrInvalidSlot)
	})

	t.Run("in-use slot cannot change", func(t *testing.T) {
		r := newRegistry(t, morning)
		resized := mustSlot(t, morningID, timeslot.MustTimeOfDay(9, 0), timeslot.MustTimeOfDay(10, 0), 5)
		inUse := func(id uuid.UUID) bool { return id == morningID }

		err := r.ReplaceDepartment(info, []timeslot.TimeSlot{resized}, inUse)
		assert.ErrorIs(t, err, timeslot.ErrSlotInUse)

		slot, err := slotByID(t, r, deptID, morningID)
		require.NoError(t, err)
		assert.Equal(t, 3, slot.Capacity())
	})

	t.Run("in-use slot cannot be removed", func(t *testing.T) {
		r := newRegistry(t, morning)
		err := r.ReplaceDepartment(info, nil, func(uuid.UUID) bool { return true })
		assert.ErrorIs(t, err, timeslot.ErrSlotInUse)
	})

	t.Run("idle slot can change", func(t *testing.T) {
		r := newRegistry(t, morning)
		resized := mustSlot(t, morningID, timeslot.MustTimeOfDay(9, 0), timeslot.MustTimeOfDay(10, 0), 5)
		require.NoError(t, r.ReplaceDepartment(info, []timeslot.TimeSlot{resized}, func(uuid.UUID) bool { return false }))

		slot, err := slotByID(t, r, deptID, morningID)
		require.NoError(t, err)
		assert.Equal(t, 5, slot.Capacity())
	})

	t.Run("unchanged in-use slot survives edits elsewhere", func(t *testing.T) {
		r := newRegistry(t, morning)
		extra := mustSlot(t, uuid.New(), timeslot.MustTimeOfDay(14, 0), timeslot.MustTimeOfDay(15, 0), 2)
		inUse := func(id uuid.UUID) bool { return id == morningID }
		require.NoError(t, r.ReplaceDepartment(info, []timeslot.TimeSlot{morning, extra}, inUse))

		occs, err := r.OccurrencesOn(deptID, day)
		require.NoError(t, err)
		assert.Len(t, occs, 2)
	})
}

func TestDay(t *testing.T) {
	t.Run("day follows the location", func(t *testing.T) {
		loc := time.FixedZone("IST", 5*3600+1800)
		instant := time.Date(2025, time.March, 9, 20, 0, 0, 0, time.UTC)
		assert.Equal(t, timeslot.NewDay(2025, time.March, 10), timeslot.DayOf(instant, loc))
	})

	t.Run("parse and format", func(t *testing.T) {
		d, err := timeslot.ParseDay("2025-03-10")
		require.NoError(t, err)
		assert.Equal(t, day, d)
		assert.Equal(t, "2025-03-10", d.String())

		_, err = timeslot.ParseDay("10/03/2025")
		assert.ErrorIs(t, err, timeslot.ErrInvalidDay)
	})

	t.Run("ordering and arithmetic", func(t *testing.T) {
		next := day.AddDays(1)
		assert.True(t, day.Before(next))
		assert.True(t, next.After(day))
		assert.Equal(t, timeslot.NewDay(2025, time.April, 1), timeslot.NewDay(2025, time.March, 31).AddDays(1))
	})
}
