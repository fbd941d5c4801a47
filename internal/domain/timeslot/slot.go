package timeslot

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimeSlot is a recurring daily service window of a department.
type TimeSlot struct {
	id              uuid.UUID
	departmentID    uuid.UUID
	start           TimeOfDay
	end             TimeOfDay
	capacity        int
	averageDuration time.Duration
}

func NewTimeSlot(
	id, departmentID uuid.UUID,
	start, end TimeOfDay,
	capacity int,
	averageDuration time.Duration,
) (TimeSlot, error) {
	if id == uuid.Nil || departmentID == uuid.Nil {
		return TimeSlot{}, fmt.Errorf("%w: missing identifier", ErrInvalidSlot)
	}
	if !start.Before(end) {
		return TimeSlot{}, fmt.Errorf("%w: start %s must be before end %s", ErrInvalidSlot, start, end)
	}
	if capacity <= 0 {
		return TimeSlot{}, fmt.Errorf("%w: capacity must be positive, got %d", ErrInvalidSlot, capacity)
	}
	if averageDuration <= 0 {
		return TimeSlot{}, fmt.Errorf("%w: average service duration must be positive", ErrInvalidSlot)
	}
	return TimeSlot{
		id:              id,
		departmentID:    departmentID,
		start:           start,
		end:             end,
		capacity:        capacity,
		averageDuration: averageDuration,
	}, nil
}

func (s TimeSlot) ID() uuid.UUID                         { return s.id }
func (s TimeSlot) DepartmentID() uuid.UUID               { return s.departmentID }
func (s TimeSlot) Start() TimeOfDay                      { return s.start }
func (s TimeSlot) End() TimeOfDay                        { return s.end }
func (s TimeSlot) Capacity() int                         { return s.capacity }
func (s TimeSlot) AverageServiceDuration() time.Duration { return s.averageDuration }

func (s TimeSlot) Overlaps(other TimeSlot) bool {
	return s.start.Before(other.end) && other.start.Before(s.end)
}

// SameDefinition reports whether both describe the same window, capacity and pace.
func (s TimeSlot) SameDefinition(other TimeSlot) bool {
	return s == other
}

func (s TimeSlot) On(day Day, loc *time.Location) Occurrence {
	return Occurrence{
		Slot:  s,
		Day:   day,
		Start: day.At(s.start, loc),
		End:   day.At(s.end, loc),
	}
}

// Occurrence is a TimeSlot materialized on a concrete calendar day.
type Occurrence struct {
	Slot  TimeSlot
	Day   Day
	Start time.Time
	End   time.Time
}

func (o Occurrence) Contains(t time.Time) bool {
	return !t.Before(o.Start) && t.Before(o.End)
}
