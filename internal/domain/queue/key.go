package queue

import (
	"queueless/internal/domain/timeslot"

	"github.com/google/uuid"
)

// DayKey identifies one department queue on one calendar day. All numbering,
// capacity and ordering is scoped to a key.
type DayKey struct {
	DepartmentID uuid.UUID
	Day          timeslot.Day
}

func NewDayKey(departmentID uuid.UUID, day timeslot.Day) DayKey {
	return DayKey{DepartmentID: departmentID, Day: day}
}

func (k DayKey) String() string {
	return k.DepartmentID.String() + "/" + k.Day.String()
}
