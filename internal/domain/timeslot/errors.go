package timeslot

import "errors"

var (
	ErrSlotNotFound       = errors.New("no time slot covers the requested time")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrInvalidSlot        = errors.New("invalid time slot")
	ErrSlotOverlap        = errors.New("time slots overlap")
	ErrSlotInUse          = errors.New("time slot has admitted tokens and cannot change")
)
