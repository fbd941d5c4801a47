package commands

import (
	"context"
	"time"

	"queueless/internal/domain/queue"
	"queueless/internal/domain/timeslot"

	"github.com/google/uuid"
)

// SlotRegistry is the slot configuration the coordinator books against.
type SlotRegistry interface {
	Location() *time.Location
	Department(id uuid.UUID) (timeslot.Department, error)
	FindApplicableSlot(departmentID uuid.UUID, at time.Time) (timeslot.Occurrence, error)
	OccurrencesOn(departmentID uuid.UUID, day timeslot.Day) ([]timeslot.Occurrence, error)
}

type TokenSequencer interface {
	Next(ctx context.Context, key queue.DayKey) (int64, error)
}

type QueueStateStore interface {
	Enqueue(token queue.Token, capacity int) error
	MarkServed(key queue.DayKey, number int64, at time.Time) (queue.Token, error)
	MarkMissed(key queue.DayKey, number int64, at time.Time) (queue.Token, error)
	PositionOf(key queue.DayKey, number int64) (int, error)
	Token(key queue.DayKey, number int64) (queue.Token, error)
	Snapshot(key queue.DayKey) queue.DaySnapshot
	Reestimate(
		key queue.DayKey,
		at time.Time,
		compute func(queue.DaySnapshot) map[int64]time.Time,
		publish func(queue.DaySnapshot, []queue.EstimateUpdate),
	) ([]queue.EstimateUpdate, error)
}

type BookTokenInput struct {
	UserID       uuid.UUID
	DepartmentID uuid.UUID
	// RequestedTime defaults to now when nil.
	RequestedTime *time.Time
}

type CompleteTokenInput struct {
	DepartmentID uuid.UUID
	Day          timeslot.Day
	Number       int64
	Outcome      queue.Status
}
