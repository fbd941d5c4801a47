package queue

import (
	"fmt"
	"time"

	"queueless/internal/domain/timeslot"

	"github.com/google/uuid"
)

// Token is an immutable view of a queue ticket. Mutations return a new value.
type Token struct {
	id                 uuid.UUID
	number             int64
	key                DayKey
	slotID             uuid.UUID
	userID             uuid.UUID
	serviceCenterName  string
	bookedAt           time.Time
	estimatedServeTime time.Time
	status             Status
	completedAt        time.Time
}

func NewToken(
	id uuid.UUID,
	number int64,
	key DayKey,
	slotID, userID uuid.UUID,
	serviceCenterName string,
	bookedAt time.Time,
) Token {
	return Token{
		id:                id,
		number:            number,
		key:               key,
		slotID:            slotID,
		userID:            userID,
		serviceCenterName: serviceCenterName,
		bookedAt:          bookedAt,
		status:            StatusQueued,
	}
}

func ReconstructToken(
	id uuid.UUID,
	number int64,
	key DayKey,
	slotID, userID uuid.UUID,
	serviceCenterName string,
	bookedAt, estimatedServeTime time.Time,
	status Status,
	completedAt time.Time,
) Token {
	return Token{
		id:                 id,
		number:             number,
		key:                key,
		slotID:             slotID,
		userID:             userID,
		serviceCenterName:  serviceCenterName,
		bookedAt:           bookedAt,
		estimatedServeTime: estimatedServeTime,
		status:             status,
		completedAt:        completedAt,
	}
}

func (t Token) ID() uuid.UUID                 { return t.id }
func (t Token) Number() int64                 { return t.number }
func (t Token) Key() DayKey                   { return t.key }
func (t Token) DepartmentID() uuid.UUID       { return t.key.DepartmentID }
func (t Token) Day() timeslot.Day             { return t.key.Day }
func (t Token) SlotID() uuid.UUID             { return t.slotID }
func (t Token) UserID() uuid.UUID             { return t.userID }
func (t Token) ServiceCenterName() string     { return t.serviceCenterName }
func (t Token) BookedAt() time.Time           { return t.bookedAt }
func (t Token) EstimatedServeTime() time.Time { return t.estimatedServeTime }
func (t Token) Status() Status                { return t.status }
func (t Token) CompletedAt() time.Time        { return t.completedAt }

// Label is the human facing token number, e.g. "T-007".
func (t Token) Label() string {
	return fmt.Sprintf("T-%03d", t.number)
}

func (t Token) HasEstimate() bool {
	return !t.estimatedServeTime.IsZero()
}

func (t Token) Complete(outcome Status, at time.Time) (Token, error) {
	if !outcome.IsTerminal() {
		return t, fmt.Errorf("%w: %s is not a completion outcome", ErrInvalidTransition, outcome)
	}
	if !t.status.CanTransitionTo(outcome) {
		return t, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, t.status, outcome)
	}
	t.status = outcome
	t.completedAt = at
	return t, nil
}

func (t Token) withEstimate(at time.Time) Token {
	t.estimatedServeTime = at
	return t
}
