package queue

import (
	"time"

	"github.com/google/uuid"
)

// TransitionEvent records a token entering a status. From is zero on creation.
type TransitionEvent struct {
	ID         uuid.UUID
	Token      Token
	From       Status
	To         Status
	OccurredAt time.Time
}

func NewCreatedEvent(token Token, at time.Time) TransitionEvent {
	return TransitionEvent{
		ID:         uuid.New(),
		Token:      token,
		To:         StatusQueued,
		OccurredAt: at,
	}
}

func NewTransitionEvent(token Token, from Status, at time.Time) TransitionEvent {
	return TransitionEvent{
		ID:         uuid.New(),
		Token:      token,
		From:       from,
		To:         token.Status(),
		OccurredAt: at,
	}
}

func (e TransitionEvent) IsCreation() bool {
	return e.From == 0
}

// EstimateUpdate carries a changed estimated serve time for a queued token.
type EstimateUpdate struct {
	TokenID            uuid.UUID
	Key                DayKey
	Number             int64
	UserID             uuid.UUID
	Position           int
	EstimatedServeTime time.Time
	ComputedAt         time.Time
}

func NewEstimateUpdate(token Token, position int, at time.Time) EstimateUpdate {
	return EstimateUpdate{
		TokenID:            token.ID(),
		Key:                token.Key(),
		Number:             token.Number(),
		UserID:             token.UserID(),
		Position:           position,
		EstimatedServeTime: token.EstimatedServeTime(),
		ComputedAt:         at,
	}
}
