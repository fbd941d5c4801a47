package queue

import "errors"

var (
	ErrCapacityExceeded  = errors.New("time slot capacity exceeded")
	ErrTokenNotFound     = errors.New("token not found")
	ErrInvalidTransition = errors.New("invalid token status transition")
	ErrOverCapacity      = errors.New("estimate falls beyond the last slot of the day")
	ErrDuplicateToken    = errors.New("token number already admitted")
	ErrNotQueued         = errors.New("token is no longer queued")
	ErrInvalidStatus     = errors.New("invalid token status")
)
