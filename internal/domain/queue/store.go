package queue

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"queueless/internal/domain/timeslot"

	"github.com/google/uuid"
)

// Store keeps the live state of every department-day queue. Each key has its
// own lock, so keys never contend with each other.
type Store struct {
	mu   sync.RWMutex
	days map[DayKey]*dayState
}

type dayState struct {
	mu       sync.Mutex
	version  uint64
	tokens   map[int64]Token
	queued   []int64           // numbers of QUEUED tokens, ascending
	occupied map[uuid.UUID]int // admitted tokens per slot, any status
	served   int
	missed   int
	last     int64
}

// DaySnapshot is a consistent, detached copy of one key's state.
type DaySnapshot struct {
	Key        DayKey
	Version    uint64
	Queued     []Token // ascending token number
	Served     int
	Missed     int
	LastNumber int64
	Occupied   map[uuid.UUID]int
}

func NewStore() *Store {
	return &Store{days: make(map[DayKey]*dayState)}
}

// Enqueue admits token into its slot. An admitted token holds its capacity
// unit for the rest of the day whatever its outcome, so a no-show report
// never opens room for another booking.
func (s *Store) Enqueue(token Token, capacity int) error {
	state := s.dayFor(token.Key(), true)

	state.mu.Lock()
	defer state.mu.Unlock()

	if _, exists := state.tokens[token.Number()]; exists {
		return fmt.Errorf("%w: %s #%d", ErrDuplicateToken, token.Key(), token.Number())
	}
	if token.Number() > state.last {
		state.last = token.Number()
	}
	if state.occupied[token.SlotID()] >= capacity {
		return ErrCapacityExceeded
	}

	state.tokens[token.Number()] = token
	state.queued = insertSorted(state.queued, token.Number())
	state.occupied[token.SlotID()]++
	state.version++
	return nil
}

func (s *Store) MarkServed(key DayKey, number int64, at time.Time) (Token, error) {
	return s.complete(key, number, StatusServed, at)
}

func (s *Store) MarkMissed(key DayKey, number int64, at time.Time) (Token, error) {
	return s.complete(key, number, StatusMissed, at)
}

func (s *Store) complete(key DayKey, number int64, outcome Status, at time.Time) (Token, error) {
	state := s.dayFor(key, false)
	if state == nil {
		return Token{}, ErrTokenNotFound
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	token, ok := state.tokens[number]
	if !ok {
		return Token{}, ErrTokenNotFound
	}
	completed, err := token.Complete(outcome, at)
	if err != nil {
		return Token{}, err
	}

	state.tokens[number] = completed
	state.queued = removeSorted(state.queued, number)
	switch outcome {
	case StatusServed:
		state.served++
	case StatusMissed:
		state.missed++
	}
	state.version++
	return completed, nil
}

// PositionOf counts the queued tokens of the same slot ahead of number.
func (s *Store) PositionOf(key DayKey, number int64) (int, error) {
	state := s.dayFor(key, false)
	if state == nil {
		return 0, ErrTokenNotFound
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	token, ok := state.tokens[number]
	if !ok {
		return 0, ErrTokenNotFound
	}
	if token.Status() != StatusQueued {
		return 0, ErrNotQueued
	}
	return state.positionOf(token), nil
}

func (s *Store) Token(key DayKey, number int64) (Token, error) {
	state := s.dayFor(key, false)
	if state == nil {
		return Token{}, ErrTokenNotFound
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	token, ok := state.tokens[number]
	if !ok {
		return Token{}, ErrTokenNotFound
	}
	return token, nil
}

// Snapshot never fails; an unknown key yields an empty snapshot at version 0.
func (s *Store) Snapshot(key DayKey) DaySnapshot {
	snap := DaySnapshot{Key: key, Occupied: map[uuid.UUID]int{}}
	state := s.dayFor(key, false)
	if state == nil {
		return snap
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	return state.snapshot(key)
}

// Reestimate recomputes the estimates of key and records them while the key
// is locked, so no mutation can slip in between. publish, when non-nil,
// receives the refreshed snapshot and the estimate updates before the lock is
// released: updates of one key reach it in the order they were recorded. It
// must not call back into the store.
func (s *Store) Reestimate(
	key DayKey,
	at time.Time,
	compute func(DaySnapshot) map[int64]time.Time,
	publish func(DaySnapshot, []EstimateUpdate),
) ([]EstimateUpdate, error) {
	state := s.dayFor(key, false)
	if state == nil {
		return nil, ErrTokenNotFound
	}

	state.mu.Lock()
	defer state.mu.Unlock()

	snap := state.snapshot(key)
	estimates := compute(snap)

	var updates []EstimateUpdate
	for i, token := range snap.Queued {
		estimate, ok := estimates[token.Number()]
		if !ok || token.EstimatedServeTime().Equal(estimate) {
			continue
		}
		token = token.withEstimate(estimate)
		state.tokens[token.Number()] = token
		snap.Queued[i] = token
		updates = append(updates, NewEstimateUpdate(token, state.positionOf(token), at))
	}
	if publish != nil {
		publish(snap, updates)
	}
	return updates, nil
}

// SlotInUse reports whether any day on or after from has tokens in slotID.
func (s *Store) SlotInUse(slotID uuid.UUID, from timeslot.Day) bool {
	s.mu.RLock()
	states := make([]*dayState, 0, len(s.days))
	for key, state := range s.days {
		if !key.Day.Before(from) {
			states = append(states, state)
		}
	}
	s.mu.RUnlock()

	for _, state := range states {
		state.mu.Lock()
		count := state.occupied[slotID]
		state.mu.Unlock()
		if count > 0 {
			return true
		}
	}
	return false
}

func (s *Store) Keys() []DayKey {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]DayKey, 0, len(s.days))
	for key := range s.days {
		keys = append(keys, key)
	}
	return keys
}

// Evict drops every key whose day is before cutoff.
func (s *Store) Evict(cutoff timeslot.Day) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key := range s.days {
		if key.Day.Before(cutoff) {
			delete(s.days, key)
			removed++
		}
	}
	return removed
}

func (s *Store) dayFor(key DayKey, create bool) *dayState {
	s.mu.RLock()
	state, ok := s.days[key]
	s.mu.RUnlock()
	if ok || !create {
		return state
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if state, ok = s.days[key]; ok {
		return state
	}
	state = &dayState{
		tokens:   make(map[int64]Token),
		occupied: make(map[uuid.UUID]int),
	}
	s.days[key] = state
	return state
}

func (snap DaySnapshot) QueuedInSlot(slotID uuid.UUID) []Token {
	var out []Token
	for _, token := range snap.Queued {
		if token.SlotID() == slotID {
			out = append(out, token)
		}
	}
	return out
}

// QueuedToken finds a token that was still queued when the snapshot was taken.
func (snap DaySnapshot) QueuedToken(number int64) (Token, bool) {
	i := sort.Search(len(snap.Queued), func(i int) bool { return snap.Queued[i].Number() >= number })
	if i < len(snap.Queued) && snap.Queued[i].Number() == number {
		return snap.Queued[i], true
	}
	return Token{}, false
}

func (d *dayState) snapshot(key DayKey) DaySnapshot {
	snap := DaySnapshot{
		Key:        key,
		Version:    d.version,
		Served:     d.served,
		Missed:     d.missed,
		LastNumber: d.last,
		Queued:     make([]Token, 0, len(d.queued)),
		Occupied:   make(map[uuid.UUID]int, len(d.occupied)),
	}
	for _, n := range d.queued {
		snap.Queued = append(snap.Queued, d.tokens[n])
	}
	for slotID, count := range d.occupied {
		snap.Occupied[slotID] = count
	}
	return snap
}

// positionOf counts the queued tokens of the same slot ahead of token.
func (d *dayState) positionOf(token Token) int {
	position := 0
	for _, n := range d.queued {
		if n >= token.Number() {
			break
		}
		if d.tokens[n].SlotID() == token.SlotID() {
			position++
		}
	}
	return position
}

func insertSorted(xs []int64, n int64) []int64 {
	i := sort.Search(len(xs), func(i int) bool { return xs[i] >= n })
	xs = append(xs, 0)
	copy(xs[i+1:], xs[i:])
	xs[i] = n
	return xs
}

func removeSorted(xs []int64, n int64) []int64 {
	i := sort.Search(len(xs), func(i int) bool { return xs[i] >= n })
	if i < len(xs) && xs[i] == n {
		return append(xs[:i], xs[i+1:]...)
	}
	return xs
}
