package queue

import (
	"time"

	"queueless/internal/domain/timeslot"

	"github.com/google/uuid"
)

// SlotPlan is the occurrence a token was booked into plus the later
// occurrences of the same department on the same day, earliest first.
type SlotPlan struct {
	Current   timeslot.Occurrence
	Following []timeslot.Occurrence
}

// NewSlotPlan builds a plan for slotID out of all occurrences of a day.
func NewSlotPlan(occurrences []timeslot.Occurrence, slotID uuid.UUID) (SlotPlan, bool) {
	for i, occ := range occurrences {
		if occ.Slot.ID() == slotID {
			return SlotPlan{Current: occ, Following: occurrences[i+1:]}, true
		}
	}
	return SlotPlan{}, false
}

// Last is the final occurrence reachable from the plan.
func (p SlotPlan) Last() timeslot.Occurrence {
	if len(p.Following) == 0 {
		return p.Current
	}
	return p.Following[len(p.Following)-1]
}

// SlotEstimates is the result of estimating a whole slot queue.
type SlotEstimates struct {
	ByNumber map[int64]time.Time
	// Overflowed lists tokens whose estimate ran past the last slot of the
	// day. Their entry in ByNumber is clamped to that slot's end.
	Overflowed []int64
}

// Estimator derives serve times from slot throughput alone: the occurrence
// start plus one average service duration per token ahead in the slot.
type Estimator struct{}

func NewEstimator() *Estimator {
	return &Estimator{}
}

// Estimate returns when the token at zero-based position within the slot
// should be served. Time that does not fit the slot carries into the next
// occurrence; ErrOverCapacity is returned when none is left. Admission caps
// the queue by capacity, so this only happens when a slot holds more tokens
// than its window can serve.
func (e *Estimator) Estimate(plan SlotPlan, position int) (time.Time, error) {
	occ := plan.Current
	at := occ.Start.Add(time.Duration(position) * occ.Slot.AverageServiceDuration())

	for _, next := range plan.Following {
		if at.Before(occ.End) {
			return at, nil
		}
		at = next.Start.Add(at.Sub(occ.End))
		occ = next
	}
	if at.Before(occ.End) {
		return at, nil
	}
	return time.Time{}, ErrOverCapacity
}

// EstimateQueue estimates every queued token of the plan's slot in one pass.
func (e *Estimator) EstimateQueue(plan SlotPlan, snap DaySnapshot) SlotEstimates {
	queued := snap.QueuedInSlot(plan.Current.Slot.ID())
	out := SlotEstimates{ByNumber: make(map[int64]time.Time, len(queued))}
	for position, token := range queued {
		at, err := e.Estimate(plan, position)
		if err != nil {
			at = plan.Last().End
			out.Overflowed = append(out.Overflowed, token.Number())
		}
		out.ByNumber[token.Number()] = at
	}
	return out
}
