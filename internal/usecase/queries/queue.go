package queries

import (
	"context"

	"queueless/internal/domain/queue"
	"queueless/internal/domain/timeslot"
	"queueless/internal/domain/user"
	"queueless/internal/pkg/clock"
	"queueless/internal/pkg/errs"

	"github.com/google/uuid"
)

type QueueQueries interface {
	GetToken(ctx context.Context, actor Actor, departmentID uuid.UUID, day timeslot.Day, number int64) (*TokenView, error)
	ListQueue(ctx context.Context, departmentID uuid.UUID, day timeslot.Day) (*QueueView, error)
}

// LiveQueue is the read surface of the in-memory queue state.
type LiveQueue interface {
	Token(key queue.DayKey, number int64) (queue.Token, error)
	PositionOf(key queue.DayKey, number int64) (int, error)
	Snapshot(key queue.DayKey) queue.DaySnapshot
}

// Actor is the authenticated caller of a query.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

// CanSeeTokenOf reports whether the actor may read a token held by owner.
// Holders see their own tokens; operators and admins see every token.
func (a Actor) CanSeeTokenOf(owner uuid.UUID) bool {
	return a.UserID == owner || a.Role.AtLeast(user.RoleOperator)
}

type DepartmentDirectory interface {
	Department(id uuid.UUID) (timeslot.Department, error)
}

type queueQueriesImpl struct {
	live      LiveQueue
	directory DepartmentDirectory
	clock     clock.Clock
}

func NewQueueQueries(live LiveQueue, directory DepartmentDirectory, clk clock.Clock) QueueQueries {
	return &queueQueriesImpl{
		live:      live,
		directory: directory,
		clock:     clk,
	}
}

func (q *queueQueriesImpl) GetToken(_ context.Context, actor Actor, departmentID uuid.UUID, day timeslot.Day, number int64) (*TokenView, error) {
	dept, err := q.directory.Department(departmentID)
	if err != nil {
		return nil, err
	}
	key := queue.NewDayKey(departmentID, day)
	token, err := q.live.Token(key, number)
	if err != nil {
		return nil, err
	}
	if !actor.CanSeeTokenOf(token.UserID()) {
		return nil, errs.Wrapf(errs.ErrAccessDenied, "token %s #%d", key, number)
	}

	var position *int
	if token.Status() == queue.StatusQueued {
		pos, err := q.live.PositionOf(key, number)
		if err != nil && !errs.Is(err, queue.ErrNotQueued) {
			return nil, err
		}
		if err == nil {
			position = &pos
		}
	}
	return NewTokenView(token, dept, position, q.clock.Now()), nil
}

func (q *queueQueriesImpl) ListQueue(_ context.Context, departmentID uuid.UUID, day timeslot.Day) (*QueueView, error) {
	dept, err := q.directory.Department(departmentID)
	if err != nil {
		return nil, err
	}
	snap := q.live.Snapshot(queue.NewDayKey(departmentID, day))
	now := q.clock.Now()

	perSlot := make(map[uuid.UUID]int)
	waiting := make([]*TokenView, 0, len(snap.Queued))
	for _, token := range snap.Queued {
		pos := perSlot[token.SlotID()]
		perSlot[token.SlotID()]++
		waiting = append(waiting, NewTokenView(token, dept, &pos, now))
	}

	return &QueueView{
		DepartmentID:   departmentID,
		DepartmentName: dept.Name,
		Day:            day.String(),
		Served:         snap.Served,
		Missed:         snap.Missed,
		LastNumber:     snap.LastNumber,
		Waiting:        waiting,
	}, nil
}
