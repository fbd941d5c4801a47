package commands

import (
	"context"
	"log/slog"
	"time"

	"queueless/internal/domain/queue"
	"queueless/internal/domain/timeslot"
	"queueless/internal/pkg/clock"
	"queueless/internal/pkg/errs"
	"queueless/internal/pkg/metrics"
	"queueless/internal/usecase/queries"
	"queueless/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingCommands interface {
	BookToken(ctx context.Context, in BookTokenInput) (*queries.TokenView, error)
	CompleteToken(ctx context.Context, in CompleteTokenInput) (*queries.TokenView, error)
}

type BookingDeps struct {
	Registry  SlotRegistry
	Sequencer TokenSequencer
	Store     QueueStateStore
	Estimator *queue.Estimator
	Publisher shared.EventPublisher
	Clock     clock.Clock
	Logger    *slog.Logger
	Metrics   *metrics.Metrics
}

type bookingUseCaseImpl struct {
	registry  SlotRegistry
	sequencer TokenSequencer
	store     QueueStateStore
	estimator *queue.Estimator
	publisher shared.EventPublisher
	clock     clock.Clock
	logger    *slog.Logger
	metrics   *metrics.Metrics
}

func NewBookingUseCase(deps BookingDeps) BookingCommands {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &bookingUseCaseImpl{
		registry:  deps.Registry,
		sequencer: deps.Sequencer,
		store:     deps.Store,
		estimator: deps.Estimator,
		publisher: deps.Publisher,
		clock:     deps.Clock,
		logger:    logger.With("component", "booking"),
		metrics:   deps.Metrics,
	}
}

func (b *bookingUseCaseImpl) BookToken(ctx context.Context, in BookTokenInput) (*queries.TokenView, error) {
	now := b.clock.Now()
	requested := now
	if in.RequestedTime != nil {
		requested = *in.RequestedTime
	}
	loc := b.registry.Location()
	if timeslot.DayOf(requested, loc).Before(timeslot.DayOf(now, loc)) {
		b.metrics.Booking("rejected")
		return nil, errs.ErrPastDay
	}

	dept, err := b.registry.Department(in.DepartmentID)
	if err != nil {
		b.metrics.Booking("rejected")
		return nil, err
	}
	occ, err := b.registry.FindApplicableSlot(in.DepartmentID, requested)
	if err != nil {
		b.metrics.Booking("rejected")
		return nil, err
	}

	key := queue.NewDayKey(in.DepartmentID, occ.Day)
	plan, err := b.planFor(key, occ.Slot.ID())
	if err != nil {
		b.metrics.Booking("error")
		return nil, err
	}
	number, err := b.sequencer.Next(ctx, key)
	if err != nil {
		b.metrics.Booking("error")
		return nil, errs.Mark(err, errs.ErrSequenceUnavailable)
	}

	token := queue.NewToken(uuid.New(), number, key, occ.Slot.ID(), in.UserID, dept.ServiceCenterName, now)
	if err := b.store.Enqueue(token, occ.Slot.Capacity()); err != nil {
		b.logger.InfoContext(ctx, "booking rejected",
			"key", key.String(), "number", number, "slot", occ.Slot.ID(), "error", err)
		b.metrics.Booking(bookingOutcome(err))
		return nil, err
	}

	// From here on the booking stands. The new token gets its estimate in the
	// same critical section that announces it.
	var (
		booked   queue.Token
		position *int
	)
	_, err = b.store.Reestimate(key, now, b.estimateSlot(ctx, plan), func(snap queue.DaySnapshot, updates []queue.EstimateUpdate) {
		if queued, ok := snap.QueuedToken(number); ok {
			booked = queued
			b.publisher.PublishTransition(ctx, queue.NewCreatedEvent(queued, now))
		}
		b.publishEstimates(ctx, updates)
	})
	if err != nil {
		return nil, errs.Wrap(err, "estimate booked token")
	}
	if booked.Number() == 0 {
		// completed by an operator before the booking call returned
		if booked, err = b.store.Token(key, number); err != nil {
			return nil, errs.Wrap(err, "read booked token")
		}
	} else if pos, err := b.store.PositionOf(key, number); err == nil {
		position = &pos
	}
	b.metrics.Booking("admitted")
	b.observeDepth(key, now)

	b.logger.InfoContext(ctx, "token booked",
		"key", key.String(), "number", number, "slot", occ.Slot.ID(),
		"estimated_serve_time", booked.EstimatedServeTime())

	return queries.NewTokenView(booked, dept, position, now), nil
}

func (b *bookingUseCaseImpl) CompleteToken(ctx context.Context, in CompleteTokenInput) (*queries.TokenView, error) {
	if in.Outcome != queue.StatusServed && in.Outcome != queue.StatusMissed {
		return nil, errs.Wrapf(errs.ErrInvalidOutcome, "outcome %s", in.Outcome)
	}
	dept, err := b.registry.Department(in.DepartmentID)
	if err != nil {
		return nil, err
	}

	now := b.clock.Now()
	key := queue.NewDayKey(in.DepartmentID, in.Day)

	var completed queue.Token
	switch in.Outcome {
	case queue.StatusServed:
		completed, err = b.store.MarkServed(key, in.Number, now)
	default:
		completed, err = b.store.MarkMissed(key, in.Number, now)
	}
	if err != nil {
		return nil, err
	}
	b.metrics.Completion(in.Outcome.String())
	b.publisher.PublishTransition(ctx, queue.NewTransitionEvent(completed, queue.StatusQueued, now))

	var changed int
	plan, err := b.planFor(key, completed.SlotID())
	if err == nil {
		var updates []queue.EstimateUpdate
		updates, err = b.store.Reestimate(key, now, b.estimateSlot(ctx, plan), func(_ queue.DaySnapshot, updates []queue.EstimateUpdate) {
			b.publishEstimates(ctx, updates)
		})
		changed = len(updates)
	}
	if err != nil {
		// The transition already happened; stale estimates heal on the next mutation.
		b.logger.WarnContext(ctx, "re-estimation after completion failed",
			"key", key.String(), "number", in.Number, "error", err)
	}
	b.observeDepth(key, now)

	b.logger.InfoContext(ctx, "token completed",
		"key", key.String(), "number", in.Number, "outcome", in.Outcome.String(),
		"estimates_changed", changed)

	return queries.NewTokenView(completed, dept, nil, now), nil
}

// planFor resolves the slot occurrence a queue belongs to plus the later
// occurrences its overflow can carry into.
func (b *bookingUseCaseImpl) planFor(key queue.DayKey, slotID uuid.UUID) (queue.SlotPlan, error) {
	occurrences, err := b.registry.OccurrencesOn(key.DepartmentID, key.Day)
	if err != nil {
		return queue.SlotPlan{}, err
	}
	plan, ok := queue.NewSlotPlan(occurrences, slotID)
	if !ok {
		return queue.SlotPlan{}, errs.Wrapf(timeslot.ErrSlotNotFound, "slot %s", slotID)
	}
	return plan, nil
}

// estimateSlot runs under the queue lock of the store.
func (b *bookingUseCaseImpl) estimateSlot(ctx context.Context, plan queue.SlotPlan) func(queue.DaySnapshot) map[int64]time.Time {
	return func(snap queue.DaySnapshot) map[int64]time.Time {
		estimates := b.estimator.EstimateQueue(plan, snap)
		if len(estimates.Overflowed) > 0 {
			b.logger.WarnContext(ctx, "estimates clamped to end of day",
				"key", snap.Key.String(), "slot", plan.Current.Slot.ID(), "tokens", estimates.Overflowed)
		}
		return estimates.ByNumber
	}
}

func (b *bookingUseCaseImpl) publishEstimates(ctx context.Context, updates []queue.EstimateUpdate) {
	if len(updates) == 0 {
		return
	}
	b.publisher.PublishEstimates(ctx, updates)
	b.metrics.EstimateUpdates(len(updates))
}

// observeDepth only tracks today's queues; future days would pin stale gauges.
func (b *bookingUseCaseImpl) observeDepth(key queue.DayKey, now time.Time) {
	if key.Day != timeslot.DayOf(now, b.registry.Location()) {
		return
	}
	b.metrics.QueueDepth(key.DepartmentID.String(), len(b.store.Snapshot(key).Queued))
}

func bookingOutcome(err error) string {
	if errs.Is(err, queue.ErrCapacityExceeded) {
		return "capacity_exceeded"
	}
	return "error"
}
