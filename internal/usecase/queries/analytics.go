package queries

import (
	"context"
	"time"

	"queueless/internal/domain/timeslot"
	"queueless/internal/pkg/errs"
)

var ErrInvalidRange = errs.New("invalid analytics range")

// MaxAnalyticsRange bounds a single analytics request.
const MaxAnalyticsRange = 366

type AnalyticsQueries interface {
	Analytics(ctx context.Context, from, to timeslot.Day) (*AnalyticsView, error)
}

// AnalyticsReadStore aggregates persisted tokens over [from, to).
type AnalyticsReadStore interface {
	StatusSummary(ctx context.Context, from, to time.Time) ([]StatusCount, error)
	PeakHours(ctx context.Context, from, to time.Time) ([]HourCount, error)
	DepartmentUsage(ctx context.Context, from, to time.Time) ([]DepartmentUsage, error)
}

type analyticsQueriesImpl struct {
	readStore AnalyticsReadStore
	loc       *time.Location
}

func NewAnalyticsQueries(readStore AnalyticsReadStore, loc *time.Location) AnalyticsQueries {
	return &analyticsQueriesImpl{readStore: readStore, loc: loc}
}

func (q *analyticsQueriesImpl) Analytics(ctx context.Context, from, to timeslot.Day) (*AnalyticsView, error) {
	if to.Before(from) {
		return nil, errs.Wrapf(ErrInvalidRange, "to %s is before from %s", to, from)
	}
	if from.AddDays(MaxAnalyticsRange).Before(to) {
		return nil, errs.Wrapf(ErrInvalidRange, "range exceeds %d days", MaxAnalyticsRange)
	}
	start := from.Midnight(q.loc)
	end := to.AddDays(1).Midnight(q.loc)

	byStatus, err := q.readStore.StatusSummary(ctx, start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	peaks, err := q.readStore.PeakHours(ctx, start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	usage, err := q.readStore.DepartmentUsage(ctx, start, end)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	var total int64
	for _, sc := range byStatus {
		total += sc.Count
	}
	return &AnalyticsView{
		From:        from.String(),
		To:          to.String(),
		Total:       total,
		ByStatus:    byStatus,
		PeakHours:   peaks,
		Departments: usage,
	}, nil
}
