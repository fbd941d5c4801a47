package readstore

import (
	"context"
	"time"

	"queueless/internal/infra"
	"queueless/internal/infra/pgquery"
	"queueless/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

const peakHourLimit = 5

type AnalyticsReadQueries interface {
	CountTokensByStatus(ctx context.Context, db pgquery.DBTX, from, to time.Time) ([]pgquery.StatusCountRow, error)
	CountTokensByHour(ctx context.Context, db pgquery.DBTX, from, to time.Time, zone string, limit int32) ([]pgquery.HourCountRow, error)
	DepartmentUsage(ctx context.Context, db pgquery.DBTX, from, to time.Time) ([]pgquery.DepartmentUsageRow, error)
}

type AnalyticsReadStore struct {
	queries AnalyticsReadQueries
	db      pgquery.DBTX
	loc     *time.Location
}

func NewAnalyticsReadStore(queries AnalyticsReadQueries, db pgquery.DBTX, loc *time.Location) *AnalyticsReadStore {
	return &AnalyticsReadStore{
		queries: queries,
		db:      db,
		loc:     loc,
	}
}

func (r *AnalyticsReadStore) StatusSummary(ctx context.Context, from, to time.Time) ([]queries.StatusCount, error) {
	rows, err := r.queries.CountTokensByStatus(ctx, r.db, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to summarize token status", err)
	}
	out := []queries.StatusCount{}
	if err := copier.Copy(&out, &rows); err != nil {
		return nil, infra.WrapRepoErr("failed to map status summary", err)
	}
	return out, nil
}

func (r *AnalyticsReadStore) PeakHours(ctx context.Context, from, to time.Time) ([]queries.HourCount, error) {
	rows, err := r.queries.CountTokensByHour(ctx, r.db, from, to, r.loc.String(), peakHourLimit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute peak hours", err)
	}
	out := []queries.HourCount{}
	if err := copier.Copy(&out, &rows); err != nil {
		return nil, infra.WrapRepoErr("failed to map peak hours", err)
	}
	return out, nil
}

func (r *AnalyticsReadStore) DepartmentUsage(ctx context.Context, from, to time.Time) ([]queries.DepartmentUsage, error) {
	rows, err := r.queries.DepartmentUsage(ctx, r.db, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to compute department usage", err)
	}
	out := []queries.DepartmentUsage{}
	if err := copier.Copy(&out, &rows); err != nil {
		return nil, infra.WrapRepoErr("failed to map department usage", err)
	}
	return out, nil
}
