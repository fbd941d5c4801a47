package readstore

import (
	"context"

	"queueless/internal/infra"
	"queueless/internal/infra/pgquery"
	"queueless/internal/pkg/pgconv"
	"queueless/internal/usecase/queries"

	"github.com/google/uuid"
)

type TokenHistoryReadQueries interface {
	ListTokensByUser(ctx context.Context, db pgquery.DBTX, arg pgquery.ListTokensByUserParams) ([]pgquery.TokenHistoryRow, error)
}

type TokenHistoryReadStore struct {
	queries TokenHistoryReadQueries
	db      pgquery.DBTX
}

func NewTokenHistoryReadStore(queries TokenHistoryReadQueries, db pgquery.DBTX) *TokenHistoryReadStore {
	return &TokenHistoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *TokenHistoryReadStore) ListByUser(ctx context.Context, userID uuid.UUID, after *queries.HistoryCursor, limit int) ([]*queries.TokenHistoryItem, error) {
	arg := pgquery.ListTokensByUserParams{
		UserID: userID,
		Limit:  pgconv.ClampInt32(limit),
	}
	if after != nil {
		arg.AfterBookedAt = pgconv.TimeToPgtype(after.BookedAt)
		arg.AfterID = after.ID
	}
	rows, err := r.queries.ListTokensByUser(ctx, r.db, arg)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list token history", err)
	}

	items := make([]*queries.TokenHistoryItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, &queries.TokenHistoryItem{
			ID:                 row.ID,
			Number:             row.TokenNumber,
			DepartmentID:       row.DepartmentID,
			DepartmentName:     row.DepartmentName,
			ServiceCenterName:  row.ServiceCenterName,
			Day:                pgconv.TimeFromPgDate(row.Day),
			Status:             row.Status,
			BookedAt:           row.BookedAt,
			EstimatedServeTime: pgconv.TimePtrFromPgtype(row.EstimatedServeTime),
			CompletedAt:        pgconv.TimePtrFromPgtype(row.CompletedAt),
		})
	}
	return items, nil
}
