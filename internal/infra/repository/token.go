package repository

import (
	"context"
	"time"

	"queueless/internal/domain/queue"
	"queueless/internal/infra"
	"queueless/internal/infra/pgquery"
	"queueless/internal/infra/uow"
	"queueless/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TokenWriteQueries interface {
	UpsertQueueToken(ctx context.Context, db pgquery.DBTX, arg pgquery.UpsertQueueTokenParams) error
	InsertQueueTokenEvent(ctx context.Context, db pgquery.DBTX, arg pgquery.InsertQueueTokenEventParams) error
	UpdateQueueTokenEstimate(ctx context.Context, db pgquery.DBTX, id uuid.UUID, estimate time.Time) (int64, error)
	MaxTokenNumber(ctx context.Context, db pgquery.DBTX, departmentID uuid.UUID, day string) (int64, error)
}

// TokenRepository persists the token lifecycle. It is the durable sink of
// the event dispatcher and the high water mark source of the sequencer.
type TokenRepository struct {
	queries TokenWriteQueries
	uow     uow.UnitOfWork
}

func NewTokenRepository(queries TokenWriteQueries, u uow.UnitOfWork) *TokenRepository {
	return &TokenRepository{
		queries: queries,
		uow:     u,
	}
}

func (r *TokenRepository) RecordTransition(ctx context.Context, ev queue.TransitionEvent) error {
	tokenParams := toUpsertParams(ev.Token)
	eventParams := pgquery.InsertQueueTokenEventParams{
		ID:         ev.ID,
		TokenID:    ev.Token.ID(),
		ToStatus:   ev.To.String(),
		OccurredAt: ev.OccurredAt,
	}
	if !ev.IsCreation() {
		eventParams.FromStatus = pgconv.StringToPgtype(ev.From.String())
	}

	err := r.uow.Within(ctx, func(ctx context.Context, tx pgquery.DBTX) error {
		if err := r.queries.UpsertQueueToken(ctx, tx, tokenParams); err != nil {
			return err
		}
		return r.queries.InsertQueueTokenEvent(ctx, tx, eventParams)
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record token transition", err)
	}
	return nil
}

// RecordEstimate is a no-op for tokens that are no longer queued.
func (r *TokenRepository) RecordEstimate(ctx context.Context, upd queue.EstimateUpdate) error {
	return r.uow.WithDB(ctx, func(ctx context.Context, db pgquery.DBTX) error {
		if _, err := r.queries.UpdateQueueTokenEstimate(ctx, db, upd.TokenID, upd.EstimatedServeTime); err != nil {
			return infra.WrapRepoErr("failed to record token estimate", err)
		}
		return nil
	})
}

func (r *TokenRepository) HighWaterMark(ctx context.Context, key queue.DayKey) (int64, error) {
	var n int64
	err := r.uow.WithDB(ctx, func(ctx context.Context, db pgquery.DBTX) error {
		var err error
		n, err = r.queries.MaxTokenNumber(ctx, db, key.DepartmentID, key.Day.String())
		return err
	})
	if err != nil {
		return 0, infra.WrapRepoErr("failed to read token high water mark", err)
	}
	return n, nil
}

func toUpsertParams(t queue.Token) pgquery.UpsertQueueTokenParams {
	return pgquery.UpsertQueueTokenParams{
		ID:                 t.ID(),
		DepartmentID:       t.DepartmentID(),
		Day:                t.Day().String(),
		TokenNumber:        t.Number(),
		SlotID:             t.SlotID(),
		UserID:             t.UserID(),
		ServiceCenterName:  t.ServiceCenterName(),
		Status:             t.Status().String(),
		BookedAt:           t.BookedAt(),
		EstimatedServeTime: pgconv.OptionalTimeToPgtype(t.EstimatedServeTime()),
		CompletedAt:        pgconv.OptionalTimeToPgtype(t.CompletedAt()),
	}
}
