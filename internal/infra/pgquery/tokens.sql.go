package pgquery

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// upsertQueueToken keeps the earliest booking data and the latest status.
const upsertQueueToken = `
INSERT INTO queue_tokens (
    id, department_id, day, token_number, slot_id, user_id, service_center_name,
    status, booked_at, estimated_serve_time, completed_at
) VALUES ($1, $2, $3::date, $4, $5, $6, $7, $8, $9, $10, $11)
ON CONFLICT (id) DO UPDATE SET
    status               = EXCLUDED.status,
    estimated_serve_time = COALESCE(EXCLUDED.estimated_serve_time, queue_tokens.estimated_serve_time),
    completed_at         = COALESCE(EXCLUDED.completed_at, queue_tokens.completed_at),
    updated_at           = now()`

func (q *Queries) UpsertQueueToken(ctx context.Context, db DBTX, arg UpsertQueueTokenParams) error {
	_, err := db.Exec(ctx, upsertQueueToken,
		arg.ID,
		arg.DepartmentID,
		arg.Day,
		arg.TokenNumber,
		arg.SlotID,
		arg.UserID,
		arg.ServiceCenterName,
		arg.Status,
		arg.BookedAt,
		arg.EstimatedServeTime,
		arg.CompletedAt,
	)
	return err
}

const insertQueueTokenEvent = `
INSERT INTO queue_token_events (id, token_id, from_status, to_status, occurred_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO NOTHING`

func (q *Queries) InsertQueueTokenEvent(ctx context.Context, db DBTX, arg InsertQueueTokenEventParams) error {
	_, err := db.Exec(ctx, insertQueueTokenEvent, arg.ID, arg.TokenID, arg.FromStatus, arg.ToStatus, arg.OccurredAt)
	return err
}

// Only waiting tokens take new estimates; a late update must not touch a
// token that has already been served or missed.
const updateQueueTokenEstimate = `
UPDATE queue_tokens
SET estimated_serve_time = $2, updated_at = now()
WHERE id = $1 AND status = 'QUEUED'`

func (q *Queries) UpdateQueueTokenEstimate(ctx context.Context, db DBTX, id uuid.UUID, estimate time.Time) (int64, error) {
	tag, err := db.Exec(ctx, updateQueueTokenEstimate, id, estimate)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const maxTokenNumber = `
SELECT COALESCE(MAX(token_number), 0)::bigint
FROM queue_tokens
WHERE department_id = $1 AND day = $2::date`

func (q *Queries) MaxTokenNumber(ctx context.Context, db DBTX, departmentID uuid.UUID, day string) (int64, error) {
	var n int64
	err := db.QueryRow(ctx, maxTokenNumber, departmentID, day).Scan(&n)
	return n, err
}

const listTokensByUser = `
SELECT t.id, t.token_number, t.department_id, d.name, t.service_center_name, t.day,
       t.status, t.booked_at, t.estimated_serve_time, t.completed_at
FROM queue_tokens t
JOIN departments d ON d.id = t.department_id
WHERE t.user_id = $1
  AND ($2::timestamptz IS NULL OR (t.booked_at, t.id) < ($2::timestamptz, $3::uuid))
ORDER BY t.booked_at DESC, t.id DESC
LIMIT $4`

func (q *Queries) ListTokensByUser(ctx context.Context, db DBTX, arg ListTokensByUserParams) ([]TokenHistoryRow, error) {
	rows, err := db.Query(ctx, listTokensByUser, arg.UserID, arg.AfterBookedAt, arg.AfterID, arg.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (TokenHistoryRow, error) {
		var r TokenHistoryRow
		err := row.Scan(
			&r.ID,
			&r.TokenNumber,
			&r.DepartmentID,
			&r.DepartmentName,
			&r.ServiceCenterName,
			&r.Day,
			&r.Status,
			&r.BookedAt,
			&r.EstimatedServeTime,
			&r.CompletedAt,
		)
		return r, err
	})
}
