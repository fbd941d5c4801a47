package pgquery

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

const countTokensByStatus = `
SELECT status, COUNT(*)::bigint
FROM queue_tokens
WHERE booked_at >= $1 AND booked_at < $2
GROUP BY status
ORDER BY status`

func (q *Queries) CountTokensByStatus(ctx context.Context, db DBTX, from, to time.Time) ([]StatusCountRow, error) {
	rows, err := db.Query(ctx, countTokensByStatus, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (StatusCountRow, error) {
		var r StatusCountRow
		err := row.Scan(&r.Status, &r.Count)
		return r, err
	})
}

// Hours are bucketed in the queue time zone, busiest first.
const countTokensByHour = `
SELECT EXTRACT(HOUR FROM booked_at AT TIME ZONE $3)::int AS hour, COUNT(*)::bigint
FROM queue_tokens
WHERE booked_at >= $1 AND booked_at < $2
GROUP BY hour
ORDER BY 2 DESC, hour
LIMIT $4`

func (q *Queries) CountTokensByHour(ctx context.Context, db DBTX, from, to time.Time, zone string, limit int32) ([]HourCountRow, error) {
	rows, err := db.Query(ctx, countTokensByHour, from, to, zone, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (HourCountRow, error) {
		var r HourCountRow
		err := row.Scan(&r.Hour, &r.Count)
		return r, err
	})
}

const departmentUsage = `
SELECT d.id, d.name,
       COUNT(t.id)::bigint,
       COUNT(t.id) FILTER (WHERE t.status = 'SERVED')::bigint,
       COUNT(t.id) FILTER (WHERE t.status = 'MISSED')::bigint
FROM departments d
JOIN queue_tokens t ON t.department_id = d.id
WHERE t.booked_at >= $1 AND t.booked_at < $2
GROUP BY d.id, d.name
ORDER BY 3 DESC, d.name`

func (q *Queries) DepartmentUsage(ctx context.Context, db DBTX, from, to time.Time) ([]DepartmentUsageRow, error) {
	rows, err := db.Query(ctx, departmentUsage, from, to)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (DepartmentUsageRow, error) {
		var r DepartmentUsageRow
		err := row.Scan(&r.DepartmentID, &r.DepartmentName, &r.Booked, &r.Served, &r.Missed)
		return r, err
	})
}
