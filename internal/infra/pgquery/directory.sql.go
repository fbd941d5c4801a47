package pgquery

import (
	"context"

	"github.com/jackc/pgx/v5"
)

const listActiveDepartments = `
SELECT d.id, d.name, sc.id, sc.name
FROM departments d
JOIN service_centers sc ON sc.id = d.service_center_id
WHERE d.is_active
ORDER BY sc.name, d.name`

func (q *Queries) ListActiveDepartments(ctx context.Context, db DBTX) ([]DepartmentRow, error) {
	rows, err := db.Query(ctx, listActiveDepartments)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (DepartmentRow, error) {
		var d DepartmentRow
		err := row.Scan(&d.ID, &d.Name, &d.ServiceCenterID, &d.ServiceCenterName)
		return d, err
	})
}

const listActiveTimeSlots = `
SELECT ts.id, ts.department_id, ts.start_time, ts.end_time, ts.capacity, ts.avg_service_minutes
FROM time_slots ts
JOIN departments d ON d.id = ts.department_id
WHERE d.is_active
ORDER BY ts.department_id, ts.start_time`

func (q *Queries) ListActiveTimeSlots(ctx context.Context, db DBTX) ([]TimeSlotRow, error) {
	rows, err := db.Query(ctx, listActiveTimeSlots)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (TimeSlotRow, error) {
		var s TimeSlotRow
		err := row.Scan(&s.ID, &s.DepartmentID, &s.StartTime, &s.EndTime, &s.Capacity, &s.AvgServiceMinutes)
		return s, err
	})
}
