package readstore

import (
	"context"
	"fmt"
	"time"

	"queueless/internal/domain/timeslot"
	"queueless/internal/infra"
	"queueless/internal/infra/pgquery"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DirectoryReadQueries interface {
	ListActiveDepartments(ctx context.Context, db pgquery.DBTX) ([]pgquery.DepartmentRow, error)
	ListActiveTimeSlots(ctx context.Context, db pgquery.DBTX) ([]pgquery.TimeSlotRow, error)
}

// DepartmentConfig is one department with its full slot configuration.
type DepartmentConfig struct {
	Department timeslot.Department
	Slots      []timeslot.TimeSlot
}

type DirectoryReadStore struct {
	queries DirectoryReadQueries
	db      pgquery.DBTX
}

func NewDirectoryReadStore(queries DirectoryReadQueries, db pgquery.DBTX) *DirectoryReadStore {
	return &DirectoryReadStore{
		queries: queries,
		db:      db,
	}
}

// LoadDirectory reads every active department. Rows that fail validation are
// reported in invalid and left out rather than failing the whole load.
func (r *DirectoryReadStore) LoadDirectory(ctx context.Context) (configs []DepartmentConfig, invalid []error, err error) {
	depts, err := r.queries.ListActiveDepartments(ctx, r.db)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to list departments", err)
	}
	slots, err := r.queries.ListActiveTimeSlots(ctx, r.db)
	if err != nil {
		return nil, nil, infra.WrapRepoErr("failed to list time slots", err)
	}

	byDept := make(map[uuid.UUID][]timeslot.TimeSlot, len(depts))
	for _, row := range slots {
		slot, err := toTimeSlot(row)
		if err != nil {
			invalid = append(invalid, err)
			continue
		}
		byDept[row.DepartmentID] = append(byDept[row.DepartmentID], slot)
	}

	configs = make([]DepartmentConfig, 0, len(depts))
	for _, d := range depts {
		configs = append(configs, DepartmentConfig{
			Department: timeslot.Department{
				ID:                d.ID,
				Name:              d.Name,
				ServiceCenterID:   d.ServiceCenterID,
				ServiceCenterName: d.ServiceCenterName,
			},
			Slots: byDept[d.ID],
		})
	}
	return configs, invalid, nil
}

func toTimeSlot(row pgquery.TimeSlotRow) (timeslot.TimeSlot, error) {
	start, err := timeOfDayFromPgtype(row.StartTime)
	if err != nil {
		return timeslot.TimeSlot{}, fmt.Errorf("slot %s: %w", row.ID, err)
	}
	end, err := timeOfDayFromPgtype(row.EndTime)
	if err != nil {
		return timeslot.TimeSlot{}, fmt.Errorf("slot %s: %w", row.ID, err)
	}
	slot, err := timeslot.NewTimeSlot(
		row.ID,
		row.DepartmentID,
		start,
		end,
		int(row.Capacity),
		time.Duration(row.AvgServiceMinutes)*time.Minute,
	)
	if err != nil {
		return timeslot.TimeSlot{}, fmt.Errorf("slot %s: %w", row.ID, err)
	}
	return slot, nil
}

func timeOfDayFromPgtype(t pgtype.Time) (timeslot.TimeOfDay, error) {
	if !t.Valid {
		return timeslot.TimeOfDay{}, fmt.Errorf("%w: null time of day", timeslot.ErrInvalidSlot)
	}
	minutes := t.Microseconds / int64(time.Minute/time.Microsecond)
	return timeslot.NewTimeOfDay(int(minutes/60), int(minutes%60))
}
