package pgquery

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type DepartmentRow struct {
	ID                uuid.UUID
	Name              string
	ServiceCenterID   uuid.UUID
	ServiceCenterName string
}

type TimeSlotRow struct {
	ID                uuid.UUID
	DepartmentID      uuid.UUID
	StartTime         pgtype.Time
	EndTime           pgtype.Time
	Capacity          int32
	AvgServiceMinutes int32
}

type UpsertQueueTokenParams struct {
	ID                 uuid.UUID
	DepartmentID       uuid.UUID
	Day                string
	TokenNumber        int64
	SlotID             uuid.UUID
	UserID             uuid.UUID
	ServiceCenterName  string
	Status             string
	BookedAt           time.Time
	EstimatedServeTime pgtype.Timestamptz
	CompletedAt        pgtype.Timestamptz
}

type InsertQueueTokenEventParams struct {
	ID         uuid.UUID
	TokenID    uuid.UUID
	FromStatus pgtype.Text
	ToStatus   string
	OccurredAt time.Time
}

type ListTokensByUserParams struct {
	UserID        uuid.UUID
	AfterBookedAt pgtype.Timestamptz
	AfterID       uuid.UUID
	Limit         int32
}

type TokenHistoryRow struct {
	ID                 uuid.UUID
	TokenNumber        int64
	DepartmentID       uuid.UUID
	DepartmentName     string
	ServiceCenterName  string
	Day                pgtype.Date
	Status             string
	BookedAt           time.Time
	EstimatedServeTime pgtype.Timestamptz
	CompletedAt        pgtype.Timestamptz
}

type StatusCountRow struct {
	Status string
	Count  int64
}

type HourCountRow struct {
	Hour  int32
	Count int64
}

type DepartmentUsageRow struct {
	DepartmentID   uuid.UUID
	DepartmentName string
	Booked         int64
	Served         int64
	Missed         int64
}
