//go:build unit || e2e

package builder

import (
	"fmt"
	"time"

	"queueless/internal/domain/queue"
	"queueless/internal/domain/timeslot"
	"queueless/internal/usecase/queries"

	"github.com/google/uuid"
)

type TokenBuilder struct {
	ID                uuid.UUID
	Number            int64
	DepartmentID      uuid.UUID
	DepartmentName    string
	ServiceCenterName string
	Day               timeslot.Day
	SlotID            uuid.UUID
	UserID            uuid.UUID
	Status            queue.Status
	BookedAt          time.Time
	Estimate          time.Time
	Position          int
}

func NewTokenBuilder() *TokenBuilder {
	bookedAt := time.Date(2025, time.March, 10, 8, 0, 0, 0, time.UTC)
	return &TokenBuilder{
		ID:                uuid.New(),
		Number:            1,
		DepartmentID:      uuid.New(),
		DepartmentName:    "Cardiology",
		ServiceCenterName: "City Hospital",
		Day:               timeslot.NewDay(2025, time.March, 10),
		SlotID:            uuid.New(),
		UserID:            uuid.New(),
		Status:            queue.StatusQueued,
		BookedAt:          bookedAt,
		Estimate:          bookedAt.Add(time.Hour),
		Position:          1,
	}
}

func (b *TokenBuilder) With(mutate func(*TokenBuilder)) *TokenBuilder {
	mutate(b)
	return b
}

func (b *TokenBuilder) BuildDomain() queue.Token {
	return queue.ReconstructToken(
		b.ID,
		b.Number,
		queue.NewDayKey(b.DepartmentID, b.Day),
		b.SlotID,
		b.UserID,
		b.ServiceCenterName,
		b.BookedAt,
		b.Estimate,
		b.Status,
		time.Time{},
	)
}

func (b *TokenBuilder) BuildView() *queries.TokenView {
	estimate := b.Estimate
	view := &queries.TokenView{
		ID:                b.ID,
		Number:            b.Number,
		Label:             fmt.Sprintf("T-%03d", b.Number),
		DepartmentID:      b.DepartmentID,
		DepartmentName:    b.DepartmentName,
		ServiceCenterName: b.ServiceCenterName,
		Day:               b.Day.String(),
		SlotID:            b.SlotID,
		UserID:            b.UserID,
		Status:            b.Status.String(),
		BookedAt:          b.BookedAt,
	}
	if b.Status == queue.StatusQueued {
		position := b.Position
		wait := int(b.Estimate.Sub(b.BookedAt).Minutes())
		view.EstimatedServeTime = &estimate
		view.Position = &position
		view.EstimatedWaitMinutes = &wait
	}
	return view
}
