package queries

import (
	"math"
	"time"

	"queueless/internal/domain/queue"
	"queueless/internal/domain/timeslot"

	"github.com/google/uuid"
)

// TokenView is the read model of a single token.
type TokenView struct {
	ID                   uuid.UUID  `json:"id"`
	Number               int64      `json:"number"`
	Label                string     `json:"label"`
	DepartmentID         uuid.UUID  `json:"department_id"`
	DepartmentName       string     `json:"department_name"`
	ServiceCenterName    string     `json:"service_center_name"`
	Day                  string     `json:"day"`
	SlotID               uuid.UUID  `json:"slot_id"`
	UserID               uuid.UUID  `json:"user_id"`
	Status               string     `json:"status"`
	BookedAt             time.Time  `json:"booked_at"`
	EstimatedServeTime   *time.Time `json:"estimated_serve_time,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	Position             *int       `json:"position,omitempty"`
	EstimatedWaitMinutes *int       `json:"estimated_wait_minutes,omitempty"`
}

// QueueView is the live queue of a department on a day.
type QueueView struct {
	DepartmentID   uuid.UUID    `json:"department_id"`
	DepartmentName string       `json:"department_name"`
	Day            string       `json:"day"`
	Served         int          `json:"served"`
	Missed         int          `json:"missed"`
	LastNumber     int64        `json:"last_number"`
	Waiting        []*TokenView `json:"waiting"`
}

// DepartmentView is a bookable department with its daily slots.
type DepartmentView struct {
	ID                uuid.UUID  `json:"id"`
	Name              string     `json:"name"`
	ServiceCenterID   uuid.UUID  `json:"service_center_id"`
	ServiceCenterName string     `json:"service_center_name"`
	Slots             []SlotView `json:"slots"`
}

type SlotView struct {
	ID                    uuid.UUID `json:"id"`
	Start                 string    `json:"start"`
	End                   string    `json:"end"`
	Capacity              int       `json:"capacity"`
	AverageServiceMinutes int       `json:"average_service_minutes"`
}

type TokenHistoryItem struct {
	ID                 uuid.UUID  `json:"id"`
	Number             int64      `json:"number"`
	DepartmentID       uuid.UUID  `json:"department_id"`
	DepartmentName     string     `json:"department_name"`
	ServiceCenterName  string     `json:"service_center_name"`
	Day                time.Time  `json:"day"`
	Status             string     `json:"status"`
	BookedAt           time.Time  `json:"booked_at"`
	EstimatedServeTime *time.Time `json:"estimated_serve_time,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type HourCount struct {
	Hour  int   `json:"hour"`
	Count int64 `json:"count"`
}

type DepartmentUsage struct {
	DepartmentID   uuid.UUID `json:"department_id"`
	DepartmentName string    `json:"department_name"`
	Booked         int64     `json:"booked"`
	Served         int64     `json:"served"`
	Missed         int64     `json:"missed"`
}

type AnalyticsView struct {
	From        string            `json:"from"`
	To          string            `json:"to"`
	Total       int64             `json:"total"`
	ByStatus    []StatusCount     `json:"by_status"`
	PeakHours   []HourCount       `json:"peak_hours"`
	Departments []DepartmentUsage `json:"departments"`
}

// NewTokenView renders token for callers. position is nil for tokens that
// are no longer waiting.
func NewTokenView(token queue.Token, dept timeslot.Department, position *int, now time.Time) *TokenView {
	view := &TokenView{
		ID:                token.ID(),
		Number:            token.Number(),
		Label:             token.Label(),
		DepartmentID:      token.DepartmentID(),
		DepartmentName:    dept.Name,
		ServiceCenterName: token.ServiceCenterName(),
		Day:               token.Day().String(),
		SlotID:            token.SlotID(),
		UserID:            token.UserID(),
		Status:            token.Status().String(),
		BookedAt:          token.BookedAt(),
		Position:          position,
	}
	if token.HasEstimate() {
		est := token.EstimatedServeTime()
		view.EstimatedServeTime = &est
		if token.Status() == queue.StatusQueued {
			wait := WaitMinutes(est, now)
			view.EstimatedWaitMinutes = &wait
		}
	}
	if !token.CompletedAt().IsZero() {
		done := token.CompletedAt()
		view.CompletedAt = &done
	}
	return view
}

func NewDepartmentView(dept timeslot.Department, slots []timeslot.TimeSlot) *DepartmentView {
	view := &DepartmentView{
		ID:                dept.ID,
		Name:              dept.Name,
		ServiceCenterID:   dept.ServiceCenterID,
		ServiceCenterName: dept.ServiceCenterName,
		Slots:             make([]SlotView, 0, len(slots)),
	}
	for _, slot := range slots {
		view.Slots = append(view.Slots, SlotView{
			ID:                    slot.ID(),
			Start:                 slot.Start().String(),
			End:                   slot.End().String(),
			Capacity:              slot.Capacity(),
			AverageServiceMinutes: int(slot.AverageServiceDuration().Minutes()),
		})
	}
	return view
}

// WaitMinutes rounds the remaining wait up to whole minutes, never below zero.
func WaitMinutes(estimate, now time.Time) int {
	remaining := estimate.Sub(now)
	if remaining <= 0 {
		return 0
	}
	return int(math.Ceil(remaining.Minutes()))
}
