package response

import (
	"time"

	"queueless/internal/usecase/queries"
)

type TokenResponse struct {
	ID                   string     `json:"id"`
	Number               int64      `json:"number"`
	Label                string     `json:"label"`
	DepartmentID         string     `json:"department_id"`
	DepartmentName       string     `json:"department_name"`
	ServiceCenterName    string     `json:"service_center_name"`
	Day                  string     `json:"day"`
	SlotID               string     `json:"slot_id"`
	UserID               string     `json:"user_id"`
	Status               string     `json:"status"`
	BookedAt             time.Time  `json:"booked_at"`
	EstimatedServeTime   *time.Time `json:"estimated_serve_time,omitempty"`
	CompletedAt          *time.Time `json:"completed_at,omitempty"`
	Position             *int       `json:"position,omitempty"`
	EstimatedWaitMinutes *int       `json:"estimated_wait_minutes,omitempty"`
}

func FromTokenView(v *queries.TokenView) *TokenResponse {
	return &TokenResponse{
		ID:                   v.ID.String(),
		Number:               v.Number,
		Label:                v.Label,
		DepartmentID:         v.DepartmentID.String(),
		DepartmentName:       v.DepartmentName,
		ServiceCenterName:    v.ServiceCenterName,
		Day:                  v.Day,
		SlotID:               v.SlotID.String(),
		UserID:               v.UserID.String(),
		Status:               v.Status,
		BookedAt:             v.BookedAt,
		EstimatedServeTime:   v.EstimatedServeTime,
		CompletedAt:          v.CompletedAt,
		Position:             v.Position,
		EstimatedWaitMinutes: v.EstimatedWaitMinutes,
	}
}

type QueueResponse struct {
	DepartmentID   string           `json:"department_id"`
	DepartmentName string           `json:"department_name"`
	Day            string           `json:"day"`
	Served         int              `json:"served"`
	Missed         int              `json:"missed"`
	LastNumber     int64            `json:"last_number"`
	Waiting        []*TokenResponse `json:"waiting"`
}

func FromQueueView(v *queries.QueueView) *QueueResponse {
	waiting := make([]*TokenResponse, len(v.Waiting))
	for i, t := range v.Waiting {
		waiting[i] = FromTokenView(t)
	}
	return &QueueResponse{
		DepartmentID:   v.DepartmentID.String(),
		DepartmentName: v.DepartmentName,
		Day:            v.Day,
		Served:         v.Served,
		Missed:         v.Missed,
		LastNumber:     v.LastNumber,
		Waiting:        waiting,
	}
}

type TokenHistoryResponse struct {
	ID                 string     `json:"id"`
	Number             int64      `json:"number"`
	DepartmentID       string     `json:"department_id"`
	DepartmentName     string     `json:"department_name"`
	ServiceCenterName  string     `json:"service_center_name"`
	Day                string     `json:"day"`
	Status             string     `json:"status"`
	BookedAt           time.Time  `json:"booked_at"`
	EstimatedServeTime *time.Time `json:"estimated_serve_time,omitempty"`
	CompletedAt        *time.Time `json:"completed_at,omitempty"`
}

type TokenHistoryPageResponse struct {
	Items      []*TokenHistoryResponse `json:"items"`
	NextCursor string                  `json:"next_cursor,omitempty"`
}

func FromTokenHistoryPage(page *queries.TokenHistoryPage) *TokenHistoryPageResponse {
	return &TokenHistoryPageResponse{
		Items:      FromTokenHistory(page.Items),
		NextCursor: page.Next.Encode(),
	}
}

func FromTokenHistory(items []*queries.TokenHistoryItem) []*TokenHistoryResponse {
	res := make([]*TokenHistoryResponse, len(items))
	for i, it := range items {
		res[i] = &TokenHistoryResponse{
			ID:                 it.ID.String(),
			Number:             it.Number,
			DepartmentID:       it.DepartmentID.String(),
			DepartmentName:     it.DepartmentName,
			ServiceCenterName:  it.ServiceCenterName,
			Day:                it.Day.Format(time.DateOnly),
			Status:             it.Status,
			BookedAt:           it.BookedAt,
			EstimatedServeTime: it.EstimatedServeTime,
			CompletedAt:        it.CompletedAt,
		}
	}
	return res
}

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type HourCountResponse struct {
	Hour  int   `json:"hour"`
	Count int64 `json:"count"`
}

type DepartmentUsageResponse struct {
	DepartmentID   string `json:"department_id"`
	DepartmentName string `json:"department_name"`
	Booked         int64  `json:"booked"`
	Served         int64  `json:"served"`
	Missed         int64  `json:"missed"`
}

type AnalyticsResponse struct {
	From        string                    `json:"from"`
	To          string                    `json:"to"`
	Total       int64                     `json:"total"`
	ByStatus    []StatusCountResponse     `json:"by_status"`
	PeakHours   []HourCountResponse       `json:"peak_hours"`
	Departments []DepartmentUsageResponse `json:"departments"`
}

func FromAnalyticsView(v *queries.AnalyticsView) *AnalyticsResponse {
	res := &AnalyticsResponse{
		From:        v.From,
		To:          v.To,
		Total:       v.Total,
		ByStatus:    make([]StatusCountResponse, len(v.ByStatus)),
		PeakHours:   make([]HourCountResponse, len(v.PeakHours)),
		Departments: make([]DepartmentUsageResponse, len(v.Departments)),
	}
	for i, s := range v.ByStatus {
		res.ByStatus[i] = StatusCountResponse{Status: s.Status, Count: s.Count}
	}
	for i, h := range v.PeakHours {
		res.PeakHours[i] = HourCountResponse{Hour: h.Hour, Count: h.Count}
	}
	for i, d := range v.Departments {
		res.Departments[i] = DepartmentUsageResponse{
			DepartmentID:   d.DepartmentID.String(),
			DepartmentName: d.DepartmentName,
			Booked:         d.Booked,
			Served:         d.Served,
			Missed:         d.Missed,
		}
	}
	return res
}

type SlotResponse struct {
	ID                    string `json:"id"`
	Start                 string `json:"start"`
	End                   string `json:"end"`
	Capacity              int    `json:"capacity"`
	AverageServiceMinutes int    `json:"average_service_minutes"`
}

type DepartmentResponse struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	ServiceCenterID   string         `json:"service_center_id"`
	ServiceCenterName string         `json:"service_center_name"`
	Slots             []SlotResponse `json:"slots"`
}

func FromDepartmentViews(views []*queries.DepartmentView) []DepartmentResponse {
	out := make([]DepartmentResponse, len(views))
	for i, v := range views {
		slots := make([]SlotResponse, len(v.Slots))
		for j, slot := range v.Slots {
			slots[j] = SlotResponse{
				ID:                    slot.ID.String(),
				Start:                 slot.Start,
				End:                   slot.End,
				Capacity:              slot.Capacity,
				AverageServiceMinutes: slot.AverageServiceMinutes,
			}
		}
		out[i] = DepartmentResponse{
			ID:                v.ID.String(),
			Name:              v.Name,
			ServiceCenterID:   v.ServiceCenterID.String(),
			ServiceCenterName: v.ServiceCenterName,
			Slots:             slots,
		}
	}
	return out
}
