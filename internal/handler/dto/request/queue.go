package request

import (
	"time"

	"queueless/internal/domain/timeslot"
)

type BookTokenRequest struct {
	// RequestedTime picks the slot; omitted means now.
	RequestedTime *time.Time `json:"requested_time"`
}

type DayQuery struct {
	Day string `form:"day"`
}

// DayOr parses the day query, falling back to fallback when it is absent.
func (q DayQuery) DayOr(fallback timeslot.Day) (timeslot.Day, error) {
	if q.Day == "" {
		return fallback, nil
	}
	return timeslot.ParseDay(q.Day)
}

type HistoryQuery struct {
	Cursor string `form:"cursor"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

type AnalyticsQuery struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

func (q AnalyticsQuery) Range() (from, to timeslot.Day, err error) {
	if from, err = timeslot.ParseDay(q.From); err != nil {
		return from, to, err
	}
	if to, err = timeslot.ParseDay(q.To); err != nil {
		return from, to, err
	}
	return from, to, nil
}
