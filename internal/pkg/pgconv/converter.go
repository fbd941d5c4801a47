package pgconv

import (
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	t := pt.Time
	return &t
}

func TimeFromPgDate(pd pgtype.Date) time.Time {
	if !pd.Valid {
		return time.Time{}
	}
	return pd.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// OptionalTimeToPgtype maps the zero time to NULL.
func OptionalTimeToPgtype(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{Valid: false}
	}
	return TimeToPgtype(t)
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func ClampInt32(n int) int32 {
	switch {
	case n > math.MaxInt32:
		return math.MaxInt32
	case n < math.MinInt32:
		return math.MinInt32
	default:
		return int32(n)
	}
}
