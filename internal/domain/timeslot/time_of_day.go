package timeslot

import (
	"fmt"
	"time"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time with minute precision, counted from midnight.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: time of day %02d:%02d out of range", ErrInvalidSlot, hour, minute)
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// MustTimeOfDay panics on invalid input. Intended for fixtures and constants.
func MustTimeOfDay(hour, minute int) TimeOfDay {
	tod, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return tod
}

// ParseTimeOfDay accepts "15:04" and "15:04:05"; seconds are truncated.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04", "15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute())
		}
	}
	return TimeOfDay{}, fmt.Errorf("%w: unparseable time of day %q", ErrInvalidSlot, s)
}

func TimeOfDayOf(t time.Time, loc *time.Location) TimeOfDay {
	local := t.In(loc)
	return TimeOfDay{minutes: local.Hour()*60 + local.Minute()}
}

func (t TimeOfDay) Hour() int                   { return t.minutes / 60 }
func (t TimeOfDay) Minute() int                 { return t.minutes % 60 }
func (t TimeOfDay) Minutes() int                { return t.minutes }
func (t TimeOfDay) Before(other TimeOfDay) bool { return t.minutes < other.minutes }
func (t TimeOfDay) String() string              { return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()) }
